package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

var errUnsupported = errors.New("not supported by the in-memory store")

// memStore is an in-memory stand-in for the database. Transactions snapshot
// the whole store and restore it when the transaction function fails.
type memStore struct {
	nextID     int64
	products   map[int64]model.Product
	movements  []model.StockMovement
	sales      map[int64]model.Sale
	alerts     map[int64]model.Alert
	categories []model.Category
	suppliers  []model.Supplier
	outbox     []repository.CreateOutboxMsgParams
	txCount    int
}

func newMemStore() *memStore {
	return &memStore{
		products: map[int64]model.Product{},
		sales:    map[int64]model.Sale{},
		alerts:   map[int64]model.Alert{},
	}
}

func (m *memStore) newID() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) clone() memStore {
	c := *m
	c.products = maps.Clone(m.products)
	c.movements = slices.Clone(m.movements)
	c.sales = make(map[int64]model.Sale, len(m.sales))
	for id, s := range m.sales {
		s.Items = slices.Clone(s.Items)
		c.sales[id] = s
	}
	c.alerts = maps.Clone(m.alerts)
	c.categories = slices.Clone(m.categories)
	c.suppliers = slices.Clone(m.suppliers)
	c.outbox = slices.Clone(m.outbox)
	return c
}

func (m *memStore) unreadAlerts(productID int64) []model.Alert {
	var out []model.Alert
	for _, a := range m.alerts {
		if a.ProductID == productID && !a.IsRead {
			out = append(out, a)
		}
	}
	return out
}

func (m *memStore) movementsOf(productID int64) []model.StockMovement {
	var out []model.StockMovement
	for _, mv := range m.movements {
		if mv.ProductID == productID {
			out = append(out, mv)
		}
	}
	return out
}

func (m *memStore) outboxTopics() []string {
	topics := make([]string, 0, len(m.outbox))
	for _, msg := range m.outbox {
		topics = append(topics, msg.Topic)
	}
	return topics
}

// addProduct inserts a product with a matching opening movement so the
// ledger starts balanced.
func (m *memStore) addProduct(p model.Product) model.Product {
	p.ID = m.newID()
	p.IsActive = true
	m.products[p.ID] = p
	if p.CurrentStock != 0 {
		m.movements = append(m.movements, model.StockMovement{
			ID:           m.newID(),
			ProductID:    p.ID,
			MovementType: model.MovementTypeIn,
			Quantity:     p.CurrentStock,
		})
	}
	return p
}

type fakeDB struct {
	store *memStore
}

var _ db.DB = (*fakeDB)(nil)

func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errUnsupported
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errUnsupported
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (f *fakeDB) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errUnsupported
}

func (f *fakeDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	return nil
}

func (f *fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	f.store.txCount++
	snapshot := f.store.clone()
	if err := txFunc(f); err != nil {
		*f.store = snapshot
		return err
	}
	return nil
}

type fakeProductRepo struct{ s *memStore }

func (r fakeProductRepo) WithDB(db.DB) repository.ProductRepository { return r }

func (r fakeProductRepo) CreateProduct(_ context.Context, params repository.CreateProductParams) (int64, error) {
	for _, p := range r.s.products {
		if p.SKU == params.SKU {
			return 0, &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"}
		}
	}
	if params.CategoryID != nil && !slices.ContainsFunc(r.s.categories, func(c model.Category) bool { return c.ID == *params.CategoryID }) {
		return 0, &pgconn.PgError{Code: "23503", ConstraintName: "products_category_id_fkey"}
	}

	now := time.Now()
	p := model.Product{
		ID:           r.s.newID(),
		Name:         params.Name,
		SKU:          params.SKU,
		Description:  params.Description,
		CategoryID:   params.CategoryID,
		SupplierID:   params.SupplierID,
		UnitPrice:    params.UnitPrice,
		CostPrice:    params.CostPrice,
		CurrentStock: params.CurrentStock,
		MinimumStock: params.MinimumStock,
		MaximumStock: params.MaximumStock,
		ReorderPoint: params.ReorderPoint,
		Location:     params.Location,
		Barcode:      params.Barcode,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.s.products[p.ID] = p
	return p.ID, nil
}

func (r fakeProductRepo) GetProduct(_ context.Context, id int64) (model.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, db.ErrNotFound
	}
	return p, nil
}

func (r fakeProductRepo) ListActiveProducts(context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.s.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r fakeProductRepo) ListLowStockProducts(context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.s.products {
		if p.IsActive && p.CurrentStock <= p.ReorderPoint {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReorderGap() != out[j].ReorderGap() {
			return out[i].ReorderGap() < out[j].ReorderGap()
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r fakeProductRepo) LockProductStock(_ context.Context, id int64) (int, error) {
	p, ok := r.s.products[id]
	if !ok {
		return 0, db.ErrNotFound
	}
	return p.CurrentStock, nil
}

func (r fakeProductRepo) SetProductStock(_ context.Context, id int64, stock int) error {
	p, ok := r.s.products[id]
	if !ok {
		return db.ErrNotFound
	}
	p.CurrentStock = stock
	p.UpdatedAt = time.Now()
	r.s.products[id] = p
	return nil
}

func (r fakeProductRepo) AdjustProductStock(_ context.Context, id int64, delta int) (int, error) {
	p, ok := r.s.products[id]
	if !ok {
		return 0, db.ErrNotFound
	}
	p.CurrentStock += delta
	p.UpdatedAt = time.Now()
	r.s.products[id] = p
	return p.CurrentStock, nil
}

type fakeStockMovementRepo struct{ s *memStore }

func (r fakeStockMovementRepo) WithDB(db.DB) repository.StockMovementRepository { return r }

func (r fakeStockMovementRepo) CreateStockMovement(_ context.Context, params repository.CreateStockMovementParams) (model.StockMovement, error) {
	if _, ok := r.s.products[params.ProductID]; !ok {
		return model.StockMovement{}, &pgconn.PgError{Code: "23503", ConstraintName: "stock_movements_product_id_fkey"}
	}
	m := model.StockMovement{
		ID:              r.s.newID(),
		ProductID:       params.ProductID,
		MovementType:    params.MovementType,
		Quantity:        params.Quantity,
		UnitPrice:       params.UnitPrice,
		ReferenceNumber: params.ReferenceNumber,
		Notes:           params.Notes,
		CreatedAt:       time.Now(),
	}
	r.s.movements = append(r.s.movements, m)
	return m, nil
}

func (r fakeStockMovementRepo) ListStockMovements(_ context.Context, productID int64, limit int) ([]model.StockMovement, error) {
	out := r.s.movementsOf(productID)
	slices.Reverse(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r fakeStockMovementRepo) SumStockMovements(_ context.Context, productID int64) (int, int, error) {
	total := 0
	movements := r.s.movementsOf(productID)
	for _, m := range movements {
		total += m.Quantity
	}
	return total, len(movements), nil
}

type fakeSaleRepo struct{ s *memStore }

func (r fakeSaleRepo) WithDB(db.DB) repository.SaleRepository { return r }

func (r fakeSaleRepo) CreateSale(_ context.Context, params repository.CreateSaleParams) (int64, error) {
	for _, s := range r.s.sales {
		if s.SaleNumber == params.SaleNumber {
			return 0, &pgconn.PgError{Code: "23505", ConstraintName: "sales_sale_number_key"}
		}
	}
	sale := model.Sale{
		ID:             r.s.newID(),
		SaleNumber:     params.SaleNumber,
		CustomerName:   params.CustomerName,
		CustomerEmail:  params.CustomerEmail,
		CustomerPhone:  params.CustomerPhone,
		TotalAmount:    params.TotalAmount,
		DiscountAmount: params.DiscountAmount,
		TaxAmount:      params.TaxAmount,
		FinalAmount:    params.FinalAmount,
		PaymentMethod:  params.PaymentMethod,
		SaleDate:       params.SaleDate,
		Notes:          params.Notes,
	}
	r.s.sales[sale.ID] = sale
	return sale.ID, nil
}

func (r fakeSaleRepo) CreateSaleItem(_ context.Context, params repository.CreateSaleItemParams) (int64, error) {
	sale, ok := r.s.sales[params.SaleID]
	if !ok {
		return 0, &pgconn.PgError{Code: "23503", ConstraintName: "sale_items_sale_id_fkey"}
	}
	if _, ok := r.s.products[params.ProductID]; !ok {
		return 0, &pgconn.PgError{Code: "23503", ConstraintName: "sale_items_product_id_fkey"}
	}
	item := model.SaleItem{
		ID:         r.s.newID(),
		SaleID:     params.SaleID,
		ProductID:  params.ProductID,
		Quantity:   params.Quantity,
		UnitPrice:  params.UnitPrice,
		TotalPrice: params.TotalPrice,
	}
	sale.Items = append(sale.Items, item)
	r.s.sales[sale.ID] = sale
	return item.ID, nil
}

func (r fakeSaleRepo) GetSale(_ context.Context, id int64) (model.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return model.Sale{}, db.ErrNotFound
	}
	return sale, nil
}

func (r fakeSaleRepo) ListRecentSales(_ context.Context, limit int) ([]model.Sale, error) {
	out := slices.Collect(maps.Values(r.s.sales))
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeAlertRepo struct{ s *memStore }

func (r fakeAlertRepo) WithDB(db.DB) repository.AlertRepository { return r }

func (r fakeAlertRepo) DeleteUnreadAlerts(_ context.Context, productID int64) error {
	for id, a := range r.s.alerts {
		if a.ProductID == productID && !a.IsRead {
			delete(r.s.alerts, id)
		}
	}
	return nil
}

func (r fakeAlertRepo) CreateAlert(_ context.Context, params repository.CreateAlertParams) (model.Alert, error) {
	a := model.Alert{
		ID:        r.s.newID(),
		ProductID: params.ProductID,
		AlertType: params.AlertType,
		Message:   params.Message,
		CreatedAt: time.Now(),
	}
	r.s.alerts[a.ID] = a
	return a, nil
}

func (r fakeAlertRepo) ListUnreadAlerts(context.Context) ([]model.Alert, error) {
	var out []model.Alert
	for _, a := range r.s.alerts {
		if !a.IsRead {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r fakeAlertRepo) CountUnreadAlerts(ctx context.Context) (int, error) {
	alerts, err := r.ListUnreadAlerts(ctx)
	return len(alerts), err
}

func (r fakeAlertRepo) MarkAlertRead(_ context.Context, id int64) error {
	a, ok := r.s.alerts[id]
	if !ok {
		return db.ErrNotFound
	}
	a.IsRead = true
	r.s.alerts[id] = a
	return nil
}

type fakeOutboxMsgRepo struct{ s *memStore }

func (r fakeOutboxMsgRepo) WithDB(db.DB) repository.OutboxMsgRepository { return r }

func (r fakeOutboxMsgRepo) CreateOutboxMsg(_ context.Context, params repository.CreateOutboxMsgParams) error {
	r.s.outbox = append(r.s.outbox, params)
	return nil
}

func (r fakeOutboxMsgRepo) ListUnprocessedOutboxMsgs(context.Context, repository.ListUnprocessedOutboxMsgsParams) ([]repository.ListUnprocessedOutboxMsgsResult, error) {
	return nil, errUnsupported
}

func (r fakeOutboxMsgRepo) BulkUpdateOutboxMsgs(context.Context, repository.BulkUpdateOutboxMsgsParams) error {
	return errUnsupported
}

func (r fakeOutboxMsgRepo) DeleteRelayedOutboxMsgs(context.Context, repository.DeleteRelayedOutboxMsgsParams) (int64, error) {
	return 0, errUnsupported
}

type fakeCatalogRepo struct{ s *memStore }

func (r fakeCatalogRepo) WithDB(db.DB) repository.CatalogRepository { return r }

func (r fakeCatalogRepo) CreateCategory(_ context.Context, params repository.CreateCategoryParams) (model.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == params.Name {
			return model.Category{}, &pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}
		}
	}
	c := model.Category{ID: r.s.newID(), Name: params.Name, Description: params.Description, CreatedAt: time.Now()}
	r.s.categories = append(r.s.categories, c)
	return c, nil
}

func (r fakeCatalogRepo) ListCategories(context.Context) ([]model.Category, error) {
	return slices.Clone(r.s.categories), nil
}

func (r fakeCatalogRepo) CreateSupplier(_ context.Context, params repository.CreateSupplierParams) (model.Supplier, error) {
	for _, s := range r.s.suppliers {
		if s.Name == params.Name {
			return model.Supplier{}, &pgconn.PgError{Code: "23505", ConstraintName: "suppliers_name_key"}
		}
	}
	s := model.Supplier{
		ID:            r.s.newID(),
		Name:          params.Name,
		ContactPerson: params.ContactPerson,
		Email:         params.Email,
		Phone:         params.Phone,
		Address:       params.Address,
		CreatedAt:     time.Now(),
	}
	r.s.suppliers = append(r.s.suppliers, s)
	return s, nil
}

func (r fakeCatalogRepo) ListSuppliers(context.Context) ([]model.Supplier, error) {
	return slices.Clone(r.s.suppliers), nil
}

// fakeReportRepo aggregates the in-memory sales. Date range filtering is
// left to the SQL implementation.
type fakeReportRepo struct{ s *memStore }

func (r fakeReportRepo) WithDB(db.DB) repository.ReportRepository { return r }

func (r fakeReportRepo) SalesSummary(context.Context, model.DateRange) (model.SalesSummary, error) {
	var summary model.SalesSummary
	for _, sale := range r.s.sales {
		summary.Count++
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.FinalAmount)
		summary.TotalDiscounts = summary.TotalDiscounts.Add(sale.DiscountAmount)
	}
	if summary.Count > 0 {
		summary.AvgSaleAmount = summary.TotalRevenue.Div(decimal.NewFromInt(int64(summary.Count)))
	}
	return summary, nil
}

func (r fakeReportRepo) TopProducts(context.Context, model.DateRange, int) ([]model.TopProduct, error) {
	return []model.TopProduct{}, nil
}

func (r fakeReportRepo) DailySales(context.Context, model.DateRange, int) ([]model.DailySales, error) {
	return []model.DailySales{}, nil
}

func (r fakeReportRepo) ProductStockStats(context.Context) (model.ProductStockStats, error) {
	var stats model.ProductStockStats
	for _, p := range r.s.products {
		if !p.IsActive {
			continue
		}
		stats.TotalProducts++
		if p.CurrentStock <= p.ReorderPoint {
			stats.LowStockCount++
		}
		if p.CurrentStock == 0 {
			stats.OutOfStockCount++
		}
		stats.InventoryValue = stats.InventoryValue.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
	}
	return stats, nil
}

func (r fakeReportRepo) SalesTotals(_ context.Context, from, to time.Time) (model.SalesTotals, error) {
	var totals model.SalesTotals
	for _, sale := range r.s.sales {
		if !sale.SaleDate.Before(from) && sale.SaleDate.Before(to) {
			totals.Count++
			totals.Amount = totals.Amount.Add(sale.FinalAmount)
		}
	}
	return totals, nil
}

// testEnv wires every service against one memStore.
type testEnv struct {
	store      *memStore
	alertSvc   AlertService
	stockSvc   StockService
	saleSvc    *saleService
	reportSvc  *reportService
	productSvc ProductService
	catalogSvc CatalogService
}

func newTestEnv(t *testing.T, saleCfg config.Sale) testEnv {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	store := newMemStore()
	fdb := &fakeDB{store: store}

	productRepo := fakeProductRepo{store}
	movementRepo := fakeStockMovementRepo{store}
	alertRepo := fakeAlertRepo{store}
	outboxRepo := fakeOutboxMsgRepo{store}

	alertSvc := NewAlertService(fdb, productRepo, alertRepo, outboxRepo)

	return testEnv{
		store:      store,
		alertSvc:   alertSvc,
		stockSvc:   NewStockService(fdb, v, productRepo, movementRepo, alertSvc),
		saleSvc:    NewSaleService(saleCfg, fdb, v, productRepo, fakeSaleRepo{store}, movementRepo, outboxRepo, alertSvc).(*saleService),
		reportSvc:  NewReportService(fdb, fakeReportRepo{store}, productRepo, alertRepo).(*reportService),
		productSvc: NewProductService(fdb, v, productRepo, movementRepo, alertSvc),
		catalogSvc: NewCatalogService(fdb, v, fakeCatalogRepo{store}),
	}
}

// requireBalanced asserts that every product's stock equals the sum of its
// movements.
func requireBalanced(t *testing.T, env testEnv) {
	t.Helper()
	for id := range env.store.products {
		rec, err := env.stockSvc.ReconcileStock(context.Background(), id)
		require.NoError(t, err)
		require.True(t, rec.Balanced(), "product %d: stock %d, movements %d", id, rec.CurrentStock, rec.MovementTotal)
	}
}
