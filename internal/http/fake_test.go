package http_test

import (
	"context"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

type fakeProductService struct {
	products   []model.Product
	created    *service.CreateProductParams
	movements  []model.StockMovement
	movementsN int
}

func (f *fakeProductService) CreateProduct(_ context.Context, params service.CreateProductParams) (model.Product, error) {
	f.created = &params
	return model.Product{
		ID:           1,
		Name:         params.Name,
		SKU:          params.SKU,
		CurrentStock: params.InitialStock,
		MinimumStock: params.MinimumStock,
		MaximumStock: params.MaximumStock,
		ReorderPoint: params.ReorderPoint,
		IsActive:     true,
	}, nil
}

func (f *fakeProductService) GetProduct(_ context.Context, productID int64) (model.Product, error) {
	for _, p := range f.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return model.Product{}, apperr.ProductNotFoundErr
}

func (f *fakeProductService) ListProducts(context.Context) ([]model.Product, error) {
	return f.products, nil
}

func (f *fakeProductService) ListStockMovements(_ context.Context, _ int64, limit int) ([]model.StockMovement, error) {
	f.movementsN = limit
	return f.movements, nil
}

type fakeStockService struct {
	params *service.SetStockParams
	rec    model.StockReconciliation
}

func (f *fakeStockService) SetStock(_ context.Context, params service.SetStockParams) (model.StockMovement, error) {
	f.params = &params
	return model.StockMovement{ID: 9, ProductID: params.ProductID, MovementType: params.MovementType, Quantity: params.NewStock}, nil
}

func (f *fakeStockService) ReconcileStock(context.Context, int64) (model.StockReconciliation, error) {
	return f.rec, nil
}

type fakeSaleService struct {
	params *service.CreateSaleParams
	err    error
	sales  []model.Sale
}

func (f *fakeSaleService) CreateSale(_ context.Context, params service.CreateSaleParams) (model.Sale, error) {
	f.params = &params
	if f.err != nil {
		return model.Sale{}, f.err
	}
	return model.Sale{ID: 1, SaleNumber: "SALE-1", PaymentMethod: params.PaymentMethod}, nil
}

func (f *fakeSaleService) GetSale(context.Context, int64) (model.Sale, error) {
	return model.Sale{}, f.err
}

func (f *fakeSaleService) ListSales(context.Context, int) ([]model.Sale, error) {
	return f.sales, nil
}

type fakeAlertService struct {
	alert   *model.Alert
	unread  int
	readErr error
}

func (f *fakeAlertService) WithDB(db.DB) service.AlertService { return f }

func (f *fakeAlertService) Evaluate(context.Context, int64) (*model.Alert, error) {
	return f.alert, nil
}

func (f *fakeAlertService) ListUnreadAlerts(context.Context) ([]model.Alert, error) {
	return []model.Alert{}, nil
}

func (f *fakeAlertService) CountUnreadAlerts(context.Context) (int, error) {
	return f.unread, nil
}

func (f *fakeAlertService) MarkAlertRead(context.Context, int64) error {
	return f.readErr
}

type fakeCatalogService struct {
	err error
}

func (f *fakeCatalogService) CreateCategory(_ context.Context, params service.CreateCategoryParams) (model.Category, error) {
	if f.err != nil {
		return model.Category{}, f.err
	}
	return model.Category{ID: 1, Name: params.Name}, nil
}

func (f *fakeCatalogService) ListCategories(context.Context) ([]model.Category, error) {
	return []model.Category{}, nil
}

func (f *fakeCatalogService) CreateSupplier(_ context.Context, params service.CreateSupplierParams) (model.Supplier, error) {
	return model.Supplier{ID: 1, Name: params.Name}, nil
}

func (f *fakeCatalogService) ListSuppliers(context.Context) ([]model.Supplier, error) {
	return []model.Supplier{}, nil
}

type fakeReportService struct {
	dateRange *model.DateRange
	lowStock  []model.Product
}

func (f *fakeReportService) SalesReport(_ context.Context, dateRange model.DateRange) (model.SalesReport, error) {
	f.dateRange = &dateRange
	return model.SalesReport{}, nil
}

func (f *fakeReportService) DashboardStats(context.Context) (model.DashboardStats, error) {
	return model.DashboardStats{TotalProducts: 3, UnreadAlerts: 2}, nil
}

func (f *fakeReportService) LowStockProducts(context.Context) ([]model.Product, error) {
	return f.lowStock, nil
}

type fakeHealth struct {
	healthy bool
}

func (f fakeHealth) IsHealthy(context.Context) (bool, error) {
	return f.healthy, nil
}
