package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

type CreateSaleParams struct {
	SaleNumber     string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	FinalAmount    decimal.Decimal
	PaymentMethod  model.PaymentMethod
	SaleDate       time.Time
	Notes          string
}

type CreateSaleItemParams struct {
	SaleID     int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

type SaleRepository interface {
	WithDB(db db.DB) SaleRepository
	CreateSale(ctx context.Context, params CreateSaleParams) (int64, error)
	CreateSaleItem(ctx context.Context, params CreateSaleItemParams) (int64, error)
	// GetSale returns the sale header together with its items.
	GetSale(ctx context.Context, id int64) (model.Sale, error)
	// ListRecentSales returns sale headers, newest first, without items.
	ListRecentSales(ctx context.Context, limit int) ([]model.Sale, error)
}

type saleRepository struct {
	db db.DB
}

func NewSaleRepository(db db.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r saleRepository) WithDB(db db.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r saleRepository) CreateSale(ctx context.Context, params CreateSaleParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO sales (
			sale_number, customer_name, customer_email, customer_phone, total_amount,
			discount_amount, tax_amount, final_amount, payment_method, sale_date, notes
		) VALUES (
			@sale_number, @customer_name, @customer_email, @customer_phone, @total_amount,
			@discount_amount, @tax_amount, @final_amount, @payment_method, @sale_date, @notes
		)
		RETURNING id
	`, pgx.NamedArgs{
		"sale_number":     params.SaleNumber,
		"customer_name":   params.CustomerName,
		"customer_email":  params.CustomerEmail,
		"customer_phone":  params.CustomerPhone,
		"total_amount":    numericFromDecimal(params.TotalAmount),
		"discount_amount": numericFromDecimal(params.DiscountAmount),
		"tax_amount":      numericFromDecimal(params.TaxAmount),
		"final_amount":    numericFromDecimal(params.FinalAmount),
		"payment_method":  string(params.PaymentMethod),
		"sale_date":       params.SaleDate,
		"notes":           params.Notes,
	}).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}

	return id, nil
}

func (r saleRepository) CreateSaleItem(ctx context.Context, params CreateSaleItemParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, total_price)
		VALUES (@sale_id, @product_id, @quantity, @unit_price, @total_price)
		RETURNING id
	`, pgx.NamedArgs{
		"sale_id":     params.SaleID,
		"product_id":  params.ProductID,
		"quantity":    params.Quantity,
		"unit_price":  numericFromDecimal(params.UnitPrice),
		"total_price": numericFromDecimal(params.TotalPrice),
	}).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale item: %w", err)
	}

	return id, nil
}

const selectSale = `
	SELECT
		id,
		sale_number,
		customer_name,
		customer_email,
		customer_phone,
		total_amount,
		discount_amount,
		tax_amount,
		final_amount,
		payment_method,
		sale_date,
		notes
	FROM sales`

func (r saleRepository) GetSale(ctx context.Context, id int64) (model.Sale, error) {
	sale, err := scanSale(r.db.QueryRow(ctx, selectSale+` WHERE id = @id`, pgx.NamedArgs{"id": id}))
	if err != nil {
		return model.Sale{}, fmt.Errorf("get sale: %w", db.NotFoundIfNoRows(err))
	}

	rows, err := r.db.Query(ctx, `
		SELECT si.id, si.sale_id, si.product_id, p.name, si.quantity, si.unit_price, si.total_price
		FROM sale_items AS si
		JOIN products AS p ON p.id = si.product_id
		WHERE si.sale_id = @sale_id
		ORDER BY si.id
	`, pgx.NamedArgs{"sale_id": id})
	if err != nil {
		return model.Sale{}, fmt.Errorf("query sale items: %w", err)
	}

	sale.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.SaleItem, error) {
		var (
			item       model.SaleItem
			unitPrice  pgtype.Numeric
			totalPrice pgtype.Numeric
		)
		if err := row.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&unitPrice,
			&totalPrice,
		); err != nil {
			return model.SaleItem{}, err
		}
		item.UnitPrice = decimalFromNumeric(unitPrice)
		item.TotalPrice = decimalFromNumeric(totalPrice)
		return item, nil
	})
	if err != nil {
		return model.Sale{}, fmt.Errorf("collect sale items: %w", err)
	}

	return sale, nil
}

func (r saleRepository) ListRecentSales(ctx context.Context, limit int) ([]model.Sale, error) {
	rows, err := r.db.Query(ctx, selectSale+`
		ORDER BY sale_date DESC, id DESC
		LIMIT @limit
	`, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect sales: %w", err)
	}

	return sales, nil
}

func scanSale(row pgx.Row) (model.Sale, error) {
	var (
		s                           model.Sale
		total, discount, tax, final pgtype.Numeric
		paymentMethod               string
	)

	if err := row.Scan(
		&s.ID,
		&s.SaleNumber,
		&s.CustomerName,
		&s.CustomerEmail,
		&s.CustomerPhone,
		&total,
		&discount,
		&tax,
		&final,
		&paymentMethod,
		&s.SaleDate,
		&s.Notes,
	); err != nil {
		return model.Sale{}, err
	}

	s.TotalAmount = decimalFromNumeric(total)
	s.DiscountAmount = decimalFromNumeric(discount)
	s.TaxAmount = decimalFromNumeric(tax)
	s.FinalAmount = decimalFromNumeric(final)
	s.PaymentMethod = model.PaymentMethod(paymentMethod)
	s.Items = []model.SaleItem{}

	return s, nil
}
