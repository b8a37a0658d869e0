package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

type CreateProductParams struct {
	Name         string
	SKU          string
	Description  string
	CategoryID   *int64
	SupplierID   *int64
	UnitPrice    decimal.Decimal
	CostPrice    decimal.Decimal
	CurrentStock int
	MinimumStock int
	MaximumStock int
	ReorderPoint int
	Location     string
	Barcode      string
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, params CreateProductParams) (int64, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListActiveProducts(ctx context.Context) ([]model.Product, error)
	// ListLowStockProducts returns active products at or below their reorder
	// point, most deficient first.
	ListLowStockProducts(ctx context.Context) ([]model.Product, error)
	// LockProductStock locks the product row until the surrounding transaction
	// ends and returns its current stock.
	LockProductStock(ctx context.Context, id int64) (int, error)
	SetProductStock(ctx context.Context, id int64, stock int) error
	// AdjustProductStock adds delta to the stock and returns the new value.
	AdjustProductStock(ctx context.Context, id int64, delta int) (int, error)
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

const selectProduct = `
	SELECT
		p.id,
		p.name,
		p.sku,
		p.description,
		p.category_id,
		c.name,
		p.supplier_id,
		s.name,
		p.unit_price,
		p.cost_price,
		p.current_stock,
		p.minimum_stock,
		p.maximum_stock,
		p.reorder_point,
		p.location,
		p.barcode,
		p.is_active,
		p.created_at,
		p.updated_at
	FROM products AS p
	LEFT JOIN categories AS c ON c.id = p.category_id
	LEFT JOIN suppliers AS s ON s.id = p.supplier_id`

func (r productRepository) CreateProduct(ctx context.Context, params CreateProductParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (
			name, sku, description, category_id, supplier_id, unit_price, cost_price,
			current_stock, minimum_stock, maximum_stock, reorder_point, location, barcode
		) VALUES (
			@name, @sku, @description, @category_id, @supplier_id, @unit_price, @cost_price,
			@current_stock, @minimum_stock, @maximum_stock, @reorder_point, @location, @barcode
		)
		RETURNING id
	`, pgx.NamedArgs{
		"name":          params.Name,
		"sku":           params.SKU,
		"description":   params.Description,
		"category_id":   params.CategoryID,
		"supplier_id":   params.SupplierID,
		"unit_price":    numericFromDecimal(params.UnitPrice),
		"cost_price":    numericFromDecimal(params.CostPrice),
		"current_stock": params.CurrentStock,
		"minimum_stock": params.MinimumStock,
		"maximum_stock": params.MaximumStock,
		"reorder_point": params.ReorderPoint,
		"location":      params.Location,
		"barcode":       params.Barcode,
	}).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}

	return id, nil
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx, selectProduct+` WHERE p.id = @id`, pgx.NamedArgs{"id": id})

	product, err := scanProduct(row)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", db.NotFoundIfNoRows(err))
	}

	return product, nil
}

func (r productRepository) ListActiveProducts(ctx context.Context) ([]model.Product, error) {
	products, err := r.queryProducts(ctx, selectProduct+`
		WHERE p.is_active
		ORDER BY p.name, p.id`)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}

	return products, nil
}

func (r productRepository) ListLowStockProducts(ctx context.Context) ([]model.Product, error) {
	products, err := r.queryProducts(ctx, selectProduct+`
		WHERE p.is_active AND p.current_stock <= p.reorder_point
		ORDER BY p.current_stock - p.reorder_point, p.id`)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}

	return products, nil
}

func (r productRepository) LockProductStock(ctx context.Context, id int64) (int, error) {
	var stock int
	err := r.db.QueryRow(ctx, `
		SELECT current_stock
		FROM products
		WHERE id = @id
		FOR UPDATE
	`, pgx.NamedArgs{"id": id}).Scan(&stock)
	if err != nil {
		return 0, fmt.Errorf("lock product stock: %w", db.NotFoundIfNoRows(err))
	}

	return stock, nil
}

func (r productRepository) SetProductStock(ctx context.Context, id int64, stock int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET current_stock = @stock, updated_at = NOW()
		WHERE id = @id
	`, pgx.NamedArgs{"id": id, "stock": stock})
	if err != nil {
		return fmt.Errorf("set product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set product stock: %w", db.ErrNotFound)
	}

	return nil
}

func (r productRepository) AdjustProductStock(ctx context.Context, id int64, delta int) (int, error) {
	var stock int
	err := r.db.QueryRow(ctx, `
		UPDATE products
		SET current_stock = current_stock + @delta, updated_at = NOW()
		WHERE id = @id
		RETURNING current_stock
	`, pgx.NamedArgs{"id": id, "delta": delta}).Scan(&stock)
	if err != nil {
		return 0, fmt.Errorf("adjust product stock: %w", db.NotFoundIfNoRows(err))
	}

	return stock, nil
}

func (r productRepository) queryProducts(ctx context.Context, sql string) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}

	return products, nil
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		p         model.Product
		unitPrice pgtype.Numeric
		costPrice pgtype.Numeric
	)

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Description,
		&p.CategoryID,
		&p.CategoryName,
		&p.SupplierID,
		&p.SupplierName,
		&unitPrice,
		&costPrice,
		&p.CurrentStock,
		&p.MinimumStock,
		&p.MaximumStock,
		&p.ReorderPoint,
		&p.Location,
		&p.Barcode,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return model.Product{}, err
	}

	p.UnitPrice = decimalFromNumeric(unitPrice)
	p.CostPrice = decimalFromNumeric(costPrice)

	return p, nil
}
