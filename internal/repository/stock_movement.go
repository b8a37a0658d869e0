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

type CreateStockMovementParams struct {
	ProductID       int64
	MovementType    model.MovementType
	Quantity        int
	UnitPrice       *decimal.Decimal
	ReferenceNumber *string
	Notes           string
}

// StockMovementRepository is append only: movements are never updated or
// deleted.
type StockMovementRepository interface {
	WithDB(db db.DB) StockMovementRepository
	CreateStockMovement(ctx context.Context, params CreateStockMovementParams) (model.StockMovement, error)
	ListStockMovements(ctx context.Context, productID int64, limit int) ([]model.StockMovement, error)
	// SumStockMovements returns the sum of the quantity deltas and the number
	// of movements recorded for the product.
	SumStockMovements(ctx context.Context, productID int64) (total int, count int, err error)
}

type stockMovementRepository struct {
	db db.DB
}

func NewStockMovementRepository(db db.DB) StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (r stockMovementRepository) WithDB(db db.DB) StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (r stockMovementRepository) CreateStockMovement(ctx context.Context, params CreateStockMovementParams) (model.StockMovement, error) {
	m := model.StockMovement{
		ProductID:       params.ProductID,
		MovementType:    params.MovementType,
		Quantity:        params.Quantity,
		UnitPrice:       params.UnitPrice,
		ReferenceNumber: params.ReferenceNumber,
		Notes:           params.Notes,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO stock_movements (product_id, movement_type, quantity, unit_price, reference_number, notes)
		VALUES (@product_id, @movement_type, @quantity, @unit_price, @reference_number, @notes)
		RETURNING id, created_at
	`, pgx.NamedArgs{
		"product_id":       params.ProductID,
		"movement_type":    string(params.MovementType),
		"quantity":         params.Quantity,
		"unit_price":       nullableNumeric(params.UnitPrice),
		"reference_number": params.ReferenceNumber,
		"notes":            params.Notes,
	}).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return model.StockMovement{}, fmt.Errorf("insert stock movement: %w", err)
	}

	return m, nil
}

func (r stockMovementRepository) ListStockMovements(ctx context.Context, productID int64, limit int) ([]model.StockMovement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, movement_type, quantity, unit_price, reference_number, notes, created_at
		FROM stock_movements
		WHERE product_id = @product_id
		ORDER BY created_at DESC, id DESC
		LIMIT @limit
	`, pgx.NamedArgs{"product_id": productID, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("query stock movements: %w", err)
	}

	movements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.StockMovement, error) {
		var (
			m            model.StockMovement
			movementType string
			unitPrice    pgtype.Numeric
		)
		if err := row.Scan(
			&m.ID,
			&m.ProductID,
			&movementType,
			&m.Quantity,
			&unitPrice,
			&m.ReferenceNumber,
			&m.Notes,
			&m.CreatedAt,
		); err != nil {
			return model.StockMovement{}, err
		}
		m.MovementType = model.MovementType(movementType)
		m.UnitPrice = nullableDecimal(unitPrice)
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect stock movements: %w", err)
	}

	return movements, nil
}

func (r stockMovementRepository) SumStockMovements(ctx context.Context, productID int64) (int, int, error) {
	var total, count int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0), COUNT(*)
		FROM stock_movements
		WHERE product_id = @product_id
	`, pgx.NamedArgs{"product_id": productID}).Scan(&total, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("sum stock movements: %w", err)
	}

	return total, count, nil
}
