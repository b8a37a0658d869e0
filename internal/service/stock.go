package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

// SetStockParams sets a product's stock to an absolute value. NewStock is not
// bounded here; callers reject negative values.
type SetStockParams struct {
	ProductID       int64              `validate:"gt=0"`
	NewStock        int                `validate:"-"`
	MovementType    model.MovementType `validate:"enum"`
	Notes           string             `validate:"max=1000"`
	ReferenceNumber *string            `validate:"omitempty,max=100"`
	UnitPrice       *decimal.Decimal   `validate:"omitempty,gte=0"`
}

type StockService interface {
	// SetStock writes the new stock, appends a movement with the signed delta
	// (a zero delta is still recorded) and re-evaluates the product's alerts,
	// all in one transaction.
	SetStock(ctx context.Context, params SetStockParams) (model.StockMovement, error)
	// ReconcileStock compares current_stock with the sum of the movements.
	ReconcileStock(ctx context.Context, productID int64) (model.StockReconciliation, error)
}

type stockService struct {
	db                db.DB
	validator         validator.Validator
	productRepo       repository.ProductRepository
	stockMovementRepo repository.StockMovementRepository
	alertSvc          AlertService
}

func NewStockService(
	db db.DB,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	stockMovementRepo repository.StockMovementRepository,
	alertSvc AlertService,
) StockService {
	return &stockService{
		db:                db,
		validator:         validator,
		productRepo:       productRepo,
		stockMovementRepo: stockMovementRepo,
		alertSvc:          alertSvc,
	}
}

func (s *stockService) SetStock(ctx context.Context, params SetStockParams) (model.StockMovement, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.StockMovement{}, validationErr(err)
	}

	var movement model.StockMovement
	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		productRepo := s.productRepo.WithDB(tx)

		current, err := productRepo.LockProductStock(ctx, params.ProductID)
		if err != nil {
			return fmt.Errorf("product repository lock product stock: %w", notFoundAs(err, apperr.ProductNotFoundErr))
		}

		if err := productRepo.SetProductStock(ctx, params.ProductID, params.NewStock); err != nil {
			return fmt.Errorf("product repository set product stock: %w", err)
		}

		movement, err = s.stockMovementRepo.
			WithDB(tx).
			CreateStockMovement(ctx, repository.CreateStockMovementParams{
				ProductID:       params.ProductID,
				MovementType:    params.MovementType,
				Quantity:        params.NewStock - current,
				UnitPrice:       params.UnitPrice,
				ReferenceNumber: params.ReferenceNumber,
				Notes:           params.Notes,
			})
		if err != nil {
			return fmt.Errorf("stock movement repository create stock movement: %w", err)
		}

		if _, err := s.alertSvc.WithDB(tx).Evaluate(ctx, params.ProductID); err != nil {
			return fmt.Errorf("alert service evaluate: %w", err)
		}

		return nil
	}); err != nil {
		return model.StockMovement{}, fmt.Errorf("db with tx: %w", err)
	}

	return movement, nil
}

func (s *stockService) ReconcileStock(ctx context.Context, productID int64) (model.StockReconciliation, error) {
	var rec model.StockReconciliation

	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		product, err := s.productRepo.WithDB(tx).GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("product repository get product: %w", notFoundAs(err, apperr.ProductNotFoundErr))
		}

		total, count, err := s.stockMovementRepo.WithDB(tx).SumStockMovements(ctx, productID)
		if err != nil {
			return fmt.Errorf("stock movement repository sum stock movements: %w", err)
		}

		rec = model.StockReconciliation{
			ProductID:     productID,
			CurrentStock:  product.CurrentStock,
			MovementTotal: total,
			MovementCount: count,
		}
		return nil
	}); err != nil {
		return model.StockReconciliation{}, fmt.Errorf("db with tx: %w", err)
	}

	return rec, nil
}
