package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

const (
	InitialStockNote      = "Initial stock"
	DefaultMovementsLimit = 100
)

type CreateProductParams struct {
	Name         string          `validate:"required,max=200"`
	SKU          string          `validate:"required,max=64,sku"`
	Description  string          `validate:"max=2000"`
	CategoryID   *int64          `validate:"omitempty,gt=0"`
	SupplierID   *int64          `validate:"omitempty,gt=0"`
	UnitPrice    decimal.Decimal `validate:"gte=0"`
	CostPrice    decimal.Decimal `validate:"gte=0"`
	InitialStock int             `validate:"gte=0"`
	MinimumStock int             `validate:"gte=0"`
	MaximumStock int             `validate:"gte=0"`
	ReorderPoint int             `validate:"gte=0"`
	Location     string          `validate:"max=100"`
	Barcode      string          `validate:"max=100"`
}

type ProductService interface {
	// CreateProduct stores the product and records its initial stock as an IN
	// movement.
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	GetProduct(ctx context.Context, productID int64) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListStockMovements(ctx context.Context, productID int64, limit int) ([]model.StockMovement, error)
}

type productService struct {
	db                db.DB
	validator         validator.Validator
	productRepo       repository.ProductRepository
	stockMovementRepo repository.StockMovementRepository
	alertSvc          AlertService
}

func NewProductService(
	db db.DB,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	stockMovementRepo repository.StockMovementRepository,
	alertSvc AlertService,
) ProductService {
	return &productService{
		db:                db,
		validator:         validator,
		productRepo:       productRepo,
		stockMovementRepo: stockMovementRepo,
		alertSvc:          alertSvc,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.SKU = strings.TrimSpace(params.SKU)

	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, validationErr(err)
	}

	var product model.Product
	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		productRepo := s.productRepo.WithDB(tx)

		id, err := productRepo.CreateProduct(ctx, repository.CreateProductParams{
			Name:         params.Name,
			SKU:          params.SKU,
			Description:  params.Description,
			CategoryID:   params.CategoryID,
			SupplierID:   params.SupplierID,
			UnitPrice:    params.UnitPrice,
			CostPrice:    params.CostPrice,
			CurrentStock: params.InitialStock,
			MinimumStock: params.MinimumStock,
			MaximumStock: params.MaximumStock,
			ReorderPoint: params.ReorderPoint,
			Location:     params.Location,
			Barcode:      params.Barcode,
		})
		if err != nil {
			return fmt.Errorf("product repository create product: %w", constraintErr(err))
		}

		if params.InitialStock != 0 {
			costPrice := params.CostPrice
			if _, err := s.stockMovementRepo.
				WithDB(tx).
				CreateStockMovement(ctx, repository.CreateStockMovementParams{
					ProductID:    id,
					MovementType: model.MovementTypeIn,
					Quantity:     params.InitialStock,
					UnitPrice:    &costPrice,
					Notes:        InitialStockNote,
				}); err != nil {
				return fmt.Errorf("stock movement repository create stock movement: %w", err)
			}
		}

		if _, err := s.alertSvc.WithDB(tx).Evaluate(ctx, id); err != nil {
			return fmt.Errorf("alert service evaluate: %w", err)
		}

		product, err = productRepo.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("product repository get product: %w", err)
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	product, err := s.productRepo.WithDB(s.db).GetProduct(ctx, productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", notFoundAs(err, apperr.ProductNotFoundErr))
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.WithDB(s.db).ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list active products: %w", err)
	}

	return products, nil
}

func (s *productService) ListStockMovements(ctx context.Context, productID int64, limit int) ([]model.StockMovement, error) {
	if limit <= 0 {
		limit = DefaultMovementsLimit
	}

	if _, err := s.productRepo.WithDB(s.db).GetProduct(ctx, productID); err != nil {
		return nil, fmt.Errorf("product repository get product: %w", notFoundAs(err, apperr.ProductNotFoundErr))
	}

	movements, err := s.stockMovementRepo.WithDB(s.db).ListStockMovements(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("stock movement repository list stock movements: %w", err)
	}

	return movements, nil
}
