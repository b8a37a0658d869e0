package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/event"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

const (
	DefaultCustomerName = "Walk-in Customer"
	DefaultSalesLimit   = 50
)

type SaleLineParams struct {
	ProductID  int64           `validate:"gt=0"`
	Quantity   int             `validate:"gt=0"`
	UnitPrice  decimal.Decimal `validate:"gte=0"`
	TotalPrice decimal.Decimal `validate:"gte=0"`
}

// CreateSaleParams amounts are stored as given and never recomputed from the
// lines. Customer fields are free text.
//
// Requiring at least one line and non-negative amounts is deliberately stricter
// than the transaction needs: an empty sale or a negative amount is rejected
// before any row is touched.
type CreateSaleParams struct {
	// SaleNumber is generated when empty.
	SaleNumber     string              `validate:"max=64"`
	CustomerName   string              `validate:"max=200"`
	CustomerEmail  string              `validate:"max=200"`
	CustomerPhone  string              `validate:"max=50"`
	TotalAmount    decimal.Decimal     `validate:"gte=0"`
	DiscountAmount decimal.Decimal     `validate:"gte=0"`
	TaxAmount      decimal.Decimal     `validate:"gte=0"`
	FinalAmount    decimal.Decimal     `validate:"gte=0"`
	PaymentMethod  model.PaymentMethod `validate:"enum"`
	Notes          string              `validate:"max=1000"`
	Lines          []SaleLineParams    `validate:"min=1,dive"`
}

type SaleService interface {
	// CreateSale records the sale header and lines, decrements stock and
	// appends an OUT movement per line, and re-evaluates each product's
	// alerts. Any failure rolls the whole sale back.
	CreateSale(ctx context.Context, params CreateSaleParams) (model.Sale, error)
	GetSale(ctx context.Context, saleID int64) (model.Sale, error)
	ListSales(ctx context.Context, limit int) ([]model.Sale, error)
}

type saleService struct {
	cfg               config.Sale
	db                db.DB
	validator         validator.Validator
	productRepo       repository.ProductRepository
	saleRepo          repository.SaleRepository
	stockMovementRepo repository.StockMovementRepository
	outboxMsgRepo     repository.OutboxMsgRepository
	alertSvc          AlertService

	now func() time.Time
}

func NewSaleService(
	cfg config.Sale,
	db db.DB,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	stockMovementRepo repository.StockMovementRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
	alertSvc AlertService,
) SaleService {
	return &saleService{
		cfg:               cfg,
		db:                db,
		validator:         validator,
		productRepo:       productRepo,
		saleRepo:          saleRepo,
		stockMovementRepo: stockMovementRepo,
		outboxMsgRepo:     outboxMsgRepo,
		alertSvc:          alertSvc,
		now:               time.Now,
	}
}

func (s *saleService) CreateSale(ctx context.Context, params CreateSaleParams) (model.Sale, error) {
	params.CustomerName = strings.TrimSpace(params.CustomerName)
	if params.CustomerName == "" {
		params.CustomerName = DefaultCustomerName
	}
	if params.PaymentMethod == "" {
		params.PaymentMethod = model.PaymentMethodCash
	}

	if err := s.validator.Validate(params); err != nil {
		return model.Sale{}, validationErr(err)
	}

	saleDate := s.now().UTC()
	if params.SaleNumber == "" {
		params.SaleNumber = newSaleNumber(saleDate)
	}

	sale := model.Sale{
		SaleNumber:     params.SaleNumber,
		CustomerName:   params.CustomerName,
		CustomerEmail:  params.CustomerEmail,
		CustomerPhone:  params.CustomerPhone,
		TotalAmount:    params.TotalAmount,
		DiscountAmount: params.DiscountAmount,
		TaxAmount:      params.TaxAmount,
		FinalAmount:    params.FinalAmount,
		PaymentMethod:  params.PaymentMethod,
		SaleDate:       saleDate,
		Notes:          params.Notes,
		Items:          make([]model.SaleItem, 0, len(params.Lines)),
	}

	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		saleRepo := s.saleRepo.WithDB(tx)
		productRepo := s.productRepo.WithDB(tx)
		stockMovementRepo := s.stockMovementRepo.WithDB(tx)
		alertSvc := s.alertSvc.WithDB(tx)

		saleID, err := saleRepo.CreateSale(ctx, repository.CreateSaleParams{
			SaleNumber:     sale.SaleNumber,
			CustomerName:   sale.CustomerName,
			CustomerEmail:  sale.CustomerEmail,
			CustomerPhone:  sale.CustomerPhone,
			TotalAmount:    sale.TotalAmount,
			DiscountAmount: sale.DiscountAmount,
			TaxAmount:      sale.TaxAmount,
			FinalAmount:    sale.FinalAmount,
			PaymentMethod:  sale.PaymentMethod,
			SaleDate:       sale.SaleDate,
			Notes:          sale.Notes,
		})
		if err != nil {
			return fmt.Errorf("sale repository create sale: %w", constraintErr(err))
		}
		sale.ID = saleID

		for i, line := range params.Lines {
			stock, err := productRepo.LockProductStock(ctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("line %d: product repository lock product stock: %w",
					i, notFoundAs(err, apperr.ProductNotFoundErr.WithMsg("product %d not found", line.ProductID)))
			}

			if !s.cfg.AllowOversell && stock < line.Quantity {
				return apperr.InsufficientStockErr.WithMsg(
					"product %d has %d in stock, %d requested", line.ProductID, stock, line.Quantity)
			}

			itemID, err := saleRepo.CreateSaleItem(ctx, repository.CreateSaleItemParams{
				SaleID:     saleID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: line.TotalPrice,
			})
			if err != nil {
				return fmt.Errorf("line %d: sale repository create sale item: %w", i, err)
			}

			if _, err := productRepo.AdjustProductStock(ctx, line.ProductID, -line.Quantity); err != nil {
				return fmt.Errorf("line %d: product repository adjust product stock: %w", i, err)
			}

			unitPrice := line.UnitPrice
			if _, err := stockMovementRepo.CreateStockMovement(ctx, repository.CreateStockMovementParams{
				ProductID:       line.ProductID,
				MovementType:    model.MovementTypeOut,
				Quantity:        -line.Quantity,
				UnitPrice:       &unitPrice,
				ReferenceNumber: &sale.SaleNumber,
				Notes:           "Sale to " + sale.CustomerName,
			}); err != nil {
				return fmt.Errorf("line %d: stock movement repository create stock movement: %w", i, err)
			}

			if _, err := alertSvc.Evaluate(ctx, line.ProductID); err != nil {
				return fmt.Errorf("line %d: alert service evaluate: %w", i, err)
			}

			sale.Items = append(sale.Items, model.SaleItem{
				ID:         itemID,
				SaleID:     saleID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: line.TotalPrice,
			})
		}

		return publish(ctx, s.outboxMsgRepo.WithDB(tx), event.TopicSaleCreated, sale.SaleNumber, saleCreatedEvent(sale))
	}); err != nil {
		return model.Sale{}, fmt.Errorf("db with tx: %w", err)
	}

	return sale, nil
}

func (s *saleService) GetSale(ctx context.Context, saleID int64) (model.Sale, error) {
	sale, err := s.saleRepo.WithDB(s.db).GetSale(ctx, saleID)
	if err != nil {
		return model.Sale{}, fmt.Errorf("sale repository get sale: %w", notFoundAs(err, apperr.SaleNotFoundErr))
	}

	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, limit int) ([]model.Sale, error) {
	if limit <= 0 {
		limit = DefaultSalesLimit
	}

	sales, err := s.saleRepo.WithDB(s.db).ListRecentSales(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("sale repository list recent sales: %w", err)
	}

	return sales, nil
}

// newSaleNumber formats SALE-YYYYMMDD-HHMMSS and appends a random suffix so
// two sales in the same second do not collide.
func newSaleNumber(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return "SALE-" + t.Format("20060102-150405") + "-" + strings.ToUpper(suffix)
}

func saleCreatedEvent(sale model.Sale) event.SaleCreatedEvent {
	lines := make([]event.SaleCreatedLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		lines = append(lines, event.SaleCreatedLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return event.SaleCreatedEvent{
		SaleID:        sale.ID,
		SaleNumber:    sale.SaleNumber,
		CustomerName:  sale.CustomerName,
		FinalAmount:   sale.FinalAmount,
		PaymentMethod: string(sale.PaymentMethod),
		SaleDate:      sale.SaleDate,
		Lines:         lines,
	}
}
