package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/event"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

type AlertService interface {
	// WithDB binds the service to db so evaluation joins the caller's
	// transaction.
	WithDB(db db.DB) AlertService
	// Evaluate replaces the product's unread alert with one derived from its
	// current stock. It returns the new alert, or nil when the stock is within
	// thresholds or the product does not exist.
	Evaluate(ctx context.Context, productID int64) (*model.Alert, error)
	ListUnreadAlerts(ctx context.Context) ([]model.Alert, error)
	CountUnreadAlerts(ctx context.Context) (int, error)
	MarkAlertRead(ctx context.Context, alertID int64) error
}

type alertService struct {
	db            db.DB
	productRepo   repository.ProductRepository
	alertRepo     repository.AlertRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewAlertService(
	db db.DB,
	productRepo repository.ProductRepository,
	alertRepo repository.AlertRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) AlertService {
	return &alertService{
		db:            db,
		productRepo:   productRepo,
		alertRepo:     alertRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (s *alertService) WithDB(db db.DB) AlertService {
	return &alertService{
		db:            db,
		productRepo:   s.productRepo,
		alertRepo:     s.alertRepo,
		outboxMsgRepo: s.outboxMsgRepo,
	}
}

func (s *alertService) Evaluate(ctx context.Context, productID int64) (*model.Alert, error) {
	var raised *model.Alert

	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		product, err := s.productRepo.WithDB(tx).GetProduct(ctx, productID)
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("product repository get product: %w", err)
		}

		alertRepo := s.alertRepo.WithDB(tx)
		if err := alertRepo.DeleteUnreadAlerts(ctx, productID); err != nil {
			return fmt.Errorf("alert repository delete unread alerts: %w", err)
		}

		alertType, msg, ok := classifyStock(product)
		if !ok {
			return nil
		}

		alert, err := alertRepo.CreateAlert(ctx, repository.CreateAlertParams{
			ProductID: productID,
			AlertType: alertType,
			Message:   msg,
		})
		if err != nil {
			return fmt.Errorf("alert repository create alert: %w", err)
		}
		alert.ProductName = product.Name
		alert.ProductSKU = product.SKU

		if err := publish(ctx, s.outboxMsgRepo.WithDB(tx), event.TopicAlertRaised, strconv.FormatInt(productID, 10), event.AlertRaisedEvent{
			AlertID:      alert.ID,
			ProductID:    productID,
			ProductName:  product.Name,
			SKU:          product.SKU,
			AlertType:    string(alertType),
			Message:      msg,
			CurrentStock: product.CurrentStock,
			RaisedAt:     alert.CreatedAt,
		}); err != nil {
			return err
		}

		raised = &alert
		return nil
	}); err != nil {
		return nil, fmt.Errorf("db with tx: %w", err)
	}

	return raised, nil
}

// classifyStock applies the thresholds top-down; the first match wins.
func classifyStock(p model.Product) (model.AlertType, string, bool) {
	switch {
	case p.CurrentStock == 0:
		return model.AlertTypeOutOfStock,
			fmt.Sprintf("Product '%s' is OUT OF STOCK!", p.Name), true
	case p.CurrentStock <= p.MinimumStock:
		return model.AlertTypeLowStock,
			fmt.Sprintf("Product '%s' is critically low (Stock: %d, Min: %d)", p.Name, p.CurrentStock, p.MinimumStock), true
	case p.CurrentStock <= p.ReorderPoint:
		return model.AlertTypeLowStock,
			fmt.Sprintf("Product '%s' needs reordering (Stock: %d, Reorder at: %d)", p.Name, p.CurrentStock, p.ReorderPoint), true
	case p.CurrentStock > p.MaximumStock:
		return model.AlertTypeOverstock,
			fmt.Sprintf("Product '%s' is overstocked (Stock: %d, Max: %d)", p.Name, p.CurrentStock, p.MaximumStock), true
	default:
		return "", "", false
	}
}

func (s *alertService) ListUnreadAlerts(ctx context.Context) ([]model.Alert, error) {
	alerts, err := s.alertRepo.WithDB(s.db).ListUnreadAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("alert repository list unread alerts: %w", err)
	}

	return alerts, nil
}

func (s *alertService) CountUnreadAlerts(ctx context.Context) (int, error) {
	count, err := s.alertRepo.WithDB(s.db).CountUnreadAlerts(ctx)
	if err != nil {
		return 0, fmt.Errorf("alert repository count unread alerts: %w", err)
	}

	return count, nil
}

func (s *alertService) MarkAlertRead(ctx context.Context, alertID int64) error {
	if err := s.alertRepo.WithDB(s.db).MarkAlertRead(ctx, alertID); err != nil {
		return fmt.Errorf("alert repository mark alert read: %w", notFoundAs(err, apperr.AlertNotFoundErr))
	}

	return nil
}
