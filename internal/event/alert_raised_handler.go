package event

import (
	"context"
	"log/slog"
	"time"
)

const TopicAlertRaised = "inventory.alert.raised"

type AlertRaisedEvent struct {
	AlertID      int64     `json:"alert_id"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	AlertType    string    `json:"alert_type"`
	Message      string    `json:"message"`
	CurrentStock int       `json:"current_stock"`
	RaisedAt     time.Time `json:"raised_at"`
}

func (s *Service) handleAlertRaisedEvent(ctx context.Context, ev AlertRaisedEvent) error {
	s.logger.WarnContext(ctx, "stock alert raised",
		slog.Int64("alert_id", ev.AlertID),
		slog.Int64("product_id", ev.ProductID),
		slog.String("sku", ev.SKU),
		slog.String("alert_type", ev.AlertType),
		slog.Int("current_stock", ev.CurrentStock),
		slog.String("message", ev.Message),
	)
	return nil
}
