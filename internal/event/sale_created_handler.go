package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

const TopicSaleCreated = "sales.sale.created"

type SaleCreatedLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type SaleCreatedEvent struct {
	SaleID        int64             `json:"sale_id"`
	SaleNumber    string            `json:"sale_number"`
	CustomerName  string            `json:"customer_name"`
	FinalAmount   decimal.Decimal   `json:"final_amount"`
	PaymentMethod string            `json:"payment_method"`
	SaleDate      time.Time         `json:"sale_date"`
	Lines         []SaleCreatedLine `json:"lines"`
}

func (s *Service) handleSaleCreatedEvent(ctx context.Context, ev SaleCreatedEvent) error {
	units := 0
	for _, l := range ev.Lines {
		units += l.Quantity
	}

	s.logger.InfoContext(ctx, "sale recorded",
		slog.String("sale_number", ev.SaleNumber),
		slog.String("final_amount", ev.FinalAmount.StringFixed(2)),
		slog.String("payment_method", ev.PaymentMethod),
		slog.Int("lines", len(ev.Lines)),
		slog.Int("units", units),
	)
	return nil
}
