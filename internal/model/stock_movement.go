package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement is one append-only entry of a product's stock ledger.
// Quantity is the signed change applied to current_stock.
type StockMovement struct {
	ID              int64            `json:"id"`
	ProductID       int64            `json:"product_id"`
	MovementType    MovementType     `json:"movement_type"`
	Quantity        int              `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	ReferenceNumber *string          `json:"reference_number"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
}

// StockReconciliation compares a product's stock with the sum of its movements.
type StockReconciliation struct {
	ProductID     int64 `json:"product_id"`
	CurrentStock  int   `json:"current_stock"`
	MovementTotal int   `json:"movement_total"`
	MovementCount int   `json:"movement_count"`
}

func (r StockReconciliation) Balanced() bool {
	return r.CurrentStock == r.MovementTotal
}
