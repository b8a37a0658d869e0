package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder mirrors the purchase_orders table. Orders are not mutated by
// any service yet.
type PurchaseOrder struct {
	ID           int64               `json:"id"`
	PONumber     string              `json:"po_number"`
	SupplierID   int64               `json:"supplier_id"`
	OrderDate    time.Time           `json:"order_date"`
	ExpectedDate *time.Time          `json:"expected_date"`
	Status       PurchaseOrderStatus `json:"status"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Notes        string              `json:"notes"`
	Items        []PurchaseOrderItem `json:"items"`
}

type PurchaseOrderItem struct {
	ID               int64           `json:"id"`
	POID             int64           `json:"po_id"`
	ProductID        int64           `json:"product_id"`
	QuantityOrdered  int             `json:"quantity_ordered"`
	QuantityReceived int             `json:"quantity_received"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
}
