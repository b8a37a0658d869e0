package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale amounts are stored as supplied by the caller; FinalAmount is not
// recomputed from the other amounts.
type Sale struct {
	ID             int64           `json:"id"`
	SaleNumber     string          `json:"sale_number"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerPhone  string          `json:"customer_phone"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	SaleDate       time.Time       `json:"sale_date"`
	Notes          string          `json:"notes"`
	Items          []SaleItem      `json:"items"`
}

type SaleItem struct {
	ID          int64           `json:"id"`
	SaleID      int64           `json:"sale_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}
