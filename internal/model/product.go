package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	SupplierID   *int64          `json:"supplier_id"`
	SupplierName *string         `json:"supplier_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	CurrentStock int             `json:"current_stock"`
	MinimumStock int             `json:"minimum_stock"`
	MaximumStock int             `json:"maximum_stock"`
	ReorderPoint int             `json:"reorder_point"`
	Location     string          `json:"location"`
	Barcode      string          `json:"barcode"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockStatus is the display badge for a product's stock level.
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "Out of Stock"
	StockStatusCritical   StockStatus = "Critical"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusInStock    StockStatus = "In Stock"
)

// StockStatus derives the display badge. Overstock is reported as In Stock.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.CurrentStock == 0:
		return StockStatusOutOfStock
	case p.CurrentStock <= p.MinimumStock:
		return StockStatusCritical
	case p.CurrentStock <= p.ReorderPoint:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// ReorderGap is how far the stock sits above (positive) or below (negative)
// the reorder point.
func (p Product) ReorderGap() int {
	return p.CurrentStock - p.ReorderPoint
}
