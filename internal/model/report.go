package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is a closed range of calendar days. A nil bound is open-ended.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

type SalesSummary struct {
	Count          int             `json:"count"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	AvgSaleAmount  decimal.Decimal `json:"avg_sale_amount"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
}

type TopProduct struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type DailySales struct {
	Date    time.Time       `json:"date"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type SalesReport struct {
	Summary     SalesSummary `json:"summary"`
	TopProducts []TopProduct `json:"top_products"`
	DailySales  []DailySales `json:"daily_sales"`
}

// ProductStockStats aggregates active products.
type ProductStockStats struct {
	TotalProducts   int
	LowStockCount   int
	OutOfStockCount int
	InventoryValue  decimal.Decimal
}

// SalesTotals is the count and revenue of the sales in a date range.
type SalesTotals struct {
	Count  int
	Amount decimal.Decimal
}

type DashboardStats struct {
	TotalProducts    int             `json:"total_products"`
	LowStockCount    int             `json:"low_stock_count"`
	OutOfStockCount  int             `json:"out_of_stock_count"`
	InventoryValue   decimal.Decimal `json:"inventory_value"`
	TodaySalesCount  int             `json:"today_sales_count"`
	TodaySalesAmount decimal.Decimal `json:"today_sales_amount"`
	MonthSalesCount  int             `json:"month_sales_count"`
	MonthSalesAmount decimal.Decimal `json:"month_sales_amount"`
	UnreadAlerts     int             `json:"unread_alerts"`
}
