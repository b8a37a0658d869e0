package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
)

func TestReportServiceDashboardStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.Sale{AllowOversell: true})
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	env.reportSvc.now = func() time.Time { return now }

	a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 3, CostPrice: decimal.RequireFromString("1.005"), MinimumStock: 1, ReorderPoint: 5, MaximumStock: 10})
	env.store.addProduct(model.Product{Name: "B", CurrentStock: 0, CostPrice: decimal.RequireFromString("9.99"), MinimumStock: 1, ReorderPoint: 5, MaximumStock: 10})
	env.store.addProduct(model.Product{Name: "C", CurrentStock: 7, CostPrice: decimal.RequireFromString("2.50"), MinimumStock: 1, ReorderPoint: 5, MaximumStock: 10})
	inactive := env.store.addProduct(model.Product{Name: "D", CurrentStock: 100, CostPrice: decimal.RequireFromString("1")})
	inactive.IsActive = false
	env.store.products[inactive.ID] = inactive

	for _, sale := range []struct {
		at     time.Time
		amount string
	}{
		{now.Add(-time.Hour), "10.10"},
		{now.Add(-24 * time.Hour), "5.00"},
		{time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), "100.00"},
	} {
		env.saleSvc.now = func() time.Time { return sale.at }
		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{
			FinalAmount: decimal.RequireFromString(sale.amount),
			Lines:       []SaleLineParams{{ProductID: a.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	stats, err := env.reportSvc.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProducts)
	// A drops to 0 after three sales, joining B.
	assert.Equal(t, 2, stats.OutOfStockCount)
	assert.Equal(t, 2, stats.LowStockCount)
	assert.Equal(t, "17.50", stats.InventoryValue.StringFixed(2))
	assert.Equal(t, 1, stats.TodaySalesCount)
	assert.Equal(t, "10.10", stats.TodaySalesAmount.StringFixed(2))
	assert.Equal(t, 2, stats.MonthSalesCount)
	assert.Equal(t, "15.10", stats.MonthSalesAmount.StringFixed(2))
	// Only A went through an evaluation.
	assert.Equal(t, 1, stats.UnreadAlerts)
}

func TestReportServiceInventoryValueRounding(t *testing.T) {
	env := newTestEnv(t, config.Sale{})
	env.store.addProduct(model.Product{Name: "A", CurrentStock: 3, CostPrice: decimal.RequireFromString("1.005"), ReorderPoint: 1, MaximumStock: 10})

	stats, err := env.reportSvc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("3.02").Equal(stats.InventoryValue), stats.InventoryValue.String())
}

func TestReportServiceLowStockProducts(t *testing.T) {
	env := newTestEnv(t, config.Sale{})
	atReorder := env.store.addProduct(model.Product{Name: "at reorder", CurrentStock: 20, ReorderPoint: 20})
	deficient := env.store.addProduct(model.Product{Name: "deficient", CurrentStock: 2, ReorderPoint: 20})
	env.store.addProduct(model.Product{Name: "healthy", CurrentStock: 25, ReorderPoint: 20})

	products, err := env.reportSvc.LowStockProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, deficient.ID, products[0].ID)
	assert.Equal(t, atReorder.ID, products[1].ID)
	assert.Zero(t, products[1].ReorderGap())
}

func TestReportServiceSalesReport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.Sale{AllowOversell: true})
	a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 10})

	for _, amount := range []string{"10", "20", "25"} {
		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{
			FinalAmount:    decimal.RequireFromString(amount),
			DiscountAmount: decimal.RequireFromString("1"),
			Lines:          []SaleLineParams{{ProductID: a.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	report, err := env.reportSvc.SalesReport(ctx, model.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Summary.Count)
	assert.Equal(t, "55.00", report.Summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "18.33", report.Summary.AvgSaleAmount.StringFixed(2))
	assert.Equal(t, "3.00", report.Summary.TotalDiscounts.StringFixed(2))

	start := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = env.reportSvc.SalesReport(ctx, model.DateRange{Start: &start, End: &end})
	assert.ErrorIs(t, err, apperr.ValidationErr)
}
