package http

import (
	"context"
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tuanvumaihuynh/inventory-pos/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
)

func toSalesReportResponse(report model.SalesReport) gen.SalesReport {
	top := make([]gen.TopProduct, 0, len(report.TopProducts))
	for _, p := range report.TopProducts {
		top = append(top, gen.TopProduct{
			ProductId:    p.ProductID,
			Name:         p.Name,
			TotalSold:    p.TotalSold,
			TotalRevenue: p.TotalRevenue,
		})
	}

	daily := make([]gen.DailySales, 0, len(report.DailySales))
	for _, d := range report.DailySales {
		daily = append(daily, gen.DailySales{
			Date:    openapi_types.Date{Time: d.Date},
			Count:   d.Count,
			Revenue: d.Revenue,
		})
	}

	return gen.SalesReport{
		Summary: gen.SalesSummary{
			Count:          report.Summary.Count,
			TotalRevenue:   report.Summary.TotalRevenue,
			AvgSaleAmount:  report.Summary.AvgSaleAmount,
			TotalDiscounts: report.Summary.TotalDiscounts,
		},
		TopProducts: top,
		DailySales:  daily,
	}
}

type reportHandler struct {
	reportSvc service.ReportService
}

func newReportHandler(reportSvc service.ReportService) *reportHandler {
	return &reportHandler{
		reportSvc: reportSvc,
	}
}

func (h *reportHandler) SalesReport(ctx context.Context, request gen.SalesReportRequestObject) (gen.SalesReportResponseObject, error) {
	var dateRange model.DateRange
	if d := request.Params.StartDate; d != nil {
		dateRange.Start = &d.Time
	}
	if d := request.Params.EndDate; d != nil {
		dateRange.End = &d.Time
	}

	report, err := h.reportSvc.SalesReport(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("report service sales report: %w", err)
	}

	return gen.SalesReport200JSONResponse(toSalesReportResponse(report)), nil
}

func (h *reportHandler) DashboardStats(ctx context.Context, request gen.DashboardStatsRequestObject) (gen.DashboardStatsResponseObject, error) {
	stats, err := h.reportSvc.DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("report service dashboard stats: %w", err)
	}

	return gen.DashboardStats200JSONResponse{
		TotalProducts:    stats.TotalProducts,
		LowStockCount:    stats.LowStockCount,
		OutOfStockCount:  stats.OutOfStockCount,
		InventoryValue:   stats.InventoryValue,
		TodaySalesCount:  stats.TodaySalesCount,
		TodaySalesAmount: stats.TodaySalesAmount,
		MonthSalesCount:  stats.MonthSalesCount,
		MonthSalesAmount: stats.MonthSalesAmount,
		UnreadAlerts:     stats.UnreadAlerts,
	}, nil
}

func (h *reportHandler) ListLowStockProducts(ctx context.Context, request gen.ListLowStockProductsRequestObject) (gen.ListLowStockProductsResponseObject, error) {
	products, err := h.reportSvc.LowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("report service low stock products: %w", err)
	}

	return gen.ListLowStockProducts200JSONResponse(toProductResponses(products)), nil
}
