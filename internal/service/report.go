package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

const (
	topProductsLimit = 10
	dailySalesLimit  = 30
)

type ReportService interface {
	// SalesReport aggregates the sales whose calendar day falls within the
	// closed range. Nil bounds are open-ended.
	SalesReport(ctx context.Context, dateRange model.DateRange) (model.SalesReport, error)
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
	// LowStockProducts lists active products at or below their reorder
	// point, most deficient first.
	LowStockProducts(ctx context.Context) ([]model.Product, error)
}

type reportService struct {
	db          db.DB
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	alertRepo   repository.AlertRepository

	now func() time.Time
}

func NewReportService(
	db db.DB,
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.AlertRepository,
) ReportService {
	return &reportService{
		db:          db,
		reportRepo:  reportRepo,
		productRepo: productRepo,
		alertRepo:   alertRepo,
		now:         time.Now,
	}
}

func (s *reportService) SalesReport(ctx context.Context, dateRange model.DateRange) (model.SalesReport, error) {
	if dateRange.Start != nil && dateRange.End != nil && dateRange.Start.After(*dateRange.End) {
		return model.SalesReport{}, apperr.ValidationErr.WithMsg("start_date must not be after end_date")
	}

	reportRepo := s.reportRepo.WithDB(s.db)

	summary, err := reportRepo.SalesSummary(ctx, dateRange)
	if err != nil {
		return model.SalesReport{}, fmt.Errorf("report repository sales summary: %w", err)
	}
	summary.TotalRevenue = summary.TotalRevenue.Round(2)
	summary.AvgSaleAmount = summary.AvgSaleAmount.Round(2)
	summary.TotalDiscounts = summary.TotalDiscounts.Round(2)

	topProducts, err := reportRepo.TopProducts(ctx, dateRange, topProductsLimit)
	if err != nil {
		return model.SalesReport{}, fmt.Errorf("report repository top products: %w", err)
	}

	dailySales, err := reportRepo.DailySales(ctx, dateRange, dailySalesLimit)
	if err != nil {
		return model.SalesReport{}, fmt.Errorf("report repository daily sales: %w", err)
	}

	return model.SalesReport{
		Summary:     summary,
		TopProducts: topProducts,
		DailySales:  dailySales,
	}, nil
}

func (s *reportService) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	reportRepo := s.reportRepo.WithDB(s.db)

	stock, err := reportRepo.ProductStockStats(ctx)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("report repository product stock stats: %w", err)
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	today, err := reportRepo.SalesTotals(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("report repository today sales totals: %w", err)
	}

	month, err := reportRepo.SalesTotals(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("report repository month sales totals: %w", err)
	}

	unread, err := s.alertRepo.WithDB(s.db).CountUnreadAlerts(ctx)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("alert repository count unread alerts: %w", err)
	}

	return model.DashboardStats{
		TotalProducts:    stock.TotalProducts,
		LowStockCount:    stock.LowStockCount,
		OutOfStockCount:  stock.OutOfStockCount,
		InventoryValue:   stock.InventoryValue.Round(2),
		TodaySalesCount:  today.Count,
		TodaySalesAmount: today.Amount.Round(2),
		MonthSalesCount:  month.Count,
		MonthSalesAmount: month.Amount.Round(2),
		UnreadAlerts:     unread,
	}, nil
}

func (s *reportService) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.WithDB(s.db).ListLowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list low stock products: %w", err)
	}

	return products, nil
}
