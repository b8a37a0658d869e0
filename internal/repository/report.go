package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

// Sale dates are bucketed into calendar days in UTC.
const (
	saleDay         = `(s.sale_date AT TIME ZONE 'UTC')::date`
	saleDateInRange = `(@start::date IS NULL OR ` + saleDay + ` >= @start::date)
		AND (@end::date IS NULL OR ` + saleDay + ` <= @end::date)`
)

type ReportRepository interface {
	WithDB(db db.DB) ReportRepository
	SalesSummary(ctx context.Context, r model.DateRange) (model.SalesSummary, error)
	TopProducts(ctx context.Context, r model.DateRange, limit int) ([]model.TopProduct, error)
	DailySales(ctx context.Context, r model.DateRange, limit int) ([]model.DailySales, error)
	ProductStockStats(ctx context.Context) (model.ProductStockStats, error)
	// SalesTotals sums the sales whose sale_date falls in [from, to).
	SalesTotals(ctx context.Context, from, to time.Time) (model.SalesTotals, error)
}

type reportRepository struct {
	db db.DB
}

func NewReportRepository(db db.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r reportRepository) WithDB(db db.DB) ReportRepository {
	return &reportRepository{db: db}
}

func rangeArgs(dr model.DateRange) pgx.NamedArgs {
	return pgx.NamedArgs{
		"start": dateArg(dr.Start),
		"end":   dateArg(dr.End),
	}
}

func dateArg(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func (r reportRepository) SalesSummary(ctx context.Context, dr model.DateRange) (model.SalesSummary, error) {
	var (
		summary                 model.SalesSummary
		revenue, avg, discounts pgtype.Numeric
	)

	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(s.final_amount), 0),
			COALESCE(AVG(s.final_amount), 0),
			COALESCE(SUM(s.discount_amount), 0)
		FROM sales AS s
		WHERE `+saleDateInRange, rangeArgs(dr)).Scan(&summary.Count, &revenue, &avg, &discounts)
	if err != nil {
		return model.SalesSummary{}, fmt.Errorf("sales summary: %w", err)
	}

	summary.TotalRevenue = decimalFromNumeric(revenue)
	summary.AvgSaleAmount = decimalFromNumeric(avg)
	summary.TotalDiscounts = decimalFromNumeric(discounts)

	return summary, nil
}

func (r reportRepository) TopProducts(ctx context.Context, dr model.DateRange, limit int) ([]model.TopProduct, error) {
	args := rangeArgs(dr)
	args["limit"] = limit

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, SUM(si.quantity), SUM(si.total_price)
		FROM sale_items AS si
		JOIN sales AS s ON s.id = si.sale_id
		JOIN products AS p ON p.id = si.product_id
		WHERE `+saleDateInRange+`
		GROUP BY p.id, p.name
		ORDER BY SUM(si.quantity) DESC, p.id
		LIMIT @limit
	`, args)
	if err != nil {
		return nil, fmt.Errorf("query top products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TopProduct, error) {
		var (
			p       model.TopProduct
			revenue pgtype.Numeric
		)
		if err := row.Scan(&p.ProductID, &p.Name, &p.TotalSold, &revenue); err != nil {
			return model.TopProduct{}, err
		}
		p.TotalRevenue = decimalFromNumeric(revenue)
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect top products: %w", err)
	}

	return products, nil
}

func (r reportRepository) DailySales(ctx context.Context, dr model.DateRange, limit int) ([]model.DailySales, error) {
	args := rangeArgs(dr)
	args["limit"] = limit

	rows, err := r.db.Query(ctx, `
		SELECT `+saleDay+` AS day, COUNT(*), SUM(s.final_amount)
		FROM sales AS s
		WHERE `+saleDateInRange+`
		GROUP BY day
		ORDER BY day DESC
		LIMIT @limit
	`, args)
	if err != nil {
		return nil, fmt.Errorf("query daily sales: %w", err)
	}

	days, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.DailySales, error) {
		var (
			d       model.DailySales
			revenue pgtype.Numeric
		)
		if err := row.Scan(&d.Date, &d.Count, &revenue); err != nil {
			return model.DailySales{}, err
		}
		d.Revenue = decimalFromNumeric(revenue)
		return d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect daily sales: %w", err)
	}

	return days, nil
}

func (r reportRepository) ProductStockStats(ctx context.Context) (model.ProductStockStats, error) {
	var (
		stats model.ProductStockStats
		value pgtype.Numeric
	)

	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE current_stock <= reorder_point),
			COUNT(*) FILTER (WHERE current_stock = 0),
			COALESCE(SUM(current_stock * cost_price), 0)
		FROM products
		WHERE is_active
	`).Scan(&stats.TotalProducts, &stats.LowStockCount, &stats.OutOfStockCount, &value)
	if err != nil {
		return model.ProductStockStats{}, fmt.Errorf("product stock stats: %w", err)
	}

	stats.InventoryValue = decimalFromNumeric(value)

	return stats, nil
}

func (r reportRepository) SalesTotals(ctx context.Context, from, to time.Time) (model.SalesTotals, error) {
	var (
		totals model.SalesTotals
		amount pgtype.Numeric
	)

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(final_amount), 0)
		FROM sales
		WHERE sale_date >= @from AND sale_date < @to
	`, pgx.NamedArgs{"from": from, "to": to}).Scan(&totals.Count, &amount)
	if err != nil {
		return model.SalesTotals{}, fmt.Errorf("sales totals: %w", err)
	}

	totals.Amount = decimalFromNumeric(amount)

	return totals, nil
}
