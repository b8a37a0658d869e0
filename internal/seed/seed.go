// Package seed loads the demonstration catalogue into an empty database.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
)

type sampleProduct struct {
	name, sku       string
	category        int
	supplier        int
	description     string
	unitPrice       string
	costPrice       string
	stock, min, max int
	reorder         int
	location        string
	barcode         string
}

var categories = []service.CreateCategoryParams{
	{Name: "Electronics", Description: "Electronic devices and components"},
	{Name: "Clothing", Description: "Apparel and accessories"},
	{Name: "Books", Description: "Books and educational materials"},
	{Name: "Home & Garden", Description: "Home improvement and gardening supplies"},
	{Name: "Sports", Description: "Sports equipment and accessories"},
}

var suppliers = []service.CreateSupplierParams{
	{Name: "TechCorp Ltd", ContactPerson: "John Smith", Email: "john@techcorp.com", Phone: "+1-555-0101", Address: "123 Tech Street, Silicon Valley"},
	{Name: "Fashion Hub", ContactPerson: "Sarah Johnson", Email: "sarah@fashionhub.com", Phone: "+1-555-0102", Address: "456 Fashion Ave, New York"},
	{Name: "BookWorld", ContactPerson: "Mike Wilson", Email: "mike@bookworld.com", Phone: "+1-555-0103", Address: "789 Library Lane, Boston"},
	{Name: "GreenThumb Supplies", ContactPerson: "Lisa Brown", Email: "lisa@greenthumb.com", Phone: "+1-555-0104", Address: "321 Garden Road, Portland"},
	{Name: "SportZone", ContactPerson: "David Lee", Email: "david@sportzone.com", Phone: "+1-555-0105", Address: "654 Athletic Blvd, Denver"},
}

// category and supplier are indexes into the slices above.
var products = []sampleProduct{
	{"Wireless Headphones", "WH-001", 0, 0, "High-quality wireless headphones", "99.99", "45.00", 50, 10, 200, 15, "A1-B2", "123456789012"},
	{"Bluetooth Speaker", "BS-002", 0, 0, "Portable Bluetooth speaker", "79.99", "35.00", 30, 5, 150, 10, "A1-B3", "123456789013"},
	{"Men's T-Shirt", "MT-003", 1, 1, "Cotton t-shirt for men", "24.99", "12.00", 100, 20, 500, 30, "B2-C1", "123456789014"},
	{"Women's Jeans", "WJ-004", 1, 1, "Denim jeans for women", "59.99", "28.00", 75, 15, 300, 25, "B2-C2", "123456789015"},
	{"Python Programming Book", "PB-005", 2, 2, "Learn Python programming", "39.99", "20.00", 25, 5, 100, 10, "C3-D1", "123456789016"},
	{"Garden Hose", "GH-006", 3, 3, "50ft garden hose", "34.99", "18.00", 40, 8, 120, 12, "D4-E1", "123456789017"},
	{"Tennis Racket", "TR-007", 4, 4, "Professional tennis racket", "129.99", "65.00", 20, 5, 80, 8, "E5-F1", "123456789018"},
	{"Yoga Mat", "YM-008", 4, 4, "Non-slip yoga mat", "29.99", "15.00", 60, 10, 200, 15, "E5-F2", "123456789019"},
}

// Seeder writes the sample catalogue through the application services so
// every product gets its initial stock movement.
type Seeder struct {
	logger     *slog.Logger
	catalogSvc service.CatalogService
	productSvc service.ProductService
}

func New(logger *slog.Logger, catalogSvc service.CatalogService, productSvc service.ProductService) *Seeder {
	return &Seeder{
		logger:     logger.With(slog.String("service", "seed")),
		catalogSvc: catalogSvc,
		productSvc: productSvc,
	}
}

// Run inserts the sample data unless categories already exist. It reports
// whether anything was written.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	existing, err := s.catalogSvc.ListCategories(ctx)
	if err != nil {
		return false, fmt.Errorf("list categories: %w", err)
	}
	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "sample data skipped, catalogue is not empty")
		return false, nil
	}

	categoryIDs := make([]int64, len(categories))
	for i, params := range categories {
		c, err := s.catalogSvc.CreateCategory(ctx, params)
		if err != nil {
			return false, fmt.Errorf("create category %q: %w", params.Name, err)
		}
		categoryIDs[i] = c.ID
	}

	supplierIDs := make([]int64, len(suppliers))
	for i, params := range suppliers {
		sp, err := s.catalogSvc.CreateSupplier(ctx, params)
		if err != nil {
			return false, fmt.Errorf("create supplier %q: %w", params.Name, err)
		}
		supplierIDs[i] = sp.ID
	}

	for _, p := range products {
		params := service.CreateProductParams{
			Name:         p.name,
			SKU:          p.sku,
			Description:  p.description,
			CategoryID:   &categoryIDs[p.category],
			SupplierID:   &supplierIDs[p.supplier],
			UnitPrice:    decimal.RequireFromString(p.unitPrice),
			CostPrice:    decimal.RequireFromString(p.costPrice),
			InitialStock: p.stock,
			MinimumStock: p.min,
			MaximumStock: p.max,
			ReorderPoint: p.reorder,
			Location:     p.location,
			Barcode:      p.barcode,
		}
		if _, err := s.productSvc.CreateProduct(ctx, params); err != nil {
			return false, fmt.Errorf("create product %q: %w", p.sku, err)
		}
	}

	s.logger.InfoContext(ctx, "sample data inserted",
		slog.Int("categories", len(categories)),
		slog.Int("suppliers", len(suppliers)),
		slog.Int("products", len(products)),
	)

	return true, nil
}
