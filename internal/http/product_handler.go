package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/ptr"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

// Thresholds applied when a create request omits them.
const (
	DefaultMinimumStock = 10
	DefaultMaximumStock = 1000
	DefaultReorderPoint = 20
)

// setStockInput is checked here as well as by the request validator, which
// can be switched off.
type setStockInput struct {
	NewStock     int                `validate:"gte=0"`
	MovementType model.MovementType `validate:"enum"`
}

func toProductResponse(p model.Product) gen.Product {
	return gen.Product{
		Id:           p.ID,
		Name:         p.Name,
		Sku:          p.SKU,
		Description:  p.Description,
		CategoryId:   p.CategoryID,
		CategoryName: p.CategoryName,
		SupplierId:   p.SupplierID,
		SupplierName: p.SupplierName,
		UnitPrice:    p.UnitPrice,
		CostPrice:    p.CostPrice,
		CurrentStock: p.CurrentStock,
		MinimumStock: p.MinimumStock,
		MaximumStock: p.MaximumStock,
		ReorderPoint: p.ReorderPoint,
		Location:     p.Location,
		Barcode:      p.Barcode,
		IsActive:     p.IsActive,
		StockStatus:  gen.StockStatus(p.StockStatus()),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(products []model.Product) []gen.Product {
	items := make([]gen.Product, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return items
}

func toStockMovementResponse(m model.StockMovement) gen.StockMovement {
	return gen.StockMovement{
		Id:              m.ID,
		ProductId:       m.ProductID,
		MovementType:    gen.MovementType(m.MovementType),
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

type productHandler struct {
	validator  validator.Validator
	productSvc service.ProductService
	stockSvc   service.StockService
	alertSvc   service.AlertService
}

func newProductHandler(
	validator validator.Validator,
	productSvc service.ProductService,
	stockSvc service.StockService,
	alertSvc service.AlertService,
) *productHandler {
	return &productHandler{
		validator:  validator,
		productSvc: productSvc,
		stockSvc:   stockSvc,
		alertSvc:   alertSvc,
	}
}

func (h *productHandler) ListProducts(ctx context.Context, request gen.ListProductsRequestObject) (gen.ListProductsResponseObject, error) {
	products, err := h.productSvc.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service list products: %w", err)
	}

	return gen.ListProducts200JSONResponse(toProductResponses(products)), nil
}

func (h *productHandler) CreateProduct(ctx context.Context, request gen.CreateProductRequestObject) (gen.CreateProductResponseObject, error) {
	body := request.Body
	params := service.CreateProductParams{
		Name:         body.Name,
		SKU:          body.Sku,
		Description:  ptr.Deref(body.Description),
		CategoryID:   body.CategoryId,
		SupplierID:   body.SupplierId,
		UnitPrice:    ptr.Deref(body.UnitPrice),
		CostPrice:    ptr.Deref(body.CostPrice),
		InitialStock: ptr.Deref(body.CurrentStock),
		MinimumStock: ptr.DerefOr(body.MinimumStock, DefaultMinimumStock),
		MaximumStock: ptr.DerefOr(body.MaximumStock, DefaultMaximumStock),
		ReorderPoint: ptr.DerefOr(body.ReorderPoint, DefaultReorderPoint),
		Location:     ptr.Deref(body.Location),
		Barcode:      ptr.Deref(body.Barcode),
	}
	product, err := h.productSvc.CreateProduct(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service create product: %w", err)
	}

	return gen.CreateProduct201JSONResponse(toProductResponse(product)), nil
}

func (h *productHandler) GetProduct(ctx context.Context, request gen.GetProductRequestObject) (gen.GetProductResponseObject, error) {
	product, err := h.productSvc.GetProduct(ctx, request.ProductId)
	if err != nil {
		return nil, fmt.Errorf("product service get product: %w", err)
	}

	return gen.GetProduct200JSONResponse(toProductResponse(product)), nil
}

func (h *productHandler) SetProductStock(ctx context.Context, request gen.SetProductStockRequestObject) (gen.SetProductStockResponseObject, error) {
	body := request.Body
	input := setStockInput{
		NewStock:     body.NewStock,
		MovementType: model.MovementType(ptr.DerefOr(body.MovementType, gen.MovementTypeADJUSTMENT)),
	}
	if err := h.validator.Validate(input); err != nil {
		return nil, apperr.ValidationErr.WrapParent(err)
	}

	movement, err := h.stockSvc.SetStock(ctx, service.SetStockParams{
		ProductID:       request.ProductId,
		NewStock:        input.NewStock,
		MovementType:    input.MovementType,
		Notes:           ptr.Deref(body.Notes),
		ReferenceNumber: body.ReferenceNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("stock service set stock: %w", err)
	}

	return gen.SetProductStock200JSONResponse(toStockMovementResponse(movement)), nil
}

func (h *productHandler) ListStockMovements(ctx context.Context, request gen.ListStockMovementsRequestObject) (gen.ListStockMovementsResponseObject, error) {
	limit, err := limitParam(request.Params.Limit, service.DefaultMovementsLimit)
	if err != nil {
		return nil, err
	}

	movements, err := h.productSvc.ListStockMovements(ctx, request.ProductId, limit)
	if err != nil {
		return nil, fmt.Errorf("product service list stock movements: %w", err)
	}

	items := make([]gen.StockMovement, 0, len(movements))
	for _, m := range movements {
		items = append(items, toStockMovementResponse(m))
	}

	return gen.ListStockMovements200JSONResponse(items), nil
}

func (h *productHandler) ReconcileStock(ctx context.Context, request gen.ReconcileStockRequestObject) (gen.ReconcileStockResponseObject, error) {
	rec, err := h.stockSvc.ReconcileStock(ctx, request.ProductId)
	if err != nil {
		return nil, fmt.Errorf("stock service reconcile stock: %w", err)
	}

	return gen.ReconcileStock200JSONResponse{
		ProductId:     rec.ProductID,
		CurrentStock:  rec.CurrentStock,
		MovementTotal: rec.MovementTotal,
		MovementCount: rec.MovementCount,
		Balanced:      rec.Balanced(),
	}, nil
}

func (h *productHandler) EvaluateAlerts(ctx context.Context, request gen.EvaluateAlertsRequestObject) (gen.EvaluateAlertsResponseObject, error) {
	alert, err := h.alertSvc.Evaluate(ctx, request.ProductId)
	if err != nil {
		return nil, fmt.Errorf("alert service evaluate: %w", err)
	}
	if alert == nil {
		return gen.EvaluateAlerts204Response{}, nil
	}

	return gen.EvaluateAlerts200JSONResponse(toAlertResponse(*alert)), nil
}

// limitParam falls back to def when the limit is omitted.
func limitParam(limit *gen.Limit, def int) (int, error) {
	if limit == nil {
		return def, nil
	}
	if *limit <= 0 {
		return 0, apperr.ValidationErr.WithMsg("limit must be greater than 0")
	}
	return *limit, nil
}
