package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-pos/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/ptr"
)

func toSaleResponse(s model.Sale) gen.Sale {
	items := make([]gen.SaleItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, gen.SaleItem{
			Id:          item.ID,
			SaleId:      item.SaleID,
			ProductId:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return gen.Sale{
		Id:             s.ID,
		SaleNumber:     s.SaleNumber,
		CustomerName:   s.CustomerName,
		CustomerEmail:  s.CustomerEmail,
		CustomerPhone:  s.CustomerPhone,
		TotalAmount:    s.TotalAmount,
		DiscountAmount: s.DiscountAmount,
		TaxAmount:      s.TaxAmount,
		FinalAmount:    s.FinalAmount,
		PaymentMethod:  gen.PaymentMethod(s.PaymentMethod),
		SaleDate:       s.SaleDate,
		Notes:          s.Notes,
		Items:          items,
	}
}

type saleHandler struct {
	saleSvc service.SaleService
}

func newSaleHandler(saleSvc service.SaleService) *saleHandler {
	return &saleHandler{
		saleSvc: saleSvc,
	}
}

func (h *saleHandler) CreateSale(ctx context.Context, request gen.CreateSaleRequestObject) (gen.CreateSaleResponseObject, error) {
	body := request.Body

	lines := make([]service.SaleLineParams, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, service.SaleLineParams{
			ProductID:  item.ProductId,
			Quantity:   item.Quantity,
			UnitPrice:  ptr.Deref(item.UnitPrice),
			TotalPrice: ptr.Deref(item.TotalPrice),
		})
	}

	sale, err := h.saleSvc.CreateSale(ctx, service.CreateSaleParams{
		SaleNumber:     ptr.Deref(body.SaleNumber),
		CustomerName:   ptr.Deref(body.CustomerName),
		CustomerEmail:  ptr.Deref(body.CustomerEmail),
		CustomerPhone:  ptr.Deref(body.CustomerPhone),
		TotalAmount:    ptr.Deref(body.TotalAmount),
		DiscountAmount: ptr.Deref(body.DiscountAmount),
		TaxAmount:      ptr.Deref(body.TaxAmount),
		FinalAmount:    ptr.Deref(body.FinalAmount),
		PaymentMethod:  model.PaymentMethod(ptr.Deref(body.PaymentMethod)),
		Notes:          ptr.Deref(body.Notes),
		Lines:          lines,
	})
	if err != nil {
		return nil, fmt.Errorf("sale service create sale: %w", err)
	}

	return gen.CreateSale201JSONResponse(toSaleResponse(sale)), nil
}

func (h *saleHandler) GetSale(ctx context.Context, request gen.GetSaleRequestObject) (gen.GetSaleResponseObject, error) {
	sale, err := h.saleSvc.GetSale(ctx, request.SaleId)
	if err != nil {
		return nil, fmt.Errorf("sale service get sale: %w", err)
	}

	return gen.GetSale200JSONResponse(toSaleResponse(sale)), nil
}

func (h *saleHandler) ListSales(ctx context.Context, request gen.ListSalesRequestObject) (gen.ListSalesResponseObject, error) {
	limit, err := limitParam(request.Params.Limit, service.DefaultSalesLimit)
	if err != nil {
		return nil, err
	}

	sales, err := h.saleSvc.ListSales(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("sale service list sales: %w", err)
	}

	items := make([]gen.Sale, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s))
	}

	return gen.ListSales200JSONResponse(items), nil
}
