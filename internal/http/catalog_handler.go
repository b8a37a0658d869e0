package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-pos/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/ptr"
)

func toCategoryResponse(c model.Category) gen.Category {
	return gen.Category{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toSupplierResponse(s model.Supplier) gen.Supplier {
	return gen.Supplier{
		Id:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
	}
}

type catalogHandler struct {
	catalogSvc service.CatalogService
}

func newCatalogHandler(catalogSvc service.CatalogService) *catalogHandler {
	return &catalogHandler{
		catalogSvc: catalogSvc,
	}
}

func (h *catalogHandler) ListCategories(ctx context.Context, request gen.ListCategoriesRequestObject) (gen.ListCategoriesResponseObject, error) {
	categories, err := h.catalogSvc.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service list categories: %w", err)
	}

	items := make([]gen.Category, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryResponse(c))
	}

	return gen.ListCategories200JSONResponse(items), nil
}

func (h *catalogHandler) CreateCategory(ctx context.Context, request gen.CreateCategoryRequestObject) (gen.CreateCategoryResponseObject, error) {
	category, err := h.catalogSvc.CreateCategory(ctx, service.CreateCategoryParams{
		Name:        request.Body.Name,
		Description: ptr.Deref(request.Body.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("catalog service create category: %w", err)
	}

	return gen.CreateCategory201JSONResponse(toCategoryResponse(category)), nil
}

func (h *catalogHandler) ListSuppliers(ctx context.Context, request gen.ListSuppliersRequestObject) (gen.ListSuppliersResponseObject, error) {
	suppliers, err := h.catalogSvc.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service list suppliers: %w", err)
	}

	items := make([]gen.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, toSupplierResponse(s))
	}

	return gen.ListSuppliers200JSONResponse(items), nil
}

func (h *catalogHandler) CreateSupplier(ctx context.Context, request gen.CreateSupplierRequestObject) (gen.CreateSupplierResponseObject, error) {
	body := request.Body
	supplier, err := h.catalogSvc.CreateSupplier(ctx, service.CreateSupplierParams{
		Name:          body.Name,
		ContactPerson: ptr.Deref(body.ContactPerson),
		Email:         ptr.Deref(body.Email),
		Phone:         ptr.Deref(body.Phone),
		Address:       ptr.Deref(body.Address),
	})
	if err != nil {
		return nil, fmt.Errorf("catalog service create supplier: %w", err)
	}

	return gen.CreateSupplier201JSONResponse(toSupplierResponse(supplier)), nil
}
