package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
)

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.Sale{})

	category, err := env.catalogSvc.CreateCategory(ctx, CreateCategoryParams{Name: "  Electronics ", Description: "Electronic devices"})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", category.Name)

	_, err = env.catalogSvc.CreateCategory(ctx, CreateCategoryParams{Name: "Electronics"})
	assert.ErrorIs(t, err, apperr.CategoryAlreadyExistsErr)

	_, err = env.catalogSvc.CreateCategory(ctx, CreateCategoryParams{Name: "   "})
	assert.ErrorIs(t, err, apperr.ValidationErr)

	_, err = env.catalogSvc.CreateSupplier(ctx, CreateSupplierParams{Name: "TechCorp", Email: "not-an-email"})
	assert.ErrorIs(t, err, apperr.ValidationErr)

	supplier, err := env.catalogSvc.CreateSupplier(ctx, CreateSupplierParams{Name: "TechCorp", Email: "sales@techcorp.com"})
	require.NoError(t, err)

	_, err = env.catalogSvc.CreateSupplier(ctx, CreateSupplierParams{Name: "TechCorp"})
	assert.ErrorIs(t, err, apperr.SupplierAlreadyExistsErr)

	categories, err := env.catalogSvc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	suppliers, err := env.catalogSvc.ListSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, supplier.ID, suppliers[0].ID)
}
