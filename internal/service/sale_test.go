package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/event"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
)

func TestSaleServiceCreateSale(t *testing.T) {
	ctx := context.Background()
	price := decimal.RequireFromString("10")
	total := decimal.RequireFromString("30")

	t.Run("Should record a single line sale", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		env.saleSvc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 50, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100})

		sale, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{
			CustomerName: "Jane",
			TotalAmount:  total,
			FinalAmount:  total,
			Lines:        []SaleLineParams{{ProductID: a.ID, Quantity: 3, UnitPrice: price, TotalPrice: total}},
		})
		require.NoError(t, err)

		assert.Equal(t, 47, env.store.products[a.ID].CurrentStock)
		assert.Regexp(t, regexp.MustCompile(`^SALE-20240309-140507-[0-9A-F]{6}$`), sale.SaleNumber)
		assert.Equal(t, model.PaymentMethodCash, sale.PaymentMethod)

		stored, err := env.saleSvc.GetSale(ctx, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.SaleNumber, stored.SaleNumber)
		assert.True(t, total.Equal(stored.FinalAmount))
		require.Len(t, stored.Items, 1)
		assert.Equal(t, 3, stored.Items[0].Quantity)

		movements := env.store.movementsOf(a.ID)
		last := movements[len(movements)-1]
		assert.Equal(t, model.MovementTypeOut, last.MovementType)
		assert.Equal(t, -3, last.Quantity)
		require.NotNil(t, last.ReferenceNumber)
		assert.Equal(t, sale.SaleNumber, *last.ReferenceNumber)
		assert.Equal(t, "Sale to Jane", last.Notes)

		assert.Equal(t, []string{event.TopicSaleCreated}, env.store.outboxTopics())
		requireBalanced(t, env)
	})

	t.Run("Should roll back every line when a product is missing", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 50, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100})
		c := env.store.addProduct(model.Product{Name: "C", CurrentStock: 15, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100})
		movementsBefore := len(env.store.movements)

		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{Lines: []SaleLineParams{
			{ProductID: a.ID, Quantity: 3},
			{ProductID: 999, Quantity: 1},
			{ProductID: c.ID, Quantity: 1},
		}})
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)

		assert.Empty(t, env.store.sales)
		assert.Len(t, env.store.movements, movementsBefore)
		assert.Equal(t, 50, env.store.products[a.ID].CurrentStock)
		assert.Equal(t, 15, env.store.products[c.ID].CurrentStock)
		assert.Empty(t, env.store.outbox)
	})

	t.Run("Should drive stock negative when oversell is allowed", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 2, MinimumStock: 1, ReorderPoint: 3, MaximumStock: 10})

		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{Lines: []SaleLineParams{{ProductID: a.ID, Quantity: 5}}})
		require.NoError(t, err)

		assert.Equal(t, -3, env.store.products[a.ID].CurrentStock)
		requireBalanced(t, env)
	})

	t.Run("Should reject oversell when it is disabled", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: false})
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 2, MinimumStock: 1, ReorderPoint: 3, MaximumStock: 10})

		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{Lines: []SaleLineParams{{ProductID: a.ID, Quantity: 5}}})
		require.ErrorIs(t, err, apperr.InsufficientStockErr)

		assert.Equal(t, 2, env.store.products[a.ID].CurrentStock)
		assert.Empty(t, env.store.sales)
	})

	t.Run("Should re-evaluate alerts for each line", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 3, MinimumStock: 1, ReorderPoint: 2, MaximumStock: 10})

		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{Lines: []SaleLineParams{{ProductID: a.ID, Quantity: 3}}})
		require.NoError(t, err)

		unread := env.store.unreadAlerts(a.ID)
		require.Len(t, unread, 1)
		assert.Equal(t, model.AlertTypeOutOfStock, unread[0].AlertType)
		assert.Equal(t, []string{event.TopicAlertRaised, event.TopicSaleCreated}, env.store.outboxTopics())
	})

	t.Run("Should reject a sale without lines", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})

		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{})
		assert.ErrorIs(t, err, apperr.ValidationErr)
	})

	t.Run("Should reject a negative amount", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 3})

		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{
			DiscountAmount: decimal.RequireFromString("-1"),
			Lines:          []SaleLineParams{{ProductID: a.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, apperr.ValidationErr)
	})

	t.Run("Should accept free text customer details", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 50})

		sale, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{
			CustomerName:  "walk-in",
			CustomerEmail: "call front desk",
			CustomerPhone: "ext. 12",
			TotalAmount:   total,
			FinalAmount:   total,
			Lines:         []SaleLineParams{{ProductID: a.ID, Quantity: 3, UnitPrice: price, TotalPrice: total}},
		})
		require.NoError(t, err)

		assert.Equal(t, "call front desk", sale.CustomerEmail)
		assert.Equal(t, 47, env.store.products[a.ID].CurrentStock)

		stored, err := env.saleSvc.GetSale(ctx, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, "call front desk", stored.CustomerEmail)
		requireBalanced(t, env)
	})

	t.Run("Should reject a duplicate sale number", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 10})
		params := CreateSaleParams{SaleNumber: "POS-1", Lines: []SaleLineParams{{ProductID: a.ID, Quantity: 1}}}

		_, err := env.saleSvc.CreateSale(ctx, params)
		require.NoError(t, err)

		_, err = env.saleSvc.CreateSale(ctx, params)
		assert.ErrorIs(t, err, apperr.SaleNumberAlreadyExistsErr)
		assert.Equal(t, 9, env.store.products[a.ID].CurrentStock)
	})
}

func TestSaleServiceGetSale(t *testing.T) {
	env := newTestEnv(t, config.Sale{})

	_, err := env.saleSvc.GetSale(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.SaleNotFoundErr)
}

func TestSaleServiceListSales(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.Sale{AllowOversell: true})
	a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 10})

	for range 3 {
		_, err := env.saleSvc.CreateSale(ctx, CreateSaleParams{Lines: []SaleLineParams{{ProductID: a.ID, Quantity: 1}}})
		require.NoError(t, err)
	}

	sales, err := env.saleSvc.ListSales(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Greater(t, sales[0].ID, sales[1].ID)
}
