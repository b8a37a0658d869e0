package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/event"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name     string
		product  model.Product
		wantType model.AlertType
		wantMsg  string
		wantOK   bool
	}{
		{
			name:     "Should report out of stock before any other threshold",
			product:  model.Product{Name: "Cable", CurrentStock: 0, MinimumStock: 0, ReorderPoint: 0, MaximumStock: -1},
			wantType: model.AlertTypeOutOfStock,
			wantMsg:  "Product 'Cable' is OUT OF STOCK!",
			wantOK:   true,
		},
		{
			name:     "Should report critical at minimum",
			product:  model.Product{Name: "Mouse", CurrentStock: 10, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100},
			wantType: model.AlertTypeLowStock,
			wantMsg:  "Product 'Mouse' is critically low (Stock: 10, Min: 10)",
			wantOK:   true,
		},
		{
			name:     "Should report reorder at reorder point",
			product:  model.Product{Name: "Mouse", CurrentStock: 20, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100},
			wantType: model.AlertTypeLowStock,
			wantMsg:  "Product 'Mouse' needs reordering (Stock: 20, Reorder at: 20)",
			wantOK:   true,
		},
		{
			name:     "Should report overstock above maximum",
			product:  model.Product{Name: "Desk", CurrentStock: 101, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100},
			wantType: model.AlertTypeOverstock,
			wantMsg:  "Product 'Desk' is overstocked (Stock: 101, Max: 100)",
			wantOK:   true,
		},
		{
			name:    "Should not alert at maximum",
			product: model.Product{Name: "Desk", CurrentStock: 100, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100},
			wantOK:  false,
		},
		{
			name:     "Should report critical for negative stock",
			product:  model.Product{Name: "Lamp", CurrentStock: -2, MinimumStock: 5, ReorderPoint: 8, MaximumStock: 50},
			wantType: model.AlertTypeLowStock,
			wantMsg:  "Product 'Lamp' is critically low (Stock: -2, Min: 5)",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotMsg, gotOK := classifyStock(tt.product)
			assert.Equal(t, tt.wantOK, gotOK)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantMsg, gotMsg)
		})
	}
}

func TestAlertServiceEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be idempotent", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{AllowOversell: true})
		p := env.store.addProduct(model.Product{Name: "Mouse", CurrentStock: 5, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100})

		first, err := env.alertSvc.Evaluate(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := env.alertSvc.Evaluate(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, second)

		unread := env.store.unreadAlerts(p.ID)
		require.Len(t, unread, 1)
		assert.Equal(t, first.AlertType, unread[0].AlertType)
		assert.Equal(t, first.Message, unread[0].Message)
	})

	t.Run("Should do nothing for a missing product", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{})

		alert, err := env.alertSvc.Evaluate(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, alert)
		assert.Empty(t, env.store.alerts)
	})

	t.Run("Should clear unread alerts and keep read ones when stock is healthy", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{})
		p := env.store.addProduct(model.Product{Name: "Mouse", CurrentStock: 0, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100})

		stale, err := env.alertSvc.Evaluate(ctx, p.ID)
		require.NoError(t, err)
		require.NoError(t, env.alertSvc.MarkAlertRead(ctx, stale.ID))

		_, err = env.alertSvc.Evaluate(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, env.store.unreadAlerts(p.ID), 1)

		p.CurrentStock = 50
		env.store.products[p.ID] = p

		alert, err := env.alertSvc.Evaluate(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, alert)
		assert.Empty(t, env.store.unreadAlerts(p.ID))
		assert.True(t, env.store.alerts[stale.ID].IsRead)
	})

	t.Run("Should publish a raised alert", func(t *testing.T) {
		env := newTestEnv(t, config.Sale{})
		p := env.store.addProduct(model.Product{Name: "Mouse", SKU: "MS-1", CurrentStock: 0, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100})

		_, err := env.alertSvc.Evaluate(ctx, p.ID)
		require.NoError(t, err)

		require.Len(t, env.store.outbox, 1)
		msg := env.store.outbox[0]
		assert.Equal(t, event.TopicAlertRaised, msg.Topic)
		require.NotNil(t, msg.PartitionKey)
		assert.JSONEq(t, `"OUT_OF_STOCK"`, jsonField(t, msg.Payload, "alert_type"))
	})
}

func TestAlertServiceMarkAlertRead(t *testing.T) {
	env := newTestEnv(t, config.Sale{})

	err := env.alertSvc.MarkAlertRead(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.AlertNotFoundErr)
}

func TestAlertServiceCountUnreadAlerts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.Sale{})
	a := env.store.addProduct(model.Product{Name: "A", CurrentStock: 0, MinimumStock: 1, ReorderPoint: 2, MaximumStock: 10})
	b := env.store.addProduct(model.Product{Name: "B", CurrentStock: 1, MinimumStock: 1, ReorderPoint: 2, MaximumStock: 10})

	for _, id := range []int64{a.ID, b.ID} {
		_, err := env.alertSvc.Evaluate(ctx, id)
		require.NoError(t, err)
	}

	count, err := env.alertSvc.CountUnreadAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	alerts, err := env.alertSvc.ListUnreadAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}
