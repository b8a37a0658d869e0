package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
)

func TestProductStockStatus(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		want  model.StockStatus
	}{
		{"Should be out of stock at zero", 0, model.StockStatusOutOfStock},
		{"Should be critical at minimum", 10, model.StockStatusCritical},
		{"Should be low between minimum and reorder point", 15, model.StockStatusLowStock},
		{"Should be low at reorder point", 20, model.StockStatusLowStock},
		{"Should be in stock above reorder point", 21, model.StockStatusInStock},
		{"Should stay in stock when overstocked", 5000, model.StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Product{CurrentStock: tt.stock, MinimumStock: 10, ReorderPoint: 20, MaximumStock: 100}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}

func TestMovementTypeUnmarshal(t *testing.T) {
	var body struct {
		Type model.MovementType `json:"type"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"type":"RETURN"}`), &body))
	assert.Equal(t, model.MovementTypeReturn, body.Type)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"SHRINKAGE"}`), &body))
}

func TestEnumValidate(t *testing.T) {
	assert.NoError(t, model.AlertTypeOverstock.Validate())
	assert.Error(t, model.AlertType("low").Validate())
	assert.NoError(t, model.PaymentMethodCard.Validate())
	assert.Error(t, model.PaymentMethod("").Validate())
	assert.NoError(t, model.PurchaseOrderStatusCancelled.Validate())
	assert.Error(t, model.PurchaseOrderStatus("OPEN").Validate())
}
