package apperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/zerror"
)

func TestFromUniqueConstraint(t *testing.T) {
	parent := errors.New("duplicate key")

	err := apperr.FromUniqueConstraint("products_sku_key", parent)
	assert.ErrorIs(t, err, apperr.SKUAlreadyExistsErr)
	assert.ErrorIs(t, err, parent)
	assert.Equal(t, zerror.StatusConflict, err.Status())

	err = apperr.FromUniqueConstraint("unknown_key", parent)
	assert.ErrorIs(t, err, apperr.ConstraintViolationErr)
	assert.Contains(t, err.Msg(), "unknown_key")
}
