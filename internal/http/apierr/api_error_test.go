package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/apierr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

func TestNew(t *testing.T) {
	t.Run("Should map a wrapped domain error to its status", func(t *testing.T) {
		err := fmt.Errorf("sale service create sale: %w", apperr.InsufficientStockErr.WithMsg("only 2 left"))

		res := apierr.New(err)

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, apperr.InsufficientStockCode, res.Code)
		assert.Equal(t, "only 2 left", res.Message)
		assert.Nil(t, res.Details)
	})

	t.Run("Should include field details for validation failures", func(t *testing.T) {
		v, err := validator.NewDefaultValidator()
		require.NoError(t, err)

		type params struct {
			Quantity int `validate:"gt=0"`
		}
		vErr := v.Validate(params{})
		require.Error(t, vErr)

		res := apierr.New(apperr.ValidationErr.WrapParent(vErr))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, apperr.ValidationErrorCode, res.Code)
		require.NotNil(t, res.Details)
		require.Len(t, *res.Details, 1)
		assert.Equal(t, "Quantity", (*res.Details)[0].Field)
		assert.Equal(t, "must be greater than 0", (*res.Details)[0].Message)
	})

	t.Run("Should map parameter errors to 400", func(t *testing.T) {
		res := apierr.New(&gen.InvalidParamFormatError{ParamName: "productId", Err: errors.New("not a number")})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, res.Message, "productId")
	})

	t.Run("Should hide unknown errors", func(t *testing.T) {
		res := apierr.New(errors.New("connection refused"))

		assert.Equal(t, apierr.InternalServerErr, res)
	})
}
