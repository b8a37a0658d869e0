package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericFromDecimal(t *testing.T) {
	d := decimal.RequireFromString("1234.56")

	n := numericFromDecimal(d)
	require.True(t, n.Valid)
	assert.True(t, d.Equal(decimalFromNumeric(n)))
}

func TestDecimalFromNumericNull(t *testing.T) {
	assert.True(t, decimalFromNumeric(pgtype.Numeric{}).IsZero())
	assert.True(t, decimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true}).IsZero())
	assert.Nil(t, nullableDecimal(pgtype.Numeric{}))
}

func TestNullableNumeric(t *testing.T) {
	assert.False(t, nullableNumeric(nil).Valid)

	d := decimal.RequireFromString("-0.05")
	got := nullableDecimal(nullableNumeric(&d))
	require.NotNil(t, got)
	assert.True(t, d.Equal(*got))
}
