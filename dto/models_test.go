package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountFormatZero(t *testing.T) {
	assert.Equal(t, ".00", ZeroAmount().Format())
}

func TestAmountFormatDerivedZero(t *testing.T) {
	// A zero computed from non-zero operands still formats as ".00".
	five := decimal.RequireFromString("5.00")
	derived := NewAmount(five.Sub(five))

	assert.Equal(t, ".00", derived.Format())
}

func TestAmountFormatPositive(t *testing.T) {
	assert.Equal(t, "100.50", NewAmount(decimal.RequireFromString("100.50")).Format())
	assert.Equal(t, "21149.00", NewAmount(decimal.RequireFromString("21149.00")).Format())
}

func TestAmountFormatNegative(t *testing.T) {
	assert.Equal(t, "-100.50", NewAmount(decimal.RequireFromString("-100.50")).Format())
}

func TestAmountFormatRounding(t *testing.T) {
	assert.Equal(t, "100.46", NewAmount(decimal.RequireFromString("100.456")).Format())
	assert.Equal(t, "100.10", NewAmount(decimal.RequireFromString("100.1")).Format())
}

func TestAmountFormatIdempotent(t *testing.T) {
	a := NewAmount(decimal.RequireFromString("1500.50"))

	assert.Equal(t, a.Format(), a.Format())
}

func TestAmountMarshalCSV(t *testing.T) {
	cell, err := NewAmount(decimal.RequireFromString("-500.00")).MarshalCSV()

	assert.NoError(t, err)
	assert.Equal(t, "-500.00", cell)

	cell, err = ZeroAmount().MarshalCSV()

	assert.NoError(t, err)
	assert.Equal(t, ".00", cell)
}
