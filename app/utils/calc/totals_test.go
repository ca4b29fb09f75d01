package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTax(t *testing.T) {
	tax := CalculateTax(decimal.NewFromInt(100))
	assert.True(t, tax.Equal(decimal.NewFromInt(8)), "tax = %s", tax)

	tax = CalculateTax(decimal.NewFromFloat(49.50))
	assert.True(t, tax.Equal(decimal.NewFromFloat(3.96)), "tax = %s", tax)
}

func TestCalculateShippingThreshold(t *testing.T) {
	// 100 is at the threshold, still pays shipping
	assert.True(t, CalculateShipping(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(10)))
	assert.True(t, CalculateShipping(decimal.NewFromFloat(100.01)).IsZero())
	assert.True(t, CalculateShipping(decimal.NewFromInt(15)).Equal(decimal.NewFromInt(10)))
}

func TestCalculateGrandTotal(t *testing.T) {
	subtotal := decimal.NewFromInt(100)
	shipping := CalculateShipping(subtotal)
	tax := CalculateTax(subtotal)

	total := CalculateGrandTotal(subtotal, shipping, tax)
	assert.True(t, total.Equal(decimal.NewFromInt(118)), "total = %s", total)
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	assert.EqualValues(t, 10800, ToMinorUnits(decimal.NewFromInt(108)))
	assert.EqualValues(t, 4950, ToMinorUnits(decimal.NewFromFloat(49.50)))

	amount := FromMinorUnits(10800)
	assert.True(t, amount.Equal(decimal.NewFromInt(108)))
}
