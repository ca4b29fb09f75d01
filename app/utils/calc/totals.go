package calc

import "github.com/shopspring/decimal"

var (
	taxPercent            = decimal.NewFromInt(8)
	freeShippingThreshold = decimal.NewFromInt(100)
	standardShippingCost  = decimal.NewFromInt(10)
	minorUnitFactor       = decimal.NewFromInt(100)
)

func GetTaxPercent() decimal.Decimal {
	return taxPercent
}

func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxPercent).Div(decimal.NewFromInt(100))
}

// CalculateShipping is free above the threshold, a flat cost at or below it.
func CalculateShipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(freeShippingThreshold) {
		return decimal.Zero
	}
	return standardShippingCost
}

func CalculateGrandTotal(subtotal, shippingCost, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shippingCost).Add(tax)
}

// ToMinorUnits converts a currency amount to the smallest unit (paise) the
// payment processors bill in.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

// FromMinorUnits converts a processor amount back to currency units.
func FromMinorUnits(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(minorUnitFactor)
}
