package money

import (
	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// Rate converts a percentage (5 for 5%) to a fraction (0.05)
func Rate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// Percent converts a fraction (0.05) to a percentage (5)
func Percent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(hundred)
}

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsPerYear)
}

// Monthly converts an annual amount to monthly
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(monthsPerYear)
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Format renders an amount with two decimals followed by the display unit (e.g. "585.00万円").
func Format(amount decimal.Decimal, unit string) string {
	return amount.StringFixed(2) + unit
}
