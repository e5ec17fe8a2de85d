package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/pkg/money"
)

// FormatAmount formats a decimal with 2 decimals followed by the display unit.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount decimal.Decimal, unit string) string { return money.Format(amount, unit) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// optionalYear renders a year index pointer, empty when unset
func optionalYear(year *int) string {
	if year == nil {
		return ""
	}
	return intToString(*year)
}
