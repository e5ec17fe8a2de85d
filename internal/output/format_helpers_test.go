package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "1234.57万円", FormatAmount(decimal.NewFromFloat(1234.567), "万円"))
	assert.Equal(t, "-0.50", FormatAmount(decimal.RequireFromString("-0.495"), ""))
	assert.Equal(t, "12.35%", FormatPercentage(decimal.NewFromFloat(12.3456)))
	assert.Equal(t, "42", intToString(42))
	assert.Equal(t, "false", boolToString(false))
}

func TestOptionalYear(t *testing.T) {
	year := 7
	assert.Empty(t, optionalYear(nil))
	assert.Equal(t, "7", optionalYear(&year))
}

func TestExtensionFor(t *testing.T) {
	for name, want := range map[string]string{
		"console": "txt", "console-lite": "txt", "csv": "csv",
		"detailed-csv": "csv", "html": "html", "json": "json",
	} {
		assert.Equal(t, want, extensionFor(name), name)
	}
}
