package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("accepts whole and fractional amounts", func(t *testing.T) {
		for input, want := range map[string]string{
			"100":     "100",
			"0.5":     "0.5",
			"12.34":   "12.34",
			" 7.00 ":  "7",
			"-25.50":  "-25.5",
			"1000000": "1000000",
		} {
			amount, err := ParseAmount(input)
			require.NoError(t, err, "input %q", input)
			assert.True(t, amount.Equal(decimal.RequireFromString(want)), "input %q parsed to %s", input, amount)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseAmount("   ")
		assert.Error(t, err)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseAmount("ten")
		assert.Error(t, err)
	})

	t.Run("rejects more than two decimal places", func(t *testing.T) {
		_, err := ParseAmount("10.123")
		assert.Error(t, err)
	})
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")

	assert.Equal(t, "1234.50 USD", FormatAmount(amount, "USD"))
	assert.Equal(t, "1234.50", FormatAmount(amount, ""))
	assert.Equal(t, "0.00 EUR", FormatAmount(decimal.Zero, "EUR"))
}
