package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-typed money amount. At most two decimal
// places are accepted; the ledger stores exact fixed-point values.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount can't be empty")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", input)
	}

	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount can't have more than two decimal places: %s", input)
	}

	return amount, nil
}

// FormatAmount renders an amount with two decimal places and an
// optional currency code.
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}
