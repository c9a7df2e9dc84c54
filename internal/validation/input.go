package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/otabek-dev/corpex/internal/constants"
	"github.com/otabek-dev/corpex/internal/utils"
)

// ValidateAccountName checks a name typed into a flag or prompt.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidatePositiveAmount is a prompt validator for amounts that must be
// strictly positive.
func ValidatePositiveAmount(input string) error {
	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// ValidateNonNegativeAmount accepts zero, which limits and caps read as
// "unlimited".
func ValidateNonNegativeAmount(input string) error {
	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount can't be negative")
	}
	return nil
}

// ValidateSignedAmount accepts any non-zero amount; adjustments may be
// negative.
func ValidateSignedAmount(input string) error {
	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return fmt.Errorf("amount must be non-zero")
	}
	return nil
}

// ValidateID checks a numeric record id typed by the user.
func ValidateID(input string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid id: %s", input)
	}
	return nil
}
