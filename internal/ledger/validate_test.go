package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabek-dev/corpex/internal/model"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func testAccount(t *testing.T) *model.Account {
	t.Helper()
	return &model.Account{
		ID:           1,
		Name:         "alice",
		Role:         model.RoleEmployee,
		Balance:      d(t, "1000"),
		DailyLimit:   d(t, "1000"),
		MonthlyLimit: d(t, "20000"),
		IsActive:     true,
	}
}

func testEstablishment(t *testing.T) *model.Establishment {
	t.Helper()
	return &model.Establishment{
		ID:             1,
		Name:           "Canteen",
		Code:           "canteen",
		MaxOrderAmount: d(t, "500"),
		IsActive:       true,
	}
}

func TestValidateAcceptsValidPayment(t *testing.T) {
	decision := Validate(testAccount(t), testEstablishment(t), d(t, "100"), decimal.Zero, decimal.Zero)

	assert.True(t, decision.OK)
	assert.Empty(t, decision.Reason)
}

func TestValidateCheckOrder(t *testing.T) {
	// Every check is violated at once; the first one in the fixed
	// order must win.
	acc := testAccount(t)
	acc.IsActive = false
	acc.Balance = decimal.Zero
	est := testEstablishment(t)
	est.IsActive = false

	decision := Validate(acc, est, d(t, "-5"), d(t, "99999"), d(t, "99999"))
	require.False(t, decision.OK)
	assert.Equal(t, model.ReasonAccountInactive, decision.Reason)
	assert.Equal(t, "account is inactive", decision.Message)

	acc.IsActive = true
	decision = Validate(acc, est, d(t, "-5"), d(t, "99999"), d(t, "99999"))
	assert.Equal(t, model.ReasonEstablishmentInactive, decision.Reason)

	est.IsActive = true
	decision = Validate(acc, est, d(t, "-5"), d(t, "99999"), d(t, "99999"))
	assert.Equal(t, model.ReasonInvalidAmount, decision.Reason)

	decision = Validate(acc, est, d(t, "600"), d(t, "99999"), d(t, "99999"))
	assert.Equal(t, model.ReasonEstablishmentLimit, decision.Reason)

	decision = Validate(acc, est, d(t, "500"), d(t, "99999"), d(t, "99999"))
	assert.Equal(t, model.ReasonInsufficientFunds, decision.Reason)

	acc.Balance = d(t, "500")
	decision = Validate(acc, est, d(t, "500"), d(t, "99999"), d(t, "99999"))
	assert.Equal(t, model.ReasonDailyLimit, decision.Reason)

	decision = Validate(acc, est, d(t, "500"), decimal.Zero, d(t, "99999"))
	assert.Equal(t, model.ReasonMonthlyLimit, decision.Reason)
}

func TestValidateZeroAmount(t *testing.T) {
	decision := Validate(testAccount(t), testEstablishment(t), decimal.Zero, decimal.Zero, decimal.Zero)

	require.False(t, decision.OK)
	assert.Equal(t, model.ReasonInvalidAmount, decision.Reason)
	assert.Equal(t, "payment amount must be positive", decision.Message)
}

func TestValidateEstablishmentCap(t *testing.T) {
	t.Run("amount above the cap is rejected", func(t *testing.T) {
		decision := Validate(testAccount(t), testEstablishment(t), d(t, "500.01"), decimal.Zero, decimal.Zero)

		require.False(t, decision.OK)
		assert.Equal(t, model.ReasonEstablishmentLimit, decision.Reason)
		assert.Equal(t, "amount exceeds establishment limit of 500", decision.Message)
	})

	t.Run("amount equal to the cap passes", func(t *testing.T) {
		decision := Validate(testAccount(t), testEstablishment(t), d(t, "500"), decimal.Zero, decimal.Zero)
		assert.True(t, decision.OK)
	})

	t.Run("zero cap means no cap", func(t *testing.T) {
		acc := testAccount(t)
		acc.Balance = d(t, "100000")
		acc.DailyLimit = decimal.Zero
		acc.MonthlyLimit = decimal.Zero
		est := testEstablishment(t)
		est.MaxOrderAmount = decimal.Zero

		decision := Validate(acc, est, d(t, "99999"), decimal.Zero, decimal.Zero)
		assert.True(t, decision.OK)
	})
}

func TestValidateInsufficientFunds(t *testing.T) {
	acc := testAccount(t)
	acc.Balance = d(t, "50")

	decision := Validate(acc, testEstablishment(t), d(t, "100"), decimal.Zero, decimal.Zero)

	require.False(t, decision.OK)
	assert.Equal(t, model.ReasonInsufficientFunds, decision.Reason)
	assert.Equal(t, "insufficient funds: balance is 50", decision.Message)
}

func TestValidateDailyLimit(t *testing.T) {
	acc := testAccount(t)
	acc.DailyLimit = d(t, "1000")

	t.Run("spend that crosses the limit is rejected with remaining headroom", func(t *testing.T) {
		decision := Validate(acc, testEstablishment(t), d(t, "300"), d(t, "800"), decimal.Zero)

		require.False(t, decision.OK)
		assert.Equal(t, model.ReasonDailyLimit, decision.Reason)
		assert.Equal(t, "daily spending limit exceeded, remaining: 200", decision.Message)
	})

	t.Run("spend that exactly reaches the limit passes", func(t *testing.T) {
		decision := Validate(acc, testEstablishment(t), d(t, "200"), d(t, "800"), decimal.Zero)
		assert.True(t, decision.OK)
	})

	t.Run("zero daily limit is unlimited", func(t *testing.T) {
		unlimited := testAccount(t)
		unlimited.DailyLimit = decimal.Zero

		decision := Validate(unlimited, testEstablishment(t), d(t, "500"), d(t, "99999"), decimal.Zero)
		assert.True(t, decision.OK)
	})
}

func TestValidateMonthlyLimit(t *testing.T) {
	acc := testAccount(t)
	acc.MonthlyLimit = d(t, "20000")

	decision := Validate(acc, testEstablishment(t), d(t, "500"), decimal.Zero, d(t, "19800"))

	require.False(t, decision.OK)
	assert.Equal(t, model.ReasonMonthlyLimit, decision.Reason)
	assert.Equal(t, "monthly spending limit exceeded, remaining: 200", decision.Message)
}
