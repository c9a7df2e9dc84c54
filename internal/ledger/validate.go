package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/model"
)

// Decision is the outcome of validating a payment request. When OK is
// false, Reason and Message describe the first check that failed.
type Decision struct {
	OK      bool
	Reason  model.Reason
	Message string
}

func reject(reason model.Reason, message string) Decision {
	return Decision{Reason: reason, Message: message}
}

// Validate runs the payment checks in a fixed order; the first failure
// wins, which determines the message the caller sees. It is a pure
// function over its inputs: todaySpent and monthSpent are snapshots the
// caller obtained from the spend aggregator, and balance sufficiency is
// re-checked authoritatively inside the atomic unit later.
func Validate(acc *model.Account, est *model.Establishment, amount, todaySpent, monthSpent decimal.Decimal) Decision {
	if !acc.IsActive {
		return reject(model.ReasonAccountInactive, "account is inactive")
	}

	if !est.IsActive {
		return reject(model.ReasonEstablishmentInactive, "establishment is inactive")
	}

	if amount.Sign() <= 0 {
		return reject(model.ReasonInvalidAmount, "payment amount must be positive")
	}

	if !model.IsUnlimited(est.MaxOrderAmount) && amount.GreaterThan(est.MaxOrderAmount) {
		return reject(model.ReasonEstablishmentLimit,
			fmt.Sprintf("amount exceeds establishment limit of %s", est.MaxOrderAmount))
	}

	if acc.Balance.LessThan(amount) {
		return reject(model.ReasonInsufficientFunds,
			fmt.Sprintf("insufficient funds: balance is %s", acc.Balance))
	}

	if !model.IsUnlimited(acc.DailyLimit) && todaySpent.Add(amount).GreaterThan(acc.DailyLimit) {
		return reject(model.ReasonDailyLimit,
			fmt.Sprintf("daily spending limit exceeded, remaining: %s", acc.DailyLimit.Sub(todaySpent)))
	}

	if !model.IsUnlimited(acc.MonthlyLimit) && monthSpent.Add(amount).GreaterThan(acc.MonthlyLimit) {
		return reject(model.ReasonMonthlyLimit,
			fmt.Sprintf("monthly spending limit exceeded, remaining: %s", acc.MonthlyLimit.Sub(monthSpent)))
	}

	return Decision{OK: true}
}
