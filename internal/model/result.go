package model

import "github.com/shopspring/decimal"

// Reason is the closed set of outcomes a ledger operation can report
// instead of succeeding. Business rejections are values, not errors:
// callers render them, they are never retried automatically.
type Reason string

const (
	ReasonAccountInactive       Reason = "account_inactive"
	ReasonEstablishmentInactive Reason = "establishment_inactive"
	ReasonInvalidAmount         Reason = "invalid_amount"
	ReasonEstablishmentLimit    Reason = "establishment_limit_exceeded"
	ReasonInsufficientFunds     Reason = "insufficient_funds"
	ReasonDailyLimit            Reason = "daily_limit_exceeded"
	ReasonMonthlyLimit          Reason = "monthly_limit_exceeded"
	ReasonNotFound              Reason = "not_found"
	ReasonNotAdmin              Reason = "not_admin"
	ReasonNotRefundable         Reason = "not_refundable"
	ReasonDuplicate             Reason = "duplicate_reference"
	ReasonBusy                  Reason = "busy"
	ReasonInternal              Reason = "internal_error"
)

// PaymentResult is the outcome of any of the ledger operations.
// On failure, Reason and Message carry enough context to render a
// user-facing message directly (remaining limit, current balance, cap).
type PaymentResult struct {
	Success       bool
	TransactionID int64
	Reference     string
	BalanceAfter  decimal.Decimal
	Reason        Reason
	Message       string
}

// Rejected builds a failure result.
func Rejected(reason Reason, message string) PaymentResult {
	return PaymentResult{Reason: reason, Message: message}
}
