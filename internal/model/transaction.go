package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindPayment    TransactionKind = "payment"
	KindRefund     TransactionKind = "refund"
	KindTopUp      TransactionKind = "top_up"
	KindAdjustment TransactionKind = "adjustment"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Transaction is one append-only ledger entry. Amount is always stored
// non-negative; the direction of the balance effect is implied by Kind
// (payments debit, everything else credits) except for adjustments,
// whose direction is recorded in the description and the applied delta.
//
// Reference is a caller-visible unique id (UUID unless the caller
// supplies its own) and doubles as an idempotency key: inserting a
// duplicate reference fails instead of double-counting a retried
// request.
type Transaction struct {
	ID              int64
	Reference       string
	AccountID       int64
	EstablishmentID *int64
	Amount          decimal.Decimal
	Kind            TransactionKind
	Status          TransactionStatus
	Description     string
	CreatedBy       *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
