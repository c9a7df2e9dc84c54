package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account roles. Admin-only ledger operations (refund, top-up, adjustment)
// check the caller's role before touching any balance.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Account holds a payer's spendable balance and spending limits.
//
// A limit value of exactly zero means the limit is not enforced (see
// IsUnlimited). There is no way to express a "may spend nothing" policy
// through limits; deactivate the account instead.
type Account struct {
	ID           int64
	Name         string
	Role         string
	Balance      decimal.Decimal
	DailyLimit   decimal.Decimal
	MonthlyLimit decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsUnlimited reports whether a limit value carries the "no limit
// enforced" sentinel.
func IsUnlimited(limit decimal.Decimal) bool {
	return limit.IsZero()
}
