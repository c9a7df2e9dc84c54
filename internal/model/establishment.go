package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Establishment is a payee merchant. The ledger core only reads it;
// ownership lives with the directory service.
type Establishment struct {
	ID          int64
	Name        string
	Code        string
	Description string
	Address     string
	OwnerID     *int64
	// MaxOrderAmount caps a single payment. Zero means no cap.
	MaxOrderAmount decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
