package store

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateReference = errors.New("transaction reference already exists")
	ErrDuplicateCode      = errors.New("establishment code already exists")
	ErrAccountExists      = errors.New("account already exists")
	// ErrBusy is returned when the per-account atomic unit could not be
	// acquired before the caller's deadline. Nothing was written; the
	// whole operation is safe to retry.
	ErrBusy = errors.New("account is busy, try again")
)
