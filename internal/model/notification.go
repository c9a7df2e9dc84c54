package model

import "time"

// Notification is a persisted message for an establishment owner.
// Delivery transport is out of scope; rows are the sink.
type Notification struct {
	ID            int64
	RecipientID   int64
	TransactionID *int64
	Title         string
	Message       string
	IsRead        bool
	CreatedAt     time.Time
}
