package constants

import "time"

const (
	// Date Layouts
	DateFormat             = "2006-01-02"
	NotificationTimeFormat = "02.01.2006 15:04"
	ReportFileTimeFormat   = "02-01-2006_15-04-05"

	// Bound on acquiring the per-account atomic unit before the
	// operation fails with a busy result.
	DefaultLockTimeout = 5 * time.Second
)
