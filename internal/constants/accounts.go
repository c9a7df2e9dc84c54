package constants

const (
	MaxNameLen = 100

	// Limits applied to newly created accounts unless overridden.
	// Zero would mean "unlimited", so the defaults are deliberately
	// non-zero.
	DefaultDailyLimit   = "100000"
	DefaultMonthlyLimit = "2000000"
)
