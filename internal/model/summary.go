package model

import "github.com/shopspring/decimal"

// SpendingSummary describes one account's position against its limits.
type SpendingSummary struct {
	AccountID        int64
	Name             string
	Balance          decimal.Decimal
	DailyLimit       decimal.Decimal
	MonthlyLimit     decimal.Decimal
	TodaySpent       decimal.Decimal
	MonthSpent       decimal.Decimal
	DailyRemaining   decimal.Decimal
	MonthlyRemaining decimal.Decimal
}

// RevenueSummary is the read-only view consumed by report renderers.
type RevenueSummary struct {
	EstablishmentID   int64
	Name              string
	TotalRevenue      decimal.Decimal
	TodayRevenue      decimal.Decimal
	TotalOrders       int64
	AverageOrderValue decimal.Decimal
}

// CompanySummary aggregates completed payment spend across all accounts.
type CompanySummary struct {
	TotalSpending  decimal.Decimal
	TodaySpending  decimal.Decimal
	MonthSpending  decimal.Decimal
	ActiveAccounts int64
}
