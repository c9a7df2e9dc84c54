package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/store"
)

// SpendAggregator computes an account's already-committed payment spend
// over the current calendar day and month. Sums are recomputed from the
// ledger on every call, so they always reflect the latest committed
// state; only completed payment transactions count.
type SpendAggregator struct {
	repo store.Repository
	now  func() time.Time
}

func NewSpendAggregator(repo store.Repository, clock func() time.Time) *SpendAggregator {
	if clock == nil {
		clock = time.Now
	}
	return &SpendAggregator{repo: repo, now: clock}
}

func (a *SpendAggregator) TodaySpent(accountID int64) (decimal.Decimal, error) {
	start, end := DayWindow(a.now())
	return a.repo.SumCompletedPayments(accountID, start, end)
}

func (a *SpendAggregator) MonthSpent(accountID int64) (decimal.Decimal, error) {
	start, end := MonthWindow(a.now())
	return a.repo.SumCompletedPayments(accountID, start, end)
}

// DayWindow returns [start, end) of the UTC calendar day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// MonthWindow returns [start, end) of the UTC calendar month containing t.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
