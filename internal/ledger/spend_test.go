package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabek-dev/corpex/internal/model"
)

func TestDayWindow(t *testing.T) {
	at := time.Date(2025, 3, 15, 17, 42, 9, 0, time.UTC)

	start, end := DayWindow(at)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindow(t *testing.T) {
	at := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	start, end := MonthWindow(at)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindowCrossesYear(t *testing.T) {
	start, end := MonthWindow(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestSpendCountsOnlyCompletedPayments(t *testing.T) {
	repo := newTestRepo(t)
	acc := seedAccount(t, repo, "alice", model.RoleEmployee, "1000", "0", "0", true)
	other := seedAccount(t, repo, "bob", model.RoleEmployee, "1000", "0", "0", true)

	seed := []struct {
		reference string
		accountID int64
		amount    string
		kind      model.TransactionKind
		status    model.TransactionStatus
	}{
		{"s1", acc.ID, "100", model.KindPayment, model.StatusCompleted},
		{"s2", acc.ID, "40.25", model.KindPayment, model.StatusCompleted},
		{"s3", acc.ID, "50", model.KindPayment, model.StatusPending},
		{"s4", acc.ID, "70", model.KindPayment, model.StatusFailed},
		{"s5", acc.ID, "30", model.KindPayment, model.StatusCancelled},
		{"s6", acc.ID, "500", model.KindRefund, model.StatusCompleted},
		{"s7", acc.ID, "500", model.KindTopUp, model.StatusCompleted},
		{"s8", other.ID, "999", model.KindPayment, model.StatusCompleted},
	}
	for _, row := range seed {
		_, err := repo.CreateTransaction(&model.Transaction{
			Reference: row.reference,
			AccountID: row.accountID,
			Amount:    d(t, row.amount),
			Kind:      row.kind,
			Status:    row.status,
		})
		require.NoError(t, err)
	}

	aggregator := NewSpendAggregator(repo, nil)

	todaySpent, err := aggregator.TodaySpent(acc.ID)
	require.NoError(t, err)
	assert.True(t, todaySpent.Equal(d(t, "140.25")), "today spent is %s", todaySpent)

	monthSpent, err := aggregator.MonthSpent(acc.ID)
	require.NoError(t, err)
	assert.True(t, monthSpent.Equal(d(t, "140.25")), "month spent is %s", monthSpent)

	// Reading the aggregate twice must not change it.
	again, err := aggregator.TodaySpent(acc.ID)
	require.NoError(t, err)
	assert.True(t, again.Equal(todaySpent))
}
