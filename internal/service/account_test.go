package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "service.db")
	s, err := store.NewStore(dbPath, os.DirFS(filepath.Join("..", "..")))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return NewService(s, Config{}), s
}

func d(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(raw)
}

func TestCreateAccount(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("creates an active account with zero balance", func(t *testing.T) {
		acc, err := svc.Account.CreateAccount("alice", model.RoleEmployee, d(t, "1000"), d(t, "20000"))
		require.NoError(t, err)

		assert.NotZero(t, acc.ID)
		assert.True(t, acc.Balance.IsZero())
		assert.True(t, acc.IsActive)
		assert.True(t, acc.DailyLimit.Equal(d(t, "1000")))
	})

	t.Run("trims the name", func(t *testing.T) {
		acc, err := svc.Account.CreateAccount("  bob  ", model.RoleAdmin, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "bob", acc.Name)
		assert.True(t, acc.IsAdmin())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := svc.Account.CreateAccount("", model.RoleEmployee, decimal.Zero, decimal.Zero)
		assert.Error(t, err)

		_, err = svc.Account.CreateAccount("carol", "manager", decimal.Zero, decimal.Zero)
		assert.Error(t, err)

		_, err = svc.Account.CreateAccount("carol", model.RoleEmployee, d(t, "-1"), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		_, err := svc.Account.CreateAccount("alice", model.RoleEmployee, decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestUpdateLimits(t *testing.T) {
	svc, _ := newTestService(t)

	acc, err := svc.Account.CreateAccount("alice", model.RoleEmployee, d(t, "1000"), d(t, "20000"))
	require.NoError(t, err)

	t.Run("nil leaves a limit unchanged", func(t *testing.T) {
		daily := d(t, "500")
		updated, err := svc.Account.UpdateLimits(acc.ID, &daily, nil)
		require.NoError(t, err)

		assert.True(t, updated.DailyLimit.Equal(d(t, "500")))
		assert.True(t, updated.MonthlyLimit.Equal(d(t, "20000")))
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		bad := d(t, "-5")
		_, err := svc.Account.UpdateLimits(acc.ID, nil, &bad)
		assert.Error(t, err)
	})

	t.Run("unknown account", func(t *testing.T) {
		daily := d(t, "500")
		_, err := svc.Account.UpdateLimits(9999, &daily, nil)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSetActive(t *testing.T) {
	svc, _ := newTestService(t)

	acc, err := svc.Account.CreateAccount("alice", model.RoleEmployee, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	deactivated, err := svc.Account.SetActive(acc.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	reactivated, err := svc.Account.SetActive(acc.ID, true)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}

func TestSpendingSummary(t *testing.T) {
	svc, s := newTestService(t)

	acc, err := svc.Account.CreateAccount("alice", model.RoleEmployee, d(t, "1000"), d(t, "20000"))
	require.NoError(t, err)

	acc.Balance = d(t, "750")
	require.NoError(t, s.UpdateAccount(acc))

	_, err = s.CreateTransaction(&model.Transaction{
		Reference: "sum-1",
		AccountID: acc.ID,
		Amount:    d(t, "250"),
		Kind:      model.KindPayment,
		Status:    model.StatusCompleted,
	})
	require.NoError(t, err)

	summary, err := svc.Account.SpendingSummary(acc.ID)
	require.NoError(t, err)

	assert.Equal(t, "alice", summary.Name)
	assert.True(t, summary.Balance.Equal(d(t, "750")))
	assert.True(t, summary.TodaySpent.Equal(d(t, "250")))
	assert.True(t, summary.MonthSpent.Equal(d(t, "250")))
	assert.True(t, summary.DailyRemaining.Equal(d(t, "750")))
	assert.True(t, summary.MonthlyRemaining.Equal(d(t, "19750")))
}

func TestCreateEstablishment(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("generates a code when empty", func(t *testing.T) {
		est, err := svc.Establishment.CreateEstablishment("Canteen", "", "", "", nil, decimal.Zero)
		require.NoError(t, err)

		assert.NotZero(t, est.ID)
		assert.NotEmpty(t, est.Code)
		assert.True(t, est.IsActive)
	})

	t.Run("keeps a provided code", func(t *testing.T) {
		est, err := svc.Establishment.CreateEstablishment("Cafe", "cafe-1", "", "", nil, d(t, "300"))
		require.NoError(t, err)
		assert.Equal(t, "cafe-1", est.Code)

		byCode, err := svc.Establishment.GetEstablishmentByCode("cafe-1")
		require.NoError(t, err)
		assert.Equal(t, est.ID, byCode.ID)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := svc.Establishment.CreateEstablishment("  ", "", "", "", nil, decimal.Zero)
		assert.Error(t, err)

		_, err = svc.Establishment.CreateEstablishment("Bad", "", "", "", nil, d(t, "-1"))
		assert.Error(t, err)
	})
}

func TestSetMaxOrderAmount(t *testing.T) {
	svc, _ := newTestService(t)

	est, err := svc.Establishment.CreateEstablishment("Canteen", "canteen", "", "", nil, decimal.Zero)
	require.NoError(t, err)

	updated, err := svc.Establishment.SetMaxOrderAmount(est.ID, d(t, "450"))
	require.NoError(t, err)
	assert.True(t, updated.MaxOrderAmount.Equal(d(t, "450")))

	_, err = svc.Establishment.SetMaxOrderAmount(est.ID, d(t, "-1"))
	assert.Error(t, err)
}
