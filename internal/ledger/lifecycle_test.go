package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

func TestBalanceDelta(t *testing.T) {
	amount := d(t, "100")

	assert.True(t, BalanceDelta(model.KindPayment, amount).Equal(d(t, "-100")))
	assert.True(t, BalanceDelta(model.KindRefund, amount).Equal(amount))
	assert.True(t, BalanceDelta(model.KindTopUp, amount).Equal(amount))
}

func TestCompleteAppliesDeltaAndStatus(t *testing.T) {
	repo := newTestRepo(t)
	acc := seedAccount(t, repo, "alice", model.RoleEmployee, "500", "0", "0", true)

	trx := &model.Transaction{
		Reference: "complete-1",
		AccountID: acc.ID,
		Amount:    d(t, "200"),
		Kind:      model.KindPayment,
		Status:    model.StatusPending,
	}

	var result model.PaymentResult
	err := repo.WithAccountTx(context.Background(), acc.ID, func(r store.Repository) error {
		current, err := r.GetAccountByID(acc.ID)
		if err != nil {
			return err
		}
		if _, err := r.CreateTransaction(trx); err != nil {
			return err
		}
		result, err = Complete(r, current, trx, d(t, "-200"))
		return err
	})
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.True(t, result.BalanceAfter.Equal(d(t, "300")))

	reloaded, err := repo.GetAccountByID(acc.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(d(t, "300")))

	stored, err := repo.GetTransactionByID(trx.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, stored.Status)
}

func TestCompleteOverdrawCommitsFailedRow(t *testing.T) {
	repo := newTestRepo(t)
	acc := seedAccount(t, repo, "alice", model.RoleEmployee, "50", "0", "0", true)

	trx := &model.Transaction{
		Reference: "overdraw-1",
		AccountID: acc.ID,
		Amount:    d(t, "100"),
		Kind:      model.KindPayment,
		Status:    model.StatusPending,
	}

	var result model.PaymentResult
	err := repo.WithAccountTx(context.Background(), acc.ID, func(r store.Repository) error {
		current, err := r.GetAccountByID(acc.ID)
		if err != nil {
			return err
		}
		if _, err := r.CreateTransaction(trx); err != nil {
			return err
		}
		// Complete reports the overdraw as a rejection, not an error,
		// so the unit commits and the failed row survives as audit.
		result, err = Complete(r, current, trx, d(t, "-100"))
		return err
	})
	require.NoError(t, err)

	require.False(t, result.Success)
	assert.Equal(t, model.ReasonInsufficientFunds, result.Reason)

	reloaded, err := repo.GetAccountByID(acc.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(d(t, "50")), "balance must be untouched")

	stored, err := repo.GetTransactionByID(trx.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, stored.Status)
}

func TestCompleteRequiresPending(t *testing.T) {
	repo := newTestRepo(t)
	acc := seedAccount(t, repo, "alice", model.RoleEmployee, "500", "0", "0", true)

	trx := &model.Transaction{
		Reference: "done-1",
		AccountID: acc.ID,
		Amount:    d(t, "10"),
		Kind:      model.KindTopUp,
		Status:    model.StatusCompleted,
	}
	_, err := repo.CreateTransaction(trx)
	require.NoError(t, err)

	_, err = Complete(repo, acc, trx, d(t, "10"))
	assert.Error(t, err)
}

func TestCancelOnlyPending(t *testing.T) {
	repo := newTestRepo(t)
	acc := seedAccount(t, repo, "alice", model.RoleEmployee, "500", "0", "0", true)

	pending := &model.Transaction{
		Reference: "cancel-1",
		AccountID: acc.ID,
		Amount:    d(t, "10"),
		Kind:      model.KindTopUp,
		Status:    model.StatusPending,
	}
	_, err := repo.CreateTransaction(pending)
	require.NoError(t, err)

	require.NoError(t, Cancel(repo, pending))
	assert.Equal(t, model.StatusCancelled, pending.Status)

	// Every terminal status refuses the transition.
	for _, status := range []model.TransactionStatus{
		model.StatusCompleted, model.StatusFailed, model.StatusCancelled,
	} {
		trx := &model.Transaction{Status: status}
		assert.Error(t, Cancel(repo, trx), "status %s", status)
	}
}
