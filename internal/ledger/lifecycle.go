package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

// Transaction lifecycle: pending is the only non-terminal state.
// Complete and Cancel are the only ways out of it, and Complete is the
// only code anywhere that mutates an account balance.

// BalanceDelta maps a transaction kind to its signed balance effect.
// Adjustments are not covered: their direction comes from the caller's
// signed amount, never from the kind.
func BalanceDelta(kind model.TransactionKind, amount decimal.Decimal) decimal.Decimal {
	if kind == model.KindPayment {
		return amount.Neg()
	}
	return amount
}

// Complete moves trx from pending to completed, applying delta to the
// account balance. Both writes belong to the caller's atomic unit, so
// balance and status are never observable half-applied.
//
// A delta that would drive the balance negative marks the transaction
// failed and leaves the balance untouched; the failed row stays as an
// audit trail of the rejected attempt. This check does not replace the
// validator, it is the last-line defense when validation was bypassed
// or raced.
func Complete(r store.Repository, acc *model.Account, trx *model.Transaction, delta decimal.Decimal) (model.PaymentResult, error) {
	if trx.Status != model.StatusPending {
		return model.PaymentResult{}, fmt.Errorf("cannot complete transaction in status %q", trx.Status)
	}

	newBalance := acc.Balance.Add(delta)
	if newBalance.IsNegative() {
		trx.Status = model.StatusFailed
		if err := r.UpdateTransactionState(trx); err != nil {
			return model.PaymentResult{}, err
		}
		return model.Rejected(model.ReasonInsufficientFunds,
			fmt.Sprintf("insufficient funds: balance is %s", acc.Balance)), nil
	}

	acc.Balance = newBalance
	if err := r.UpdateAccount(acc); err != nil {
		return model.PaymentResult{}, err
	}

	trx.Status = model.StatusCompleted
	if err := r.UpdateTransactionState(trx); err != nil {
		return model.PaymentResult{}, err
	}

	return model.PaymentResult{
		Success:       true,
		TransactionID: trx.ID,
		Reference:     trx.Reference,
		BalanceAfter:  newBalance,
	}, nil
}

// Cancel moves a pending transaction to cancelled. The balance was
// never touched for a pending transaction, so there is nothing to undo.
func Cancel(r store.Repository, trx *model.Transaction) error {
	if trx.Status != model.StatusPending {
		return fmt.Errorf("cannot cancel transaction in status %q", trx.Status)
	}

	trx.Status = model.StatusCancelled
	return r.UpdateTransactionState(trx)
}
