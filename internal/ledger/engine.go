package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/constants"
	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

// Engine orchestrates the ledger operations: validate a requested money
// movement, create the transaction record, and apply the balance
// mutation inside one per-account atomic unit. All outcomes, including
// unexpected internal errors, surface as PaymentResult values; the
// engine never lets an error escape raw.
type Engine struct {
	repo        store.Repository
	spend       *SpendAggregator
	notifier    Notifier
	lockTimeout time.Duration
	now         func() time.Time
}

type Config struct {
	// Notifier receives post-completion payment notifications.
	// Defaults to NopNotifier.
	Notifier Notifier
	// LockTimeout bounds acquisition of the per-account atomic unit.
	LockTimeout time.Duration
	// Clock overrides time.Now, used by the spend windows.
	Clock func() time.Time
}

func NewEngine(repo store.Repository, cfg Config) *Engine {
	if cfg.Notifier == nil {
		cfg.Notifier = NopNotifier{}
	}
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = constants.DefaultLockTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &Engine{
		repo:        repo,
		spend:       NewSpendAggregator(repo, cfg.Clock),
		notifier:    cfg.Notifier,
		lockTimeout: cfg.LockTimeout,
		now:         cfg.Clock,
	}
}

// Spend exposes the aggregator for read-only callers (summaries, CLI).
func (e *Engine) Spend() *SpendAggregator {
	return e.spend
}

// PaymentRequest describes one requested payment. Reference is optional;
// when set it acts as an idempotency key and a duplicate is rejected
// instead of creating a second transaction.
type PaymentRequest struct {
	AccountID       int64
	EstablishmentID int64
	Amount          decimal.Decimal
	Description     string
	Reference       string
}

// ProcessPayment validates the request against account, establishment
// and spend-window limits, then debits the balance and completes the
// transaction atomically. The spend sums read here are best-effort
// snapshots; balance sufficiency is re-checked inside the atomic unit.
func (e *Engine) ProcessPayment(ctx context.Context, req PaymentRequest) (result model.PaymentResult) {
	defer recoverToResult(&result, "payment processing")

	acc, err := e.repo.GetAccountByID(req.AccountID)
	if err != nil {
		return e.failure("payment processing", err)
	}
	est, err := e.repo.GetEstablishmentByID(req.EstablishmentID)
	if err != nil {
		return e.failure("payment processing", err)
	}

	todaySpent, err := e.spend.TodaySpent(acc.ID)
	if err != nil {
		return e.failure("payment processing", err)
	}
	monthSpent, err := e.spend.MonthSpent(acc.ID)
	if err != nil {
		return e.failure("payment processing", err)
	}

	if decision := Validate(acc, est, req.Amount, todaySpent, monthSpent); !decision.OK {
		return model.Rejected(decision.Reason, decision.Message)
	}

	trx := &model.Transaction{
		Reference:       orNewReference(req.Reference),
		AccountID:       acc.ID,
		EstablishmentID: &est.ID,
		Amount:          req.Amount,
		Kind:            model.KindPayment,
		Status:          model.StatusPending,
		Description:     req.Description,
	}

	result = e.commit(ctx, "payment processing", trx, BalanceDelta(model.KindPayment, req.Amount))

	if result.Success && est.OwnerID != nil {
		// Best effort, at most once. A lost notification never
		// invalidates a committed payment.
		_ = e.notifier.PaymentCompleted(*est.OwnerID, acc, trx)
	}

	return result
}

// ProcessRefund credits back a completed payment in full, as a new
// refund transaction on the same account and establishment.
func (e *Engine) ProcessRefund(ctx context.Context, transactionID, adminID int64, reason string) (result model.PaymentResult) {
	defer recoverToResult(&result, "refund processing")

	if res, ok := e.requireAdmin(adminID, "only admins can issue refunds"); !ok {
		return res
	}

	original, err := e.repo.GetTransactionByID(transactionID)
	if err != nil {
		return e.failure("refund processing", err)
	}
	if original.Kind != model.KindPayment {
		return model.Rejected(model.ReasonNotRefundable, "can only refund payment transactions")
	}
	if original.Status != model.StatusCompleted {
		return model.Rejected(model.ReasonNotRefundable, "can only refund completed transactions")
	}

	if reason == "" {
		reason = "No reason provided"
	}

	trx := &model.Transaction{
		Reference:       uuid.NewString(),
		AccountID:       original.AccountID,
		EstablishmentID: original.EstablishmentID,
		Amount:          original.Amount,
		Kind:            model.KindRefund,
		Status:          model.StatusPending,
		Description:     fmt.Sprintf("Refund for transaction #%d. Reason: %s", original.ID, reason),
		CreatedBy:       &adminID,
	}

	return e.commit(ctx, "refund processing", trx, BalanceDelta(model.KindRefund, original.Amount))
}

// TopUpBalance credits an account with a positive amount.
func (e *Engine) TopUpBalance(ctx context.Context, accountID int64, amount decimal.Decimal, adminID int64, description string) (result model.PaymentResult) {
	defer recoverToResult(&result, "balance top-up")

	if _, err := e.repo.GetAccountByID(accountID); err != nil {
		return e.failure("balance top-up", err)
	}

	admin, res, ok := e.requireAdminAccount(adminID, "only admins can top up balances")
	if !ok {
		return res
	}

	if amount.Sign() <= 0 {
		return model.Rejected(model.ReasonInvalidAmount, "top-up amount must be positive")
	}

	if description == "" {
		description = fmt.Sprintf("Balance top-up by admin %s", admin.Name)
	}

	trx := &model.Transaction{
		Reference:   uuid.NewString(),
		AccountID:   accountID,
		Amount:      amount,
		Kind:        model.KindTopUp,
		Status:      model.StatusPending,
		Description: description,
		CreatedBy:   &adminID,
	}

	return e.commit(ctx, "balance top-up", trx, BalanceDelta(model.KindTopUp, amount))
}

// AdjustBalance applies a signed correction to an account balance. The
// stored transaction keeps the absolute amount; the direction lives in
// the signed delta and the description. A negative adjustment that
// would overdraw the account is rejected by the lifecycle transition.
func (e *Engine) AdjustBalance(ctx context.Context, accountID int64, amount decimal.Decimal, adminID int64, reason string) (result model.PaymentResult) {
	defer recoverToResult(&result, "balance adjustment")

	if _, err := e.repo.GetAccountByID(accountID); err != nil {
		return e.failure("balance adjustment", err)
	}

	admin, res, ok := e.requireAdminAccount(adminID, "only admins can adjust balances")
	if !ok {
		return res
	}

	if amount.IsZero() {
		return model.Rejected(model.ReasonInvalidAmount, "adjustment amount must be non-zero")
	}

	trx := &model.Transaction{
		Reference:   uuid.NewString(),
		AccountID:   accountID,
		Amount:      amount.Abs(),
		Kind:        model.KindAdjustment,
		Status:      model.StatusPending,
		Description: fmt.Sprintf("Balance adjustment by admin %s: %s", admin.Name, reason),
		CreatedBy:   &adminID,
	}

	return e.commit(ctx, "balance adjustment", trx, amount)
}

// Withdraw debits an account outside the normal payment checks: only
// balance sufficiency applies, no establishment or window limits.
func (e *Engine) Withdraw(ctx context.Context, accountID, establishmentID int64, amount decimal.Decimal) (result model.PaymentResult) {
	defer recoverToResult(&result, "withdrawal")

	acc, err := e.repo.GetAccountByID(accountID)
	if err != nil {
		return e.failure("withdrawal", err)
	}
	if !acc.IsActive {
		return model.Rejected(model.ReasonAccountInactive, "account is inactive")
	}
	est, err := e.repo.GetEstablishmentByID(establishmentID)
	if err != nil {
		return e.failure("withdrawal", err)
	}

	if amount.Sign() <= 0 {
		return model.Rejected(model.ReasonInvalidAmount, "withdrawal amount must be positive")
	}

	trx := &model.Transaction{
		Reference:       uuid.NewString(),
		AccountID:       acc.ID,
		EstablishmentID: &est.ID,
		Amount:          amount,
		Kind:            model.KindPayment,
		Status:          model.StatusPending,
		Description:     "Withdrawal",
	}

	return e.commit(ctx, "withdrawal", trx, BalanceDelta(model.KindPayment, amount))
}

// CancelTransaction moves a pending transaction to cancelled.
func (e *Engine) CancelTransaction(ctx context.Context, transactionID int64) (result model.PaymentResult) {
	defer recoverToResult(&result, "cancellation")

	trx, err := e.repo.GetTransactionByID(transactionID)
	if err != nil {
		return e.failure("cancellation", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, e.lockTimeout)
	defer cancel()

	err = e.repo.WithAccountTx(lockCtx, trx.AccountID, func(r store.Repository) error {
		current, err := r.GetTransactionByID(transactionID)
		if err != nil {
			return err
		}
		if err := Cancel(r, current); err != nil {
			return err
		}
		*trx = *current
		return nil
	})
	if err != nil {
		return e.failure("cancellation", err)
	}

	return model.PaymentResult{Success: true, TransactionID: trx.ID, Reference: trx.Reference}
}

// commit runs the create-then-complete sequence inside the per-account
// atomic unit. The account is re-read inside the unit so the decision
// always sees the latest committed balance, closing the race between
// validation and commit. A rejection by Complete still commits: the
// failed transaction row is the audit trail.
func (e *Engine) commit(ctx context.Context, op string, trx *model.Transaction, delta decimal.Decimal) model.PaymentResult {
	lockCtx, cancel := context.WithTimeout(ctx, e.lockTimeout)
	defer cancel()

	var result model.PaymentResult
	err := e.repo.WithAccountTx(lockCtx, trx.AccountID, func(r store.Repository) error {
		acc, err := r.GetAccountByID(trx.AccountID)
		if err != nil {
			return err
		}
		if _, err := r.CreateTransaction(trx); err != nil {
			return err
		}
		result, err = Complete(r, acc, trx, delta)
		return err
	})
	if err != nil {
		return e.failure(op, err)
	}

	return result
}

func (e *Engine) requireAdmin(adminID int64, message string) (model.PaymentResult, bool) {
	_, res, ok := e.requireAdminAccount(adminID, message)
	return res, ok
}

func (e *Engine) requireAdminAccount(adminID int64, message string) (*model.Account, model.PaymentResult, bool) {
	admin, err := e.repo.GetAccountByID(adminID)
	if err != nil || !admin.IsAdmin() {
		return nil, model.Rejected(model.ReasonNotAdmin, message), false
	}
	return admin, model.PaymentResult{}, true
}

// failure converts storage errors into the closed reason set. Busy and
// not-found are expected outcomes; everything else is reported as an
// internal failure, never propagated raw.
func (e *Engine) failure(op string, err error) model.PaymentResult {
	switch {
	case errors.Is(err, store.ErrBusy):
		return model.Rejected(model.ReasonBusy, "account is busy, try again")
	case errors.Is(err, store.ErrDuplicateReference):
		return model.Rejected(model.ReasonDuplicate, "a transaction with this reference already exists")
	case errors.Is(err, store.ErrNotFound):
		return model.Rejected(model.ReasonNotFound, "record not found")
	default:
		return model.Rejected(model.ReasonInternal, fmt.Sprintf("%s failed: %v", op, err))
	}
}

func recoverToResult(result *model.PaymentResult, op string) {
	if p := recover(); p != nil {
		*result = model.Rejected(model.ReasonInternal, fmt.Sprintf("%s failed: %v", op, p))
	}
}

func orNewReference(ref string) string {
	if ref != "" {
		return ref
	}
	return uuid.NewString()
}
