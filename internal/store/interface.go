package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/model"
)

type Repository interface {
	// Account Operations
	CreateAccount(acc *model.Account) (int64, error)
	GetAccountByID(id int64) (*model.Account, error)
	GetAccountByName(name string) (*model.Account, error)
	UpdateAccount(acc *model.Account) error
	ListAccounts() ([]*model.Account, error)
	CountActiveAccounts() (int64, error)

	// Establishment Operations
	CreateEstablishment(est *model.Establishment) (int64, error)
	GetEstablishmentByID(id int64) (*model.Establishment, error)
	GetEstablishmentByCode(code string) (*model.Establishment, error)
	UpdateEstablishment(est *model.Establishment) error
	ListEstablishments() ([]*model.Establishment, error)

	// Transaction Operations. Transactions are append-only: UpdateTransactionState
	// touches status and updated_at only, everything else is immutable.
	CreateTransaction(trx *model.Transaction) (int64, error)
	GetTransactionByID(id int64) (*model.Transaction, error)
	UpdateTransactionState(trx *model.Transaction) error
	TransactionsByAccount(accountID int64, limit, offset int) ([]*model.Transaction, error)
	TransactionsByEstablishment(establishmentID int64, from, to *time.Time, limit, offset int) ([]*model.Transaction, error)
	PendingTransactions() ([]*model.Transaction, error)

	// Spend and revenue scans over completed payment transactions.
	SumCompletedPayments(accountID int64, from, to time.Time) (decimal.Decimal, error)
	SumAllCompletedPayments(from, to *time.Time) (decimal.Decimal, error)
	EstablishmentRevenue(establishmentID int64, dayStart, dayEnd time.Time) (*model.RevenueSummary, error)

	// Notification Operations
	CreateNotification(n *model.Notification) (int64, error)
	NotificationsByRecipient(recipientID int64, unreadOnly bool) ([]*model.Notification, error)
	MarkNotificationsRead(ids []int64) error

	// WithAccountTx acquires exclusive access to one account, then runs fn
	// against a transaction-scoped Repository. Everything fn writes is
	// committed as a single unit, or not at all if fn returns an error.
	WithAccountTx(ctx context.Context, accountID int64, fn func(Repository) error) error

	Close() error
}
