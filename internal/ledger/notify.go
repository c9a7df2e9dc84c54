package ledger

import (
	"fmt"

	"github.com/otabek-dev/corpex/internal/constants"
	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

// Notifier receives a fire-and-forget signal after a payment completes.
// The engine calls it at most once per payment, outside the atomic
// unit; a failure never rolls the payment back.
type Notifier interface {
	PaymentCompleted(recipientID int64, payer *model.Account, trx *model.Transaction) error
}

// StoreNotifier persists notification rows for the establishment owner.
type StoreNotifier struct {
	repo store.Repository
}

func NewStoreNotifier(repo store.Repository) *StoreNotifier {
	return &StoreNotifier{repo: repo}
}

func (n *StoreNotifier) PaymentCompleted(recipientID int64, payer *model.Account, trx *model.Transaction) error {
	notification := &model.Notification{
		RecipientID:   recipientID,
		TransactionID: &trx.ID,
		Title:         "New payment received",
		Message: fmt.Sprintf("Payment from %s\nAmount: %s\nDate: %s",
			payer.Name, trx.Amount, trx.CreatedAt.Format(constants.NotificationTimeFormat)),
	}

	_, err := n.repo.CreateNotification(notification)
	return err
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) PaymentCompleted(int64, *model.Account, *model.Transaction) error {
	return nil
}
