package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/otabek-dev/corpex/internal/model"
)

func (s *Store) CreateNotification(n *model.Notification) (int64, error) {
	now := time.Now().UTC()

	stmt, err := s.db.Prepare(`
		INSERT INTO notifications (recipient_id, transaction_id, title, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare notification SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(
		n.RecipientID, n.TransactionID, n.Title, n.Message, n.IsRead, now.Unix(),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert notification : %w", err)
	}

	n.ID = newID
	n.CreatedAt = now
	return newID, nil
}

func (s *Store) NotificationsByRecipient(recipientID int64, unreadOnly bool) ([]*model.Notification, error) {
	query := `
		SELECT id, recipient_id, transaction_id, title, message, is_read, created_at
		FROM notifications
		WHERE recipient_id = ?
	`
	if unreadOnly {
		query += " AND is_read = 0"
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.db.Query(query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		n := &model.Notification{}
		var transactionID sql.NullInt64
		var createdAt int64

		err := rows.Scan(&n.ID, &n.RecipientID, &transactionID, &n.Title, &n.Message, &n.IsRead, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		if transactionID.Valid {
			n.TransactionID = &transactionID.Int64
		}
		n.CreatedAt = unixTime(createdAt)

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (s *Store) MarkNotificationsRead(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	_, err := s.db.Exec(
		"UPDATE notifications SET is_read = 1 WHERE id IN ("+placeholders+")", args...,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
