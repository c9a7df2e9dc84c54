package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/model"
)

const transactionColumns = "id, reference, account_id, establishment_id, amount, kind, status, description, created_by, created_at, updated_at"

func (s *Store) CreateTransaction(trx *model.Transaction) (int64, error) {
	now := time.Now().UTC()

	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (reference, account_id, establishment_id, amount, kind, status, description, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(
		trx.Reference, trx.AccountID, trx.EstablishmentID,
		trx.Amount.String(), string(trx.Kind), string(trx.Status),
		trx.Description, trx.CreatedBy, now.Unix(), now.Unix(),
	).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateReference
		}
		return 0, fmt.Errorf("failed to insert transaction : %w", err)
	}

	trx.ID = newID
	trx.CreatedAt = now
	trx.UpdatedAt = now
	return newID, nil
}

func scanTransactionRow(scan func(dest ...any) error) (*model.Transaction, error) {
	trx := &model.Transaction{}
	var establishmentID, createdBy sql.NullInt64
	var amount, kind, status string
	var createdAt, updatedAt int64

	err := scan(
		&trx.ID, &trx.Reference, &trx.AccountID, &establishmentID,
		&amount, &kind, &status, &trx.Description,
		&createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	if establishmentID.Valid {
		trx.EstablishmentID = &establishmentID.Int64
	}
	if createdBy.Valid {
		trx.CreatedBy = &createdBy.Int64
	}
	if trx.Amount, err = scanDecimal(amount); err != nil {
		return nil, err
	}
	trx.Kind = model.TransactionKind(kind)
	trx.Status = model.TransactionStatus(status)
	trx.CreatedAt = unixTime(createdAt)
	trx.UpdatedAt = unixTime(updatedAt)

	return trx, nil
}

func (s *Store) GetTransactionByID(id int64) (*model.Transaction, error) {
	row := s.db.QueryRow("SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	return scanTransactionRow(row.Scan)
}

// UpdateTransactionState persists a lifecycle transition. The ledger is
// append-only, so only status and updated_at are written.
func (s *Store) UpdateTransactionState(trx *model.Transaction) error {
	now := time.Now().UTC()

	result, err := s.db.Exec(`
		UPDATE transactions
		SET status = ?, updated_at = ?
		WHERE id = ?
	`, string(trx.Status), now.Unix(), trx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	trx.UpdatedAt = now
	return nil
}

func (s *Store) queryTransactions(query string, args ...any) ([]*model.Transaction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trx, err := scanTransactionRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, trx)
	}

	return transactions, rows.Err()
}

func (s *Store) TransactionsByAccount(accountID int64, limit, offset int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.queryTransactions(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE account_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, accountID, limit, offset)
}

func (s *Store) TransactionsByEstablishment(establishmentID int64, from, to *time.Time, limit, offset int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	query := "SELECT " + transactionColumns + " FROM transactions WHERE establishment_id = ?"
	args := []any{establishmentID}

	if from != nil {
		query += " AND created_at >= ?"
		args = append(args, from.Unix())
	}
	if to != nil {
		query += " AND created_at <= ?"
		args = append(args, to.Unix())
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	return s.queryTransactions(query, args...)
}

func (s *Store) PendingTransactions() ([]*model.Transaction, error) {
	return s.queryTransactions(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE status = ?
		ORDER BY created_at, id
	`, string(model.StatusPending))
}

// sumAmounts adds decimal amount strings in Go. SQLite SUM would coerce
// the text column to float and lose exactness.
func (s *Store) sumAmounts(query string, args ...any) (decimal.Decimal, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query amounts: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan amount: %w", err)
		}
		amount, err := scanDecimal(raw)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(amount)
	}

	return total, rows.Err()
}

// SumCompletedPayments totals completed payment-kind amounts for one
// account with created_at in [from, to). Pending, failed and cancelled
// rows never count.
func (s *Store) SumCompletedPayments(accountID int64, from, to time.Time) (decimal.Decimal, error) {
	return s.sumAmounts(`
		SELECT amount FROM transactions
		WHERE account_id = ? AND kind = ? AND status = ? AND created_at >= ? AND created_at < ?
	`, accountID, string(model.KindPayment), string(model.StatusCompleted), from.Unix(), to.Unix())
}

// SumAllCompletedPayments totals completed payment spend across every
// account. Nil bounds mean unbounded.
func (s *Store) SumAllCompletedPayments(from, to *time.Time) (decimal.Decimal, error) {
	query := "SELECT amount FROM transactions WHERE kind = ? AND status = ?"
	args := []any{string(model.KindPayment), string(model.StatusCompleted)}

	if from != nil {
		query += " AND created_at >= ?"
		args = append(args, from.Unix())
	}
	if to != nil {
		query += " AND created_at < ?"
		args = append(args, to.Unix())
	}

	return s.sumAmounts(query, args...)
}

// EstablishmentRevenue aggregates completed payments received by one
// establishment: lifetime total, today's slice, order count.
func (s *Store) EstablishmentRevenue(establishmentID int64, dayStart, dayEnd time.Time) (*model.RevenueSummary, error) {
	est, err := s.GetEstablishmentByID(establishmentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT amount, created_at FROM transactions
		WHERE establishment_id = ? AND kind = ? AND status = ?
	`, establishmentID, string(model.KindPayment), string(model.StatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue: %w", err)
	}
	defer rows.Close()

	summary := &model.RevenueSummary{
		EstablishmentID: establishmentID,
		Name:            est.Name,
		TotalRevenue:    decimal.Zero,
		TodayRevenue:    decimal.Zero,
	}

	for rows.Next() {
		var raw string
		var createdAt int64
		if err := rows.Scan(&raw, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		amount, err := scanDecimal(raw)
		if err != nil {
			return nil, err
		}

		summary.TotalRevenue = summary.TotalRevenue.Add(amount)
		summary.TotalOrders++
		if createdAt >= dayStart.Unix() && createdAt < dayEnd.Unix() {
			summary.TodayRevenue = summary.TodayRevenue.Add(amount)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.DivRound(decimal.NewFromInt(summary.TotalOrders), 2)
	} else {
		summary.AverageOrderValue = decimal.Zero
	}

	return summary, nil
}
