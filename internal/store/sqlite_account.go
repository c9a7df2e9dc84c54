package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/otabek-dev/corpex/internal/model"
)

func (s *Store) CreateAccount(acc *model.Account) (int64, error) {
	now := time.Now().UTC()

	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (name, role, balance, daily_limit, monthly_limit, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(
		acc.Name, acc.Role, acc.Balance.String(),
		acc.DailyLimit.String(), acc.MonthlyLimit.String(),
		acc.IsActive, now.Unix(), now.Unix(),
	).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.name") {
			return 0, ErrAccountExists
		}
		return 0, fmt.Errorf("failed to insert account : %w", err)
	}

	acc.ID = newID
	acc.CreatedAt = now
	acc.UpdatedAt = now
	return newID, nil
}

const accountColumns = "id, name, role, balance, daily_limit, monthly_limit, is_active, created_at, updated_at"

func (s *Store) scanAccount(row *sql.Row) (*model.Account, error) {
	acc := &model.Account{}
	var balance, daily, monthly string
	var createdAt, updatedAt int64

	err := row.Scan(
		&acc.ID, &acc.Name, &acc.Role,
		&balance, &daily, &monthly,
		&acc.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	if acc.Balance, err = scanDecimal(balance); err != nil {
		return nil, err
	}
	if acc.DailyLimit, err = scanDecimal(daily); err != nil {
		return nil, err
	}
	if acc.MonthlyLimit, err = scanDecimal(monthly); err != nil {
		return nil, err
	}
	acc.CreatedAt = unixTime(createdAt)
	acc.UpdatedAt = unixTime(updatedAt)

	return acc, nil
}

func (s *Store) GetAccountByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
	return s.scanAccount(row)
}

func (s *Store) GetAccountByName(name string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE name = ?", name)
	return s.scanAccount(row)
}

func (s *Store) UpdateAccount(acc *model.Account) error {
	now := time.Now().UTC()

	result, err := s.db.Exec(`
		UPDATE accounts
		SET name = ?, role = ?, balance = ?, daily_limit = ?, monthly_limit = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`,
		acc.Name, acc.Role, acc.Balance.String(),
		acc.DailyLimit.String(), acc.MonthlyLimit.String(),
		acc.IsActive, now.Unix(), acc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	acc.UpdatedAt = now
	return nil
}

func (s *Store) ListAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query("SELECT " + accountColumns + " FROM accounts ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		acc := &model.Account{}
		var balance, daily, monthly string
		var createdAt, updatedAt int64

		err := rows.Scan(
			&acc.ID, &acc.Name, &acc.Role,
			&balance, &daily, &monthly,
			&acc.IsActive, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		if acc.Balance, err = scanDecimal(balance); err != nil {
			return nil, err
		}
		if acc.DailyLimit, err = scanDecimal(daily); err != nil {
			return nil, err
		}
		if acc.MonthlyLimit, err = scanDecimal(monthly); err != nil {
			return nil, err
		}
		acc.CreatedAt = unixTime(createdAt)
		acc.UpdatedAt = unixTime(updatedAt)

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) CountActiveAccounts() (int64, error) {
	var count int64
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM accounts WHERE is_active = 1 AND role = ?", model.RoleEmployee,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active accounts: %w", err)
	}
	return count, nil
}
