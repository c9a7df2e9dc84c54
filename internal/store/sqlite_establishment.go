package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/otabek-dev/corpex/internal/model"
)

const establishmentColumns = "id, name, code, description, address, owner_id, max_order_amount, is_active, created_at, updated_at"

func (s *Store) CreateEstablishment(est *model.Establishment) (int64, error) {
	now := time.Now().UTC()

	stmt, err := s.db.Prepare(`
		INSERT INTO establishments (name, code, description, address, owner_id, max_order_amount, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(
		est.Name, est.Code, est.Description, est.Address,
		est.OwnerID, est.MaxOrderAmount.String(),
		est.IsActive, now.Unix(), now.Unix(),
	).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: establishments.code") {
			return 0, ErrDuplicateCode
		}
		return 0, fmt.Errorf("failed to insert establishment : %w", err)
	}

	est.ID = newID
	est.CreatedAt = now
	est.UpdatedAt = now
	return newID, nil
}

func scanEstablishmentRow(scan func(dest ...any) error) (*model.Establishment, error) {
	est := &model.Establishment{}
	var ownerID sql.NullInt64
	var maxOrder string
	var createdAt, updatedAt int64

	err := scan(
		&est.ID, &est.Name, &est.Code, &est.Description, &est.Address,
		&ownerID, &maxOrder, &est.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan establishment: %w", err)
	}

	if ownerID.Valid {
		est.OwnerID = &ownerID.Int64
	}
	if est.MaxOrderAmount, err = scanDecimal(maxOrder); err != nil {
		return nil, err
	}
	est.CreatedAt = unixTime(createdAt)
	est.UpdatedAt = unixTime(updatedAt)

	return est, nil
}

func (s *Store) GetEstablishmentByID(id int64) (*model.Establishment, error) {
	row := s.db.QueryRow("SELECT "+establishmentColumns+" FROM establishments WHERE id = ?", id)
	return scanEstablishmentRow(row.Scan)
}

func (s *Store) GetEstablishmentByCode(code string) (*model.Establishment, error) {
	row := s.db.QueryRow("SELECT "+establishmentColumns+" FROM establishments WHERE code = ?", code)
	return scanEstablishmentRow(row.Scan)
}

func (s *Store) UpdateEstablishment(est *model.Establishment) error {
	now := time.Now().UTC()

	result, err := s.db.Exec(`
		UPDATE establishments
		SET name = ?, description = ?, address = ?, owner_id = ?, max_order_amount = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`,
		est.Name, est.Description, est.Address, est.OwnerID,
		est.MaxOrderAmount.String(), est.IsActive, now.Unix(), est.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update establishment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	est.UpdatedAt = now
	return nil
}

func (s *Store) ListEstablishments() ([]*model.Establishment, error) {
	rows, err := s.db.Query("SELECT " + establishmentColumns + " FROM establishments ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query establishments: %w", err)
	}
	defer rows.Close()

	var establishments []*model.Establishment
	for rows.Next() {
		est, err := scanEstablishmentRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		establishments = append(establishments, est)
	}

	return establishments, rows.Err()
}
