package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

type EstablishmentService struct {
	repo store.Repository
}

func NewEstablishmentService(repo store.Repository, _ Config) *EstablishmentService {
	return &EstablishmentService{repo: repo}
}

// CreateEstablishment registers a new payee merchant. An empty code
// gets a generated one; codes are unique across establishments.
func (es *EstablishmentService) CreateEstablishment(name, code, description, address string, ownerID *int64, maxOrderAmount decimal.Decimal) (*model.Establishment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("establishment name can't be empty")
	}
	if maxOrderAmount.IsNegative() {
		return nil, fmt.Errorf("max order amount can't be negative")
	}
	if code == "" {
		code = uuid.NewString()
	}

	est := &model.Establishment{
		Name:           name,
		Code:           code,
		Description:    description,
		Address:        address,
		OwnerID:        ownerID,
		MaxOrderAmount: maxOrderAmount,
		IsActive:       true,
	}

	if _, err := es.repo.CreateEstablishment(est); err != nil {
		return nil, fmt.Errorf("failed to create establishment: %w", err)
	}
	return est, nil
}

func (es *EstablishmentService) GetEstablishmentByID(id int64) (*model.Establishment, error) {
	return es.repo.GetEstablishmentByID(id)
}

func (es *EstablishmentService) GetEstablishmentByCode(code string) (*model.Establishment, error) {
	return es.repo.GetEstablishmentByCode(code)
}

func (es *EstablishmentService) ListEstablishments() ([]*model.Establishment, error) {
	return es.repo.ListEstablishments()
}

func (es *EstablishmentService) SetActive(id int64, active bool) (*model.Establishment, error) {
	est, err := es.repo.GetEstablishmentByID(id)
	if err != nil {
		return nil, err
	}

	est.IsActive = active
	if err := es.repo.UpdateEstablishment(est); err != nil {
		return nil, fmt.Errorf("failed to update establishment: %w", err)
	}
	return est, nil
}

func (es *EstablishmentService) SetMaxOrderAmount(id int64, maxOrderAmount decimal.Decimal) (*model.Establishment, error) {
	if maxOrderAmount.IsNegative() {
		return nil, fmt.Errorf("max order amount can't be negative")
	}

	est, err := es.repo.GetEstablishmentByID(id)
	if err != nil {
		return nil, err
	}

	est.MaxOrderAmount = maxOrderAmount
	if err := es.repo.UpdateEstablishment(est); err != nil {
		return nil, fmt.Errorf("failed to update establishment: %w", err)
	}
	return est, nil
}

func (es *EstablishmentService) Transactions(establishmentID int64, from, to *time.Time, limit, offset int) ([]*model.Transaction, error) {
	return es.repo.TransactionsByEstablishment(establishmentID, from, to, limit, offset)
}
