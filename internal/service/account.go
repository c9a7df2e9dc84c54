package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/otabek-dev/corpex/internal/constants"
	"github.com/otabek-dev/corpex/internal/ledger"
	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

type AccountService struct {
	repo  store.Repository
	spend *ledger.SpendAggregator
}

func NewAccountService(repo store.Repository, cfg Config) *AccountService {
	return &AccountService{
		repo:  repo,
		spend: ledger.NewSpendAggregator(repo, cfg.Clock),
	}
}

// CreateAccount registers a new payer or admin account. Zero limits are
// kept as given: they mean unlimited.
func (as *AccountService) CreateAccount(name, role string, dailyLimit, monthlyLimit decimal.Decimal) (*model.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("account name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return nil, fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	if role != model.RoleEmployee && role != model.RoleAdmin {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	if dailyLimit.IsNegative() || monthlyLimit.IsNegative() {
		return nil, fmt.Errorf("limits can't be negative")
	}

	acc := &model.Account{
		Name:         name,
		Role:         role,
		Balance:      decimal.Zero,
		DailyLimit:   dailyLimit,
		MonthlyLimit: monthlyLimit,
		IsActive:     true,
	}

	if _, err := as.repo.CreateAccount(acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return acc, nil
}

func (as *AccountService) GetAccountByID(id int64) (*model.Account, error) {
	return as.repo.GetAccountByID(id)
}

func (as *AccountService) GetAccountByName(name string) (*model.Account, error) {
	return as.repo.GetAccountByName(name)
}

func (as *AccountService) ListAccounts() ([]*model.Account, error) {
	return as.repo.ListAccounts()
}

// UpdateLimits changes the spending limits; nil leaves a limit as is.
func (as *AccountService) UpdateLimits(accountID int64, dailyLimit, monthlyLimit *decimal.Decimal) (*model.Account, error) {
	acc, err := as.repo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	if dailyLimit != nil {
		if dailyLimit.IsNegative() {
			return nil, fmt.Errorf("daily limit can't be negative")
		}
		acc.DailyLimit = *dailyLimit
	}
	if monthlyLimit != nil {
		if monthlyLimit.IsNegative() {
			return nil, fmt.Errorf("monthly limit can't be negative")
		}
		acc.MonthlyLimit = *monthlyLimit
	}

	if err := as.repo.UpdateAccount(acc); err != nil {
		return nil, fmt.Errorf("failed to update account limits: %w", err)
	}
	return acc, nil
}

func (as *AccountService) SetActive(accountID int64, active bool) (*model.Account, error) {
	acc, err := as.repo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	acc.IsActive = active
	if err := as.repo.UpdateAccount(acc); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return acc, nil
}

// SpendingSummary gathers an account's balance, limits, committed spend
// for the current windows, and remaining headroom.
func (as *AccountService) SpendingSummary(accountID int64) (*model.SpendingSummary, error) {
	acc, err := as.repo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	todaySpent, err := as.spend.TodaySpent(accountID)
	if err != nil {
		return nil, err
	}
	monthSpent, err := as.spend.MonthSpent(accountID)
	if err != nil {
		return nil, err
	}

	return &model.SpendingSummary{
		AccountID:        acc.ID,
		Name:             acc.Name,
		Balance:          acc.Balance,
		DailyLimit:       acc.DailyLimit,
		MonthlyLimit:     acc.MonthlyLimit,
		TodaySpent:       todaySpent,
		MonthSpent:       monthSpent,
		DailyRemaining:   acc.DailyLimit.Sub(todaySpent),
		MonthlyRemaining: acc.MonthlyLimit.Sub(monthSpent),
	}, nil
}

func (as *AccountService) Transactions(accountID int64, limit, offset int) ([]*model.Transaction, error) {
	return as.repo.TransactionsByAccount(accountID, limit, offset)
}

func (as *AccountService) Notifications(accountID int64, unreadOnly bool) ([]*model.Notification, error) {
	return as.repo.NotificationsByRecipient(accountID, unreadOnly)
}

func (as *AccountService) MarkNotificationsRead(ids []int64) error {
	return as.repo.MarkNotificationsRead(ids)
}
