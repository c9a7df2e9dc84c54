package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/otabek-dev/corpex/internal/ledger"
	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

// Service produces read-only spending and revenue summaries from the
// ledger. It never writes to the store.
type Service struct {
	repo store.Repository
	now  func() time.Time
}

func NewService(repo store.Repository, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, now: clock}
}

// CompanySummary aggregates completed payment spend across the whole
// company: all time, today, this month, plus the active payer count.
func (s *Service) CompanySummary() (*model.CompanySummary, error) {
	total, err := s.repo.SumAllCompletedPayments(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum total spending: %w", err)
	}

	dayStart, dayEnd := ledger.DayWindow(s.now())
	today, err := s.repo.SumAllCompletedPayments(&dayStart, &dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's spending: %w", err)
	}

	monthStart, monthEnd := ledger.MonthWindow(s.now())
	month, err := s.repo.SumAllCompletedPayments(&monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum month spending: %w", err)
	}

	activeAccounts, err := s.repo.CountActiveAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count active accounts: %w", err)
	}

	return &model.CompanySummary{
		TotalSpending:  total,
		TodaySpending:  today,
		MonthSpending:  month,
		ActiveAccounts: activeAccounts,
	}, nil
}

// EstablishmentSummary builds the revenue view for one establishment.
func (s *Service) EstablishmentSummary(establishmentID int64) (*model.RevenueSummary, error) {
	dayStart, dayEnd := ledger.DayWindow(s.now())
	return s.repo.EstablishmentRevenue(establishmentID, dayStart, dayEnd)
}

// EstablishmentBreakdown returns revenue summaries for every
// establishment, highest total revenue first.
func (s *Service) EstablishmentBreakdown() ([]*model.RevenueSummary, error) {
	establishments, err := s.repo.ListEstablishments()
	if err != nil {
		return nil, fmt.Errorf("failed to list establishments: %w", err)
	}

	dayStart, dayEnd := ledger.DayWindow(s.now())

	summaries := make([]*model.RevenueSummary, 0, len(establishments))
	for _, est := range establishments {
		summary, err := s.repo.EstablishmentRevenue(est.ID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalRevenue.GreaterThan(summaries[j].TotalRevenue)
	})

	return summaries, nil
}
