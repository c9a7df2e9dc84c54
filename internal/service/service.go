package service

import (
	"time"

	"github.com/otabek-dev/corpex/internal/store"
)

type Config struct {
	Clock func() time.Time
}

// Service bundles the directory-side operations: managing accounts and
// establishments. Money movements go through the ledger engine, not
// through these services.
type Service struct {
	Account       *AccountService
	Establishment *EstablishmentService
}

func NewService(repo store.Repository, cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Service{
		Account:       NewAccountService(repo, cfg),
		Establishment: NewEstablishmentService(repo, cfg),
	}
}
