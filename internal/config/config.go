package config

import (
	"time"

	"github.com/otabek-dev/corpex/internal/constants"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency     string `mapstructure:"currency"`
	DailyLimit   string `mapstructure:"daily_limit"`
	MonthlyLimit string `mapstructure:"monthly_limit"`
}

type LedgerConfig struct {
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{
			Currency:     "USD",
			DailyLimit:   constants.DefaultDailyLimit,
			MonthlyLimit: constants.DefaultMonthlyLimit,
		},
		Ledger: LedgerConfig{LockTimeout: constants.DefaultLockTimeout},
	}
}
