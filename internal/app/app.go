package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/ledger"
	"github.com/otabek-dev/corpex/internal/report"
	"github.com/otabek-dev/corpex/internal/service"
	"github.com/otabek-dev/corpex/internal/store"
)

type App struct {
	Service *service.Service
	Engine  *ledger.Engine
	Report  *report.Service
	Store   store.Repository
}

// NewApp initializes config, database and core logic, then returns the App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "corpex.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, service.Config{})

	engine := ledger.NewEngine(dbStore, ledger.Config{
		Notifier:    ledger.NewStoreNotifier(dbStore),
		LockTimeout: cfg.Ledger.LockTimeout,
	})

	reports := report.NewService(dbStore, nil)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Engine:  engine,
		Report:  reports,
		Store:   dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".corpex"), nil
	}

	return filepath.Join(configDir, "corpex"), nil
}
