package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/app"
	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/constants"
	"github.com/otabek-dev/corpex/internal/ui/views"
)

// NewHistoryCmd builds the transaction history command for either an
// account or an establishment.
func NewHistoryCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var (
		accountID       int64
		establishmentID int64
		fromRaw         string
		toRaw           string
		limit           int
		offset          int
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show transaction history",
		Long:  `Show transactions for an account or an establishment, newest first. Establishment history accepts a date range.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case accountID > 0 && establishmentID > 0:
				return fmt.Errorf("pass either --account or --establishment, not both")

			case accountID > 0:
				transactions, err := application.Service.Account.Transactions(accountID, limit, offset)
				if err != nil {
					return err
				}
				views.RenderTransactionList(transactions, cfg.Defaults.Currency)
				return nil

			case establishmentID > 0:
				from, err := parseDateFlag(fromRaw, false)
				if err != nil {
					return err
				}
				to, err := parseDateFlag(toRaw, true)
				if err != nil {
					return err
				}

				transactions, err := application.Service.Establishment.Transactions(establishmentID, from, to, limit, offset)
				if err != nil {
					return err
				}
				views.RenderTransactionList(transactions, cfg.Defaults.Currency)
				return nil

			default:
				return fmt.Errorf("pass --account or --establishment")
			}
		},
	}

	historyCmd.Flags().Int64VarP(&accountID, "account", "a", 0, "account ID")
	historyCmd.Flags().Int64VarP(&establishmentID, "establishment", "e", 0, "establishment ID")
	historyCmd.Flags().StringVar(&fromRaw, "from", "", "start date (YYYY-MM-DD), establishment history only")
	historyCmd.Flags().StringVar(&toRaw, "to", "", "end date (YYYY-MM-DD) inclusive, establishment history only")
	historyCmd.Flags().IntVarP(&limit, "limit", "l", 20, "max transactions to show")
	historyCmd.Flags().IntVar(&offset, "offset", 0, "transactions to skip")

	return historyCmd
}

// parseDateFlag reads a YYYY-MM-DD date in UTC. An end date covers the
// whole day, so it parses to the last second of that day.
func parseDateFlag(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(constants.DateFormat, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}

	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	return &t, nil
}
