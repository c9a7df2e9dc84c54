package account

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/service"
	"github.com/otabek-dev/corpex/internal/ui/views"
)

func newShowCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show an account's spending summary",
		Long:  `Show the account balance, limits, spend for the current day and month, and the remaining headroom.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			summary, err := svc.Account.SpendingSummary(id)
			if err != nil {
				return err
			}

			views.RenderSpendingSummary(summary, cfg.Defaults.Currency)
			return nil
		},
	}
}
