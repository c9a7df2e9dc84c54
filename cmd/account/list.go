package account

import (
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/service"
	"github.com/otabek-dev/corpex/internal/ui/views"
)

func newListCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.ListAccounts()
			if err != nil {
				return err
			}

			views.RenderAccountList(accounts, cfg.Defaults.Currency)
			return nil
		},
	}
}
