package account

import (
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/service"
)

// NewAccountCmd groups the account directory operations.
func NewAccountCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage payer accounts",
		Long:  `Create, list and inspect accounts, update their spending limits, and activate or deactivate them.`,
	}

	accountCmd.AddCommand(newCreateCmd(svc, cfg))
	accountCmd.AddCommand(newListCmd(svc, cfg))
	accountCmd.AddCommand(newShowCmd(svc, cfg))
	accountCmd.AddCommand(newLimitsCmd(svc, cfg))
	accountCmd.AddCommand(newActivateCmd(svc))
	accountCmd.AddCommand(newDeactivateCmd(svc))

	return accountCmd
}
