package establishment

import (
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/service"
)

// NewEstablishmentCmd groups the establishment directory operations.
func NewEstablishmentCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	establishmentCmd := &cobra.Command{
		Use:     "establishment",
		Aliases: []string{"est"},
		Short:   "Manage payee establishments",
		Long:    `Register the merchants accounts can pay, list them, and manage their per-order caps and active state.`,
	}

	establishmentCmd.AddCommand(newCreateCmd(svc, cfg))
	establishmentCmd.AddCommand(newListCmd(svc, cfg))
	establishmentCmd.AddCommand(newCapCmd(svc, cfg))
	establishmentCmd.AddCommand(newActivateCmd(svc))
	establishmentCmd.AddCommand(newDeactivateCmd(svc))

	return establishmentCmd
}
