/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package establishment

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/errhandler"
	"github.com/otabek-dev/corpex/internal/service"
	"github.com/otabek-dev/corpex/internal/ui/prompts"
	"github.com/otabek-dev/corpex/internal/utils"
	"github.com/otabek-dev/corpex/internal/validation"
)

func newCreateCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	var (
		name           string
		code           string
		description    string
		address        string
		ownerID        int64
		maxOrderAmount string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new establishment",
		Long:  `Register a payee merchant. An empty code gets a generated one; a zero per-order cap means no cap.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				var err error
				name, err = prompts.PromptInput("Establishment name", "", validation.ValidateAccountName)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}

				maxOrderAmount, err = prompts.PromptAmount("Max order amount", "0 means no cap", validation.ValidateNonNegativeAmount)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}
			}

			if maxOrderAmount == "" {
				maxOrderAmount = "0"
			}

			orderCap, err := utils.ParseAmount(maxOrderAmount)
			if err != nil {
				return fmt.Errorf("invalid max order amount: %w", err)
			}

			var owner *int64
			if ownerID > 0 {
				owner = &ownerID
			}

			est, err := svc.Establishment.CreateEstablishment(name, code, description, address, owner, orderCap)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Establishment %q created with ID %d (code %s)\n", est.Name, est.ID, est.Code)
			return nil
		},
	}

	createCmd.Flags().StringVarP(&name, "name", "n", "", "establishment name")
	createCmd.Flags().StringVar(&code, "code", "", "unique establishment code, generated when empty")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "description")
	createCmd.Flags().StringVar(&address, "address", "", "address")
	createCmd.Flags().Int64Var(&ownerID, "owner", 0, "account ID of the owner who receives payment notifications")
	createCmd.Flags().StringVar(&maxOrderAmount, "max-order", "", "per-order amount cap, 0 for no cap")

	return createCmd
}
