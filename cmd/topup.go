package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/app"
	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/ui/views"
	"github.com/otabek-dev/corpex/internal/utils"
)

// NewTopUpCmd builds the top-up command for crediting account balances.
func NewTopUpCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var (
		adminID     int64
		description string
	)

	topupCmd := &cobra.Command{
		Use:   "topup <account-id> <amount>",
		Short: "Top up an account balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			amount, err := utils.ParseAmount(args[1])
			if err != nil {
				return err
			}
			if adminID <= 0 {
				return fmt.Errorf("an admin account is required, pass --admin")
			}

			result := application.Engine.TopUpBalance(context.Background(), accountID, amount, adminID, description)

			views.RenderPaymentResult(result, cfg.Defaults.Currency)
			return nil
		},
	}

	topupCmd.Flags().Int64Var(&adminID, "admin", 0, "admin account ID performing the top-up")
	topupCmd.Flags().StringVarP(&description, "description", "d", "", "top-up description")

	return topupCmd
}
