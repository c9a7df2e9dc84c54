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

// NewWithdrawCmd builds the withdrawal command. Withdrawals debit the
// account with only the balance check applied, no window limits or
// per-order caps.
func NewWithdrawCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var establishmentID int64

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw funds from an account",
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
			if establishmentID <= 0 {
				return fmt.Errorf("an establishment is required, pass --establishment")
			}

			result := application.Engine.Withdraw(context.Background(), accountID, establishmentID, amount)

			views.RenderPaymentResult(result, cfg.Defaults.Currency)
			return nil
		},
	}

	withdrawCmd.Flags().Int64VarP(&establishmentID, "establishment", "e", 0, "establishment receiving the withdrawal")

	return withdrawCmd
}
