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

// NewAdjustCmd builds the balance adjustment command. The amount is
// signed: a negative value debits the account, and a debit that would
// overdraw the balance is rejected.
func NewAdjustCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var (
		adminID int64
		reason  string
	)

	adjustCmd := &cobra.Command{
		Use:   "adjust <account-id> <amount>",
		Short: "Apply a signed balance correction",
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
			if reason == "" {
				return fmt.Errorf("a reason is required, pass --reason")
			}

			result := application.Engine.AdjustBalance(context.Background(), accountID, amount, adminID, reason)

			views.RenderPaymentResult(result, cfg.Defaults.Currency)
			return nil
		},
	}

	adjustCmd.Flags().Int64Var(&adminID, "admin", 0, "admin account ID performing the adjustment")
	adjustCmd.Flags().StringVarP(&reason, "reason", "r", "", "adjustment reason")

	return adjustCmd
}
