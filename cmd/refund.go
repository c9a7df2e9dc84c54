package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/app"
	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/ui/views"
)

// NewRefundCmd builds the refund command. Refunds credit back a
// completed payment in full and require an admin account.
func NewRefundCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var (
		adminID int64
		reason  string
	)

	refundCmd := &cobra.Command{
		Use:   "refund <transaction-id>",
		Short: "Refund a completed payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if adminID <= 0 {
				return fmt.Errorf("an admin account is required, pass --admin")
			}

			result := application.Engine.ProcessRefund(context.Background(), transactionID, adminID, reason)

			views.RenderPaymentResult(result, cfg.Defaults.Currency)
			return nil
		},
	}

	refundCmd.Flags().Int64Var(&adminID, "admin", 0, "admin account ID issuing the refund")
	refundCmd.Flags().StringVarP(&reason, "reason", "r", "", "refund reason")

	return refundCmd
}
