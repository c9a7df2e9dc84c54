package cmd

import (
	"context"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/app"
)

// NewCancelCmd builds the cancellation command for pending transactions.
func NewCancelCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <transaction-id>",
		Short: "Cancel a pending transaction",
		Long:  `Cancel a transaction that is still pending. Completed, failed and cancelled transactions can't be cancelled.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			result := application.Engine.CancelTransaction(context.Background(), transactionID)
			if !result.Success {
				pterm.Error.Println(result.Message)
				return nil
			}

			pterm.Success.Printf("Transaction #%d cancelled\n", result.TransactionID)
			return nil
		},
	}
}
