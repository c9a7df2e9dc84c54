package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/app"
	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/errhandler"
	"github.com/otabek-dev/corpex/internal/ledger"
	"github.com/otabek-dev/corpex/internal/ui/prompts"
	"github.com/otabek-dev/corpex/internal/ui/views"
	"github.com/otabek-dev/corpex/internal/utils"
)

// NewPayCmd builds the payment command. With flags it runs
// non-interactively; without them it prompts for the payee and amount.
func NewPayCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var (
		accountID       int64
		establishmentID int64
		amountRaw       string
		description     string
		reference       string
	)

	payCmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay an establishment from an account",
		Long:  `Validate a payment against the account's balance, limits and the establishment's per-order cap, then debit the balance and record the transaction atomically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if accountID <= 0 {
				return fmt.Errorf("an account is required, pass --account")
			}

			if establishmentID <= 0 {
				establishments, err := application.Service.Establishment.ListEstablishments()
				if err != nil {
					return err
				}

				est, err := prompts.PromptEstablishment(establishments)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}
				establishmentID = est.ID
			}

			if amountRaw == "" {
				var err error
				amountRaw, err = prompts.PromptPaymentAmount()
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}

				description, err = prompts.PromptDescription("Description", false)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}
			}

			amount, err := utils.ParseAmount(amountRaw)
			if err != nil {
				return err
			}

			result := application.Engine.ProcessPayment(context.Background(), ledger.PaymentRequest{
				AccountID:       accountID,
				EstablishmentID: establishmentID,
				Amount:          amount,
				Description:     description,
				Reference:       reference,
			})

			views.RenderPaymentResult(result, cfg.Defaults.Currency)
			return nil
		},
	}

	payCmd.Flags().Int64VarP(&accountID, "account", "a", 0, "paying account ID")
	payCmd.Flags().Int64VarP(&establishmentID, "establishment", "e", 0, "payee establishment ID")
	payCmd.Flags().StringVarP(&amountRaw, "amount", "m", "", "payment amount")
	payCmd.Flags().StringVarP(&description, "description", "d", "", "payment description")
	payCmd.Flags().StringVar(&reference, "reference", "", "idempotency reference, generated when empty")

	return payCmd
}
