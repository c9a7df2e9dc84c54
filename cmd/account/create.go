/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/errhandler"
	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/service"
	"github.com/otabek-dev/corpex/internal/ui/prompts"
	"github.com/otabek-dev/corpex/internal/utils"
	"github.com/otabek-dev/corpex/internal/validation"
)

func newCreateCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	var (
		name         string
		role         string
		dailyLimit   string
		monthlyLimit string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long:  `Create a payer account with a role and spending limits. A zero limit means unlimited.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				var err error
				name, err = prompts.PromptInput("Account name", "", validation.ValidateAccountName)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}

				role, err = prompts.PromptSelect("Role", []string{model.RoleEmployee, model.RoleAdmin}, model.RoleEmployee)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}

				dailyLimit, err = prompts.PromptAmount("Daily limit", "0 means unlimited", validation.ValidateNonNegativeAmount)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}

				monthlyLimit, err = prompts.PromptAmount("Monthly limit", "0 means unlimited", validation.ValidateNonNegativeAmount)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}
			}

			if dailyLimit == "" {
				dailyLimit = cfg.Defaults.DailyLimit
			}
			if monthlyLimit == "" {
				monthlyLimit = cfg.Defaults.MonthlyLimit
			}

			daily, err := utils.ParseAmount(dailyLimit)
			if err != nil {
				return fmt.Errorf("invalid daily limit: %w", err)
			}
			monthly, err := utils.ParseAmount(monthlyLimit)
			if err != nil {
				return fmt.Errorf("invalid monthly limit: %w", err)
			}

			acc, err := svc.Account.CreateAccount(name, role, daily, monthly)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Account %q created with ID %d\n", acc.Name, acc.ID)
			return nil
		},
	}

	createCmd.Flags().StringVarP(&name, "name", "n", "", "account name")
	createCmd.Flags().StringVarP(&role, "role", "r", model.RoleEmployee, "account role (employee or admin)")
	createCmd.Flags().StringVar(&dailyLimit, "daily-limit", "", "daily spending limit, 0 for unlimited")
	createCmd.Flags().StringVar(&monthlyLimit, "monthly-limit", "", "monthly spending limit, 0 for unlimited")

	return createCmd
}
