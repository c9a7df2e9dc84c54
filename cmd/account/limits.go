package account

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/service"
	"github.com/otabek-dev/corpex/internal/utils"
)

func newLimitsCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	var (
		dailyLimit   string
		monthlyLimit string
	)

	limitsCmd := &cobra.Command{
		Use:   "limits <account-id>",
		Short: "Update an account's spending limits",
		Long:  `Update the daily and monthly spending limits. Omitted limits are left unchanged; 0 means unlimited.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			if dailyLimit == "" && monthlyLimit == "" {
				return fmt.Errorf("nothing to update, pass --daily-limit or --monthly-limit")
			}

			var daily, monthly *decimal.Decimal
			if dailyLimit != "" {
				d, err := utils.ParseAmount(dailyLimit)
				if err != nil {
					return fmt.Errorf("invalid daily limit: %w", err)
				}
				daily = &d
			}
			if monthlyLimit != "" {
				m, err := utils.ParseAmount(monthlyLimit)
				if err != nil {
					return fmt.Errorf("invalid monthly limit: %w", err)
				}
				monthly = &m
			}

			acc, err := svc.Account.UpdateLimits(id, daily, monthly)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Limits updated for account %q: daily %s, monthly %s\n",
				acc.Name,
				utils.FormatAmount(acc.DailyLimit, cfg.Defaults.Currency),
				utils.FormatAmount(acc.MonthlyLimit, cfg.Defaults.Currency),
			)
			return nil
		},
	}

	limitsCmd.Flags().StringVar(&dailyLimit, "daily-limit", "", "new daily spending limit, 0 for unlimited")
	limitsCmd.Flags().StringVar(&monthlyLimit, "monthly-limit", "", "new monthly spending limit, 0 for unlimited")

	return limitsCmd
}

func newActivateCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <account-id>",
		Short: "Activate an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setActive(svc, args[0], true)
		},
	}
}

func newDeactivateCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <account-id>",
		Short: "Deactivate an account",
		Long:  `Deactivate an account. Inactive accounts can't pay, but their history stays intact.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setActive(svc, args[0], false)
		},
	}
}

func setActive(svc *service.Service, rawID string, active bool) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return err
	}

	acc, err := svc.Account.SetActive(id, active)
	if err != nil {
		return err
	}

	state := "activated"
	if !active {
		state = "deactivated"
	}
	pterm.Success.Printf("Account %q %s\n", acc.Name, state)
	return nil
}
