package establishment

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/service"
	"github.com/otabek-dev/corpex/internal/utils"
)

func newListCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all establishments",
		RunE: func(cmd *cobra.Command, args []string) error {
			establishments, err := svc.Establishment.ListEstablishments()
			if err != nil {
				return err
			}

			if len(establishments) == 0 {
				pterm.Info.Println("No establishments found")
				return nil
			}

			tableData := pterm.TableData{
				{"ID", "Name", "Code", "Max Order", "Active"},
			}

			for _, est := range establishments {
				maxOrder := "no cap"
				if !model.IsUnlimited(est.MaxOrderAmount) {
					maxOrder = utils.FormatAmount(est.MaxOrderAmount, cfg.Defaults.Currency)
				}
				active := "yes"
				if !est.IsActive {
					active = "no"
				}
				tableData = append(tableData, []string{
					pterm.Sprintf("%d", est.ID),
					est.Name,
					est.Code,
					maxOrder,
					active,
				})
			}

			pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
			return nil
		},
	}
}

func newCapCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "cap <establishment-id> <amount>",
		Short: "Set an establishment's per-order cap",
		Long:  `Set the maximum amount a single payment to this establishment may carry. 0 removes the cap.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			amount, err := utils.ParseAmount(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			est, err := svc.Establishment.SetMaxOrderAmount(id, amount)
			if err != nil {
				return err
			}

			if model.IsUnlimited(est.MaxOrderAmount) {
				pterm.Success.Printf("Per-order cap removed for %q\n", est.Name)
			} else {
				pterm.Success.Printf("Per-order cap for %q set to %s\n", est.Name, utils.FormatAmount(est.MaxOrderAmount, cfg.Defaults.Currency))
			}
			return nil
		},
	}
}

func newActivateCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <establishment-id>",
		Short: "Activate an establishment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setActive(svc, args[0], true)
		},
	}
}

func newDeactivateCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <establishment-id>",
		Short: "Deactivate an establishment",
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

	est, err := svc.Establishment.SetActive(id, active)
	if err != nil {
		return err
	}

	state := "activated"
	if !active {
		state = "deactivated"
	}
	pterm.Success.Printf("Establishment %q %s\n", est.Name, state)
	return nil
}
