package views

import (
	"github.com/pterm/pterm"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/utils"
)

func limitLabel(limit string, unlimited bool) string {
	if unlimited {
		return "unlimited"
	}
	return limit
}

// RenderSpendingSummary prints one account's position against its limits.
func RenderSpendingSummary(summary *model.SpendingSummary, currency string) {
	pterm.DefaultSection.Println("Spending Summary")

	daily := limitLabel(utils.FormatAmount(summary.DailyLimit, currency), model.IsUnlimited(summary.DailyLimit))
	monthly := limitLabel(utils.FormatAmount(summary.MonthlyLimit, currency), model.IsUnlimited(summary.MonthlyLimit))

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Account", summary.Name},
		{"Balance", utils.FormatAmount(summary.Balance, currency)},
		{"Daily limit", daily},
		{"Spent today", utils.FormatAmount(summary.TodaySpent, currency)},
		{"Monthly limit", monthly},
		{"Spent this month", utils.FormatAmount(summary.MonthSpent, currency)},
	}

	if !model.IsUnlimited(summary.DailyLimit) {
		tableData = append(tableData, []string{"Daily remaining", utils.FormatAmount(summary.DailyRemaining, currency)})
	}
	if !model.IsUnlimited(summary.MonthlyLimit) {
		tableData = append(tableData, []string{"Monthly remaining", utils.FormatAmount(summary.MonthlyRemaining, currency)})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderAccountList prints all accounts as a table.
func RenderAccountList(accounts []*model.Account, currency string) {
	if len(accounts) == 0 {
		pterm.Info.Println("No accounts found")
		return
	}

	tableData := pterm.TableData{
		{"ID", "Name", "Role", "Balance", "Active"},
	}

	for _, acc := range accounts {
		active := "yes"
		if !acc.IsActive {
			active = "no"
		}
		tableData = append(tableData, []string{
			pterm.Sprintf("%d", acc.ID),
			acc.Name,
			acc.Role,
			utils.FormatAmount(acc.Balance, currency),
			active,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
