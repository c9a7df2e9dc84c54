package views

import (
	"github.com/pterm/pterm"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/utils"
)

// RenderCompanySummary prints company-wide completed payment spend.
func RenderCompanySummary(summary *model.CompanySummary, currency string) {
	pterm.DefaultSection.Println("Company Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Total spending", utils.FormatAmount(summary.TotalSpending, currency)},
		{"Today's spending", utils.FormatAmount(summary.TodaySpending, currency)},
		{"Month spending", utils.FormatAmount(summary.MonthSpending, currency)},
		{"Active accounts", pterm.Sprintf("%d", summary.ActiveAccounts)},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderRevenueSummary prints one establishment's revenue view.
func RenderRevenueSummary(summary *model.RevenueSummary, currency string) {
	pterm.DefaultSection.Printf("Revenue Summary: %s\n", summary.Name)

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Total revenue", utils.FormatAmount(summary.TotalRevenue, currency)},
		{"Today's revenue", utils.FormatAmount(summary.TodayRevenue, currency)},
		{"Total orders", pterm.Sprintf("%d", summary.TotalOrders)},
		{"Average order value", utils.FormatAmount(summary.AverageOrderValue, currency)},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderEstablishmentBreakdown prints revenue per establishment,
// highest first.
func RenderEstablishmentBreakdown(summaries []*model.RevenueSummary, currency string) {
	if len(summaries) == 0 {
		pterm.Info.Println("No establishments found")
		return
	}

	tableData := pterm.TableData{
		{"ID", "Name", "Total Revenue", "Today", "Orders"},
	}

	for _, s := range summaries {
		tableData = append(tableData, []string{
			pterm.Sprintf("%d", s.EstablishmentID),
			s.Name,
			utils.FormatAmount(s.TotalRevenue, currency),
			utils.FormatAmount(s.TodayRevenue, currency),
			pterm.Sprintf("%d", s.TotalOrders),
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
