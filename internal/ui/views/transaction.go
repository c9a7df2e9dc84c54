package views

import (
	"github.com/pterm/pterm"

	"github.com/otabek-dev/corpex/internal/constants"
	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/utils"
)

// RenderTransactionList prints transactions newest first.
func RenderTransactionList(transactions []*model.Transaction, currency string) {
	if len(transactions) == 0 {
		pterm.Info.Println("No transactions found")
		return
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Kind", "Status", "Amount", "Description"},
	}

	for _, trx := range transactions {
		tableData = append(tableData, []string{
			pterm.Sprintf("%d", trx.ID),
			trx.CreatedAt.Format(constants.DateFormat),
			string(trx.Kind),
			string(trx.Status),
			utils.FormatAmount(trx.Amount, currency),
			trx.Description,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderNotifications prints notifications for an establishment owner.
func RenderNotifications(notifications []*model.Notification) {
	if len(notifications) == 0 {
		pterm.Info.Println("No notifications")
		return
	}

	for _, n := range notifications {
		marker := pterm.Info
		if !n.IsRead {
			marker = pterm.Warning
		}
		marker.Printf("#%d %s\n", n.ID, n.Title)
		pterm.Println(n.Message)
		pterm.Println()
	}
}
