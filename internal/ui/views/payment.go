package views

import (
	"github.com/pterm/pterm"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/utils"
)

// RenderPaymentResult prints the outcome of a ledger operation.
func RenderPaymentResult(result model.PaymentResult, currency string) {
	if !result.Success {
		pterm.Error.Println(result.Message)
		return
	}

	pterm.Success.Println("Transaction completed")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Transaction ID", pterm.Sprintf("%d", result.TransactionID)},
		{"Reference", result.Reference},
		{"Balance after", utils.FormatAmount(result.BalanceAfter, currency)},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
