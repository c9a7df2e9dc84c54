package report

import (
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/otabek-dev/corpex/internal/model"
)

// WriteSummaryPDF renders a revenue summary to an A4 PDF at path.
func WriteSummaryPDF(summary *model.RevenueSummary, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Revenue Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Establishment: %s (#%d)", summary.Name, summary.EstablishmentID))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)

	rows := [][2]string{
		{"Total revenue", summary.TotalRevenue.String()},
		{"Today's revenue", summary.TodayRevenue.String()},
		{"Total orders", strconv.FormatInt(summary.TotalOrders, 10)},
		{"Average order value", summary.AverageOrderValue.String()},
	}

	colW := []float64{90, 92}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colW[0], 10, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[1], 10, "Value", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(colW[0], 9, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 9, row[1], "1", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write revenue summary PDF: %w", err)
	}
	return nil
}
