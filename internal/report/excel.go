package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/otabek-dev/corpex/internal/model"
)

// WriteSummaryXLSX renders a revenue summary to an XLSX workbook at path.
func WriteSummaryXLSX(summary *model.RevenueSummary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Revenue Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	rows := [][2]string{
		{"Establishment", summary.Name},
		{"Establishment ID", strconv.FormatInt(summary.EstablishmentID, 10)},
		{"Total revenue", summary.TotalRevenue.String()},
		{"Today's revenue", summary.TodayRevenue.String()},
		{"Total orders", strconv.FormatInt(summary.TotalOrders, 10)},
		{"Average order value", summary.AverageOrderValue.String()},
	}

	for i, row := range rows {
		cellA, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		cellB, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cellA, row[0]); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cellA, err)
		}
		if err := f.SetCellValue(sheet, cellB, row[1]); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cellB, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write revenue summary XLSX: %w", err)
	}
	return nil
}
