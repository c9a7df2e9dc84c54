package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/app"
	"github.com/otabek-dev/corpex/internal/config"
	"github.com/otabek-dev/corpex/internal/constants"
	"github.com/otabek-dev/corpex/internal/report"
	"github.com/otabek-dev/corpex/internal/ui/views"
)

// NewReportCmd builds the reporting command: company-wide summary,
// single-establishment revenue, and the full revenue breakdown.
// Establishment revenue can be exported to PDF or XLSX.
func NewReportCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var (
		establishmentID int64
		breakdown       bool
		pdfDir          string
		xlsxDir         string
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending and revenue reports",
		Long:  `Show the company-wide spending summary, one establishment's revenue with --establishment, or the per-establishment breakdown with --breakdown. With --establishment, --pdf and --xlsx export the revenue summary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case breakdown:
				summaries, err := application.Report.EstablishmentBreakdown()
				if err != nil {
					return err
				}
				views.RenderEstablishmentBreakdown(summaries, cfg.Defaults.Currency)
				return nil

			case establishmentID > 0:
				summary, err := application.Report.EstablishmentSummary(establishmentID)
				if err != nil {
					return err
				}
				views.RenderRevenueSummary(summary, cfg.Defaults.Currency)

				stamp := time.Now().Format(constants.ReportFileTimeFormat)

				if pdfDir != "" {
					path := filepath.Join(pdfDir, fmt.Sprintf("revenue-summary-%s.pdf", stamp))
					if err := report.WriteSummaryPDF(summary, path); err != nil {
						return fmt.Errorf("failed to export PDF: %w", err)
					}
					pterm.Success.Printf("PDF report written to %s\n", path)
				}

				if xlsxDir != "" {
					path := filepath.Join(xlsxDir, fmt.Sprintf("revenue-summary-%s.xlsx", stamp))
					if err := report.WriteSummaryXLSX(summary, path); err != nil {
						return fmt.Errorf("failed to export XLSX: %w", err)
					}
					pterm.Success.Printf("XLSX report written to %s\n", path)
				}

				return nil

			default:
				if pdfDir != "" || xlsxDir != "" {
					return fmt.Errorf("exports require --establishment")
				}

				summary, err := application.Report.CompanySummary()
				if err != nil {
					return err
				}
				views.RenderCompanySummary(summary, cfg.Defaults.Currency)
				return nil
			}
		},
	}

	reportCmd.Flags().Int64VarP(&establishmentID, "establishment", "e", 0, "show revenue for one establishment")
	reportCmd.Flags().BoolVarP(&breakdown, "breakdown", "b", false, "show revenue per establishment")
	reportCmd.Flags().StringVar(&pdfDir, "pdf", "", "directory to write a PDF revenue summary into")
	reportCmd.Flags().StringVar(&xlsxDir, "xlsx", "", "directory to write an XLSX revenue summary into")

	return reportCmd
}
