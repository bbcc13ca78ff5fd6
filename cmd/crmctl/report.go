package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"crm_reports/internal/adapter/export"
	"crm_reports/internal/adapter/http/dto/request"
	"crm_reports/internal/adapter/http/dto/response"
	"crm_reports/internal/usecase"

	"github.com/spf13/cobra"
)

type reportFlags struct {
	query request.ReportQuery
	out   string
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render quote and contract reports",
	}
	cmd.AddCommand(quoteReportCmd())
	cmd.AddCommand(contractReportCmd())
	return cmd
}

func addCommonReportFlags(cmd *cobra.Command, f *reportFlags) {
	cmd.Flags().StringVar(&f.query.Start, "from", "", "first day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.query.End, "to", "", "last day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.query.Format, "format", request.FormatJSON, "output format (json, xlsx, pdf)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file (default: stdout)")
}

func quoteReportCmd() *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Quote report with totals and conversion rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := f.query.QuoteFilters()
			if err != nil {
				return err
			}
			format, err := f.query.ResolveFormat()
			if err != nil {
				return err
			}

			repos, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(repos)

			report := usecase.NewReportUseCase(repos.Quotes, repos.RecurringServices).QuoteReport(cmd.Context(), filters)
			return writeReport(cmd, f.out, format, response.FromQuoteReport(report), export.QuoteTable(report))
		},
	}
	addCommonReportFlags(cmd, f)
	cmd.Flags().StringVar(&f.query.Status, "status", "", "quote status filter")
	cmd.Flags().StringVar(&f.query.Owner, "owner", "", "owner id filter")
	return cmd
}

func contractReportCmd() *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Recurring contract report with MRR totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := f.query.ContractFilters()
			if err != nil {
				return err
			}
			format, err := f.query.ResolveFormat()
			if err != nil {
				return err
			}

			repos, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(repos)

			report := usecase.NewReportUseCase(repos.Quotes, repos.RecurringServices).ContractReport(cmd.Context(), filters)
			return writeReport(cmd, f.out, format, response.FromContractReport(report), export.ContractTable(report))
		},
	}
	addCommonReportFlags(cmd, f)
	cmd.Flags().StringVar(&f.query.Status, "status", "", "contract status filter (all, active, inactive)")
	cmd.Flags().StringVar(&f.query.Contact, "contact", "", "contact id filter")
	cmd.Flags().StringVar(&f.query.EndStart, "end-from", "", "first contract end day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.query.EndEnd, "end-to", "", "last contract end day (YYYY-MM-DD)")
	return cmd
}

func writeReport(cmd *cobra.Command, path, format string, payload any, table export.Table) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case request.FormatXLSX:
		data, err = export.GenerateExcel(table)
	case request.FormatPDF:
		data, err = export.GeneratePDF(table)
	default:
		data, err = json.MarshalIndent(payload, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to render %s report: %w", format, err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer file.Close()
		w = file
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
