package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/exporting"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reporting"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/submitting"
	"github.com/vfg2006/radiology-workload-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// cliServices são os casos de uso usados pelos comandos
type cliServices struct {
	Reporter  reporting.Reporter
	Submitter submitting.Submitter
	Exporter  exporting.Exporter
}

func newRootCmd(ctx context.Context, services *cliServices) *cobra.Command {
	root := &cobra.Command{
		Use:           "workloadctl",
		Short:         "Relatórios e lançamentos do livro de produção do setor de imagem",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(reportCmd(ctx, services))
	root.AddCommand(ledgerCmd(ctx, services))
	root.AddCommand(submitCmd(ctx, services))
	root.AddCommand(exportCmd(ctx, services))

	return root
}

func parseReference(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	return utils.ParseDate(value)
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func reportCmd(ctx context.Context, services *cliServices) *cobra.Command {
	var (
		kind   string
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório de um período (week, current_week, month, year)",
		Example: `  workloadctl report --kind week
  workloadctl report --kind month --date 2024-05-16 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			windowKind, err := domain.ParseWindowKind(kind)
			if err != nil {
				return err
			}
			reference, err := parseReference(date)
			if err != nil {
				return fmt.Errorf("data inválida %q: use AAAA-MM-DD", date)
			}

			report, err := services.Reporter.Report(ctx, windowKind, reference)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, report)
			}
			if !report.HasData {
				_, err = fmt.Fprintln(out, report.Message)
				return err
			}
			_, err = fmt.Fprintln(out, report.Text)
			return err
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(domain.WindowWeek), "tipo de período")
	cmd.Flags().StringVar(&date, "date", "", "data de referência AAAA-MM-DD (padrão: hoje)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "saída em JSON")
	return cmd
}

func ledgerCmd(ctx context.Context, services *cliServices) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Lista os registros mais recentes do livro reconciliado",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := services.Reporter.RecentEntries(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, entries)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprint(tw, domain.ColumnBusinessDate)
			for _, role := range domain.MetricRoles {
				fmt.Fprintf(tw, "\t%s", domain.CanonicalColumns[role])
			}
			fmt.Fprintln(tw)
			for _, entry := range entries {
				fmt.Fprint(tw, entry.BusinessDate.Format(time.DateOnly))
				for _, role := range domain.MetricRoles {
					fmt.Fprintf(tw, "\t%d", entry.Value(role))
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", reporting.DefaultRecentLimit, "quantidade de registros")
	cmd.Flags().BoolVar(&asJSON, "json", false, "saída em JSON")
	return cmd
}

func submitCmd(ctx context.Context, services *cliServices) *cobra.Command {
	var submission domain.EntrySubmission

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Grava o lançamento de um dia; reenviar a mesma data corrige o lançamento",
		Example: `  workloadctl submit --date 2024-05-16 --ct-patients 12 --ct-sites 20 --dr-patients 8 \
    --dr-sites 15 --exam-ct 3 --exam-dr 4 --exam-fluoro 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.Submitter.Submit(ctx, submission)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Lançamento de %s gravado em %s\n",
				result.Entry.BusinessDate.Format(time.DateOnly), result.Target)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&submission.Date, "date", "", "data do lançamento AAAA-MM-DD")
	flags.IntVar(&submission.RoutineCTPatients, "ct-patients", 0, domain.ColumnRoutineCTPatients)
	flags.IntVar(&submission.RoutineCTSites, "ct-sites", 0, domain.ColumnRoutineCTSites)
	flags.IntVar(&submission.RoutineDRPatients, "dr-patients", 0, domain.ColumnRoutineDRPatients)
	flags.IntVar(&submission.RoutineDRSites, "dr-sites", 0, domain.ColumnRoutineDRSites)
	flags.IntVar(&submission.ExamCTSites, "exam-ct", 0, domain.ColumnExamCTSites)
	flags.IntVar(&submission.ExamDRSites, "exam-dr", 0, domain.ColumnExamDRSites)
	flags.IntVar(&submission.ExamFluoroscopySites, "exam-fluoro", 0, domain.ColumnExamFluoroscopySites)
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func exportCmd(ctx context.Context, services *cliServices) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta o livro reconciliado para .xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = fmt.Sprintf("workload-%s.xlsx", time.Now().Format("20060102"))
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := services.Exporter.ExportLedger(ctx, f); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Livro exportado para %s\n", out)
			return err
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "arquivo de saída (padrão: workload-AAAAMMDD.xlsx)")
	return cmd
}
