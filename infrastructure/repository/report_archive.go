package repository

//go:generate mockgen -source=report_archive.go -destination=mocks/mock_report_archive.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/radiology-workload-api/infrastructure/database/postgres"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/pkg/utils"
)

const (
	workloadReportsTable = "workload_reports wr"
	defaultArchiveLimit  = 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportArchiveRepository guarda os relatórios semanais gerados pelo agendador
type ReportArchiveRepository interface {
	SaveReport(ctx context.Context, report *domain.ArchivedReport) error
	ListReports(ctx context.Context, limit int) ([]*domain.ArchivedReport, error)
}

type reportArchiveRepository struct {
	conn postgres.Queryer
}

func NewReportArchiveRepository(conn postgres.Queryer) ReportArchiveRepository {
	return &reportArchiveRepository{
		conn: conn,
	}
}

// buildUpsertReport regrava o relatório quando o mesmo período é arquivado de novo
func buildUpsertReport(report *domain.ArchivedReport, totals []byte) (string, []any, error) {
	return squirrel.
		Insert("workload_reports").
		Columns("id", "kind", "start_date", "end_date", "totals", "text", "created_at").
		Values(
			report.ID,
			string(report.Kind),
			report.StartDate.Format(time.DateOnly),
			report.EndDate.Format(time.DateOnly),
			string(totals),
			report.Text,
			report.CreatedAt,
		).
		Suffix("ON CONFLICT (kind, start_date, end_date) DO UPDATE SET totals = EXCLUDED.totals, text = EXCLUDED.text, created_at = EXCLUDED.created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *reportArchiveRepository) SaveReport(ctx context.Context, report *domain.ArchivedReport) error {
	if report.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID: %w", err)
		}
		report.ID = id
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	totals, err := json.Marshal(report.Totals)
	if err != nil {
		return fmt.Errorf("erro ao serializar totais: %w", err)
	}

	query, args, err := buildUpsertReport(report, totals)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao arquivar relatório: %w", err)
	}
	return nil
}

func buildListReports(limit int) (string, []any, error) {
	if limit <= 0 {
		limit = defaultArchiveLimit
	}
	return squirrel.
		Select("wr.id", "wr.kind", "wr.start_date", "wr.end_date", "wr.totals", "wr.text", "wr.created_at").
		From(workloadReportsTable).
		OrderBy("wr.start_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *reportArchiveRepository) ListReports(ctx context.Context, limit int) ([]*domain.ArchivedReport, error) {
	query, args, err := buildListReports(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.ArchivedReport, 0)
	for rows.Next() {
		var (
			report domain.ArchivedReport
			kind   string
			totals []byte
		)
		if err := rows.Scan(&report.ID, &kind, &report.StartDate, &report.EndDate, &totals, &report.Text, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		report.Kind = domain.WindowKind(kind)
		if err := json.Unmarshal(totals, &report.Totals); err != nil {
			return nil, fmt.Errorf("erro ao ler totais do relatório %s: %w", report.ID, err)
		}
		reports = append(reports, &report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}
