// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=workload_entry.go -destination=mocks/mock_workload_entry.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/radiology-workload-api/infrastructure/database/postgres"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/pkg/utils"
)

const (
	workloadEntriesTable = "workload_entries"

	// submittedAtColumn é exposto no registro bruto para ordenar os reenvios
	submittedAtColumn = "submitted_at"
)

var workloadEntryColumns = []string{
	"business_date",
	"routine_ct_patients",
	"routine_ct_sites",
	"routine_dr_patients",
	"routine_dr_sites",
	"exam_ct_sites",
	"exam_dr_sites",
	"exam_fluoroscopy_sites",
	"submitted_at",
}

// WorkloadEntryRepository é o log de lançamentos no banco: cada envio vira uma nova linha
type WorkloadEntryRepository interface {
	Name() string
	Schema() domain.SchemaDescriptor
	FetchRows(ctx context.Context) ([]domain.RawRecord, error)

	TargetName() string
	AppendEntry(ctx context.Context, entry domain.WorkloadEntry) error
}

type workloadEntryRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewWorkloadEntryRepository(conn postgres.Queryer) WorkloadEntryRepository {
	return &workloadEntryRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *workloadEntryRepository) Name() string {
	return config.SourcePostgres
}

func (r *workloadEntryRepository) TargetName() string {
	return config.SourcePostgres
}

func (r *workloadEntryRepository) Schema() domain.SchemaDescriptor {
	return domain.CanonicalSchema().WithSubmissionTimestamp(submittedAtColumn)
}

func buildSelectEntries() (string, []any, error) {
	return squirrel.
		Select(workloadEntryColumns...).
		From(workloadEntriesTable).
		OrderBy("submitted_at ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// FetchRows lê todo o log na ordem de envio, com os nomes de coluna canônicos
func (r *workloadEntryRepository) FetchRows(ctx context.Context) ([]domain.RawRecord, error) {
	query, args, err := buildSelectEntries()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RawRecord, 0)
	for rows.Next() {
		var (
			businessDate time.Time
			counts       [7]int64
			submittedAt  time.Time
		)

		if err := rows.Scan(
			&businessDate,
			&counts[0], &counts[1], &counts[2], &counts[3], &counts[4], &counts[5], &counts[6],
			&submittedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}

		record := domain.RawRecord{
			domain.ColumnBusinessDate: businessDate,
			submittedAtColumn:         submittedAt,
		}
		for i, role := range domain.MetricRoles {
			record[domain.CanonicalColumns[role]] = counts[i]
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func buildInsertEntry(id string, entry domain.WorkloadEntry, submittedAt time.Time) (string, []any, error) {
	return squirrel.
		Insert(workloadEntriesTable).
		Columns(append([]string{"id"}, workloadEntryColumns...)...).
		Values(
			id,
			entry.BusinessDate.Format(time.DateOnly),
			entry.RoutineCTPatients,
			entry.RoutineCTSites,
			entry.RoutineDRPatients,
			entry.RoutineDRSites,
			entry.ExamCTSites,
			entry.ExamDRSites,
			entry.ExamFluoroscopySites,
			submittedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *workloadEntryRepository) AppendEntry(ctx context.Context, entry domain.WorkloadEntry) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID: %w", err)
	}

	submittedAt := r.now().UTC()
	if entry.SubmittedAt != nil {
		submittedAt = entry.SubmittedAt.UTC()
	}

	query, args, err := buildInsertEntry(id, entry, submittedAt)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar lançamento: %w", err)
	}

	return nil
}
