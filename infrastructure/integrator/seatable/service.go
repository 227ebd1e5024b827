package seatable

//go:generate mockgen -source=seatableclient/client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/radiology-workload-api/infrastructure/integrator/seatable/seatableclient"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

const (
	Name            = config.SourceSeaTable
	maxPageSize     = 1000
	defaultPageSize = 1000
)

// SeaTableIntegrator é a tabela de lançamentos diários: origem de leitura e destino de gravação
type SeaTableIntegrator struct {
	client          seatableclient.Client
	tableName       string
	timestampColumn string
	pageSize        int
	now             func() time.Time
}

func NewSeaTableIntegrator(client seatableclient.Client, cfg config.SeaTable) *SeaTableIntegrator {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return &SeaTableIntegrator{
		client:          client,
		tableName:       cfg.TableName,
		timestampColumn: cfg.TimestampColumn,
		pageSize:        pageSize,
		now:             time.Now,
	}
}

func (s *SeaTableIntegrator) Name() string {
	return Name
}

func (s *SeaTableIntegrator) TargetName() string {
	return Name
}

// Schema é o esquema canônico, com carimbo de envio quando a tabela tiver essa coluna
func (s *SeaTableIntegrator) Schema() domain.SchemaDescriptor {
	return domain.CanonicalSchema().WithSubmissionTimestamp(s.timestampColumn)
}

// FetchRows lê a tabela inteira, página por página, preservando a ordem de inserção
func (s *SeaTableIntegrator) FetchRows(ctx context.Context) ([]domain.RawRecord, error) {
	records := make([]domain.RawRecord, 0)

	for start := 0; ; start += s.pageSize {
		rows, err := s.client.ListRows(ctx, s.tableName, start, s.pageSize)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			records = append(records, domain.RawRecord(row))
		}

		if len(rows) < s.pageSize {
			break
		}
	}

	return records, nil
}

// AppendEntry grava o registro como uma nova linha; a versão mais recente de uma data vence na leitura
func (s *SeaTableIntegrator) AppendEntry(ctx context.Context, entry domain.WorkloadEntry) error {
	row := entry.Row()
	if s.timestampColumn != "" {
		submittedAt := s.now()
		if entry.SubmittedAt != nil {
			submittedAt = *entry.SubmittedAt
		}
		row[s.timestampColumn] = submittedAt.UTC().Format(time.RFC3339)
	}
	return s.client.AppendRow(ctx, s.tableName, row)
}
