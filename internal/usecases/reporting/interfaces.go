package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

// Reporter define as consultas de relatório feitas sobre o livro reconciliado
type Reporter interface {
	// Report gera o relatório do período. reference nil usa a data de hoje no fuso configurado.
	Report(ctx context.Context, kind domain.WindowKind, reference *time.Time) (*domain.Report, error)

	// RecentEntries retorna os últimos registros do livro, do mais antigo para o mais recente
	RecentEntries(ctx context.Context, limit int) ([]domain.WorkloadEntry, error)

	// MonthTrend retorna a série diária de partes de CT e DR do mês da data de referência
	MonthTrend(ctx context.Context, reference *time.Time) ([]domain.TrendPoint, error)
}
