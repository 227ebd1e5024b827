package submitting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

// Appender grava um registro diário em uma origem que aceita escrita
type Appender interface {
	// TargetName identifica o destino nos logs, métricas e respostas
	TargetName() string

	// AppendEntry grava o registro em uma única chamada; não há estado parcial
	AppendEntry(ctx context.Context, entry domain.WorkloadEntry) error
}

// Submitter valida e grava lançamentos diários
type Submitter interface {
	Submit(ctx context.Context, submission domain.EntrySubmission) (*domain.SubmissionResult, error)
}
