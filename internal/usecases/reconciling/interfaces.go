package reconciling

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

// Source define uma origem bruta de registros diários
type Source interface {
	// Name identifica a origem nos diagnósticos e métricas
	Name() string

	// Schema descreve as colunas da origem
	Schema() domain.SchemaDescriptor

	// FetchRows lê todas as linhas na ordem da origem. Linhas malformadas devem ser puladas, não abortar a leitura.
	FetchRows(ctx context.Context) ([]domain.RawRecord, error)
}

// LedgerBuilder produz um novo snapshot do livro a partir das origens
type LedgerBuilder interface {
	Build(ctx context.Context) *Snapshot
}

// LedgerReader é a visão de leitura usada pelos relatórios
type LedgerReader interface {
	GetOrRebuild(ctx context.Context) *Snapshot
}

// LedgerInvalidator é usado por quem grava nas origens
type LedgerInvalidator interface {
	Invalidate()
}

// LedgerAdmin expõe o estado do cache e a reconstrução forçada para a API
type LedgerAdmin interface {
	State() CacheState
	Peek() *Snapshot
	Refresh(ctx context.Context) *Snapshot
}
