package domain

import "time"

// RawRecord é uma linha bruta de uma origem: nome da coluna -> valor (texto ou número)
type RawRecord map[string]any

// ColumnBinding liga um papel ao nome da coluna na origem e aos sinônimos conhecidos
type ColumnBinding struct {
	Role       ColumnRole
	Column     string
	Alternates []string
}

// SchemaDescriptor descreve explicitamente as colunas de uma origem
type SchemaDescriptor struct {
	Columns []ColumnBinding
}

// Binding retorna a ligação de um papel, se existir no esquema
func (s SchemaDescriptor) Binding(role ColumnRole) (ColumnBinding, bool) {
	for _, binding := range s.Columns {
		if binding.Role == role {
			return binding, true
		}
	}
	return ColumnBinding{}, false
}

// HasSubmissionTimestamp indica se a origem traz o próprio histórico de reenvios
func (s SchemaDescriptor) HasSubmissionTimestamp() bool {
	binding, ok := s.Binding(RoleSubmittedAt)
	return ok && binding.Column != ""
}

// WithSubmissionTimestamp retorna uma cópia do esquema com a coluna de carimbo de envio
func (s SchemaDescriptor) WithSubmissionTimestamp(column string) SchemaDescriptor {
	columns := make([]ColumnBinding, 0, len(s.Columns)+1)
	for _, binding := range s.Columns {
		if binding.Role != RoleSubmittedAt {
			columns = append(columns, binding)
		}
	}
	if column != "" {
		columns = append(columns, ColumnBinding{Role: RoleSubmittedAt, Column: column})
	}
	return SchemaDescriptor{Columns: columns}
}

// CanonicalSchema é o esquema padrão das tabelas de produção, incluindo o sinônimo 查体DR
func CanonicalSchema() SchemaDescriptor {
	columns := []ColumnBinding{
		{Role: RoleBusinessDate, Column: ColumnBusinessDate},
	}
	for _, role := range MetricRoles {
		binding := ColumnBinding{Role: role, Column: CanonicalColumns[role]}
		if role == RoleExamDRSites {
			binding.Alternates = []string{ColumnExamDRSitesLegacy}
		}
		columns = append(columns, binding)
	}
	return SchemaDescriptor{Columns: columns}
}

// SourceBatch é o resultado da leitura de uma origem, na posição de prioridade dela
type SourceBatch struct {
	Source string
	Schema SchemaDescriptor
	Rows   []RawRecord
	Err    error
}

type SourceStatus string

const (
	SourceStatusOK     SourceStatus = "ok"
	SourceStatusEmpty  SourceStatus = "empty"
	SourceStatusFailed SourceStatus = "failed"
)

// SourceDiagnostic distingue origem vazia de origem com erro, sem abortar a reconciliação
type SourceDiagnostic struct {
	Source      string        `json:"source"`
	Status      SourceStatus  `json:"status"`
	Rows        int           `json:"rows"`
	Accepted    int           `json:"accepted"`
	Dropped     int           `json:"dropped"`
	Error       string        `json:"error,omitempty"`
	FetchedIn   time.Duration `json:"-"`
	FetchedInMs int64         `json:"fetched_in_ms"`
}
