package reconciling

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/pkg/utils"
)

var (
	ErrMissingDate  = errors.New("data ausente ou inválida")
	ErrInvalidCount = errors.New("contagem inválida")
)

// lookup busca o valor da coluna canônica e, se a coluna não existir na linha, tenta os sinônimos
func lookup(record domain.RawRecord, binding domain.ColumnBinding) (any, bool) {
	if value, ok := record[binding.Column]; ok {
		return value, true
	}
	for _, alternate := range binding.Alternates {
		if value, ok := record[alternate]; ok {
			return value, true
		}
	}
	return nil, false
}

// MapRecord converte uma linha bruta em WorkloadEntry segundo o esquema da origem.
// Colunas que não são do esquema (como metadados da origem) são ignoradas.
func MapRecord(schema domain.SchemaDescriptor, record domain.RawRecord) (domain.WorkloadEntry, error) {
	var entry domain.WorkloadEntry

	dateBinding, ok := schema.Binding(domain.RoleBusinessDate)
	if !ok {
		return entry, ErrMissingDate
	}

	rawDate, _ := lookup(record, dateBinding)
	date, ok := utils.ParseLooseDate(rawDate)
	if !ok {
		return entry, ErrMissingDate
	}
	entry.BusinessDate = domain.NormalizeDate(date)

	for _, role := range domain.MetricRoles {
		binding, ok := schema.Binding(role)
		if !ok {
			continue
		}
		raw, _ := lookup(record, binding)
		value, err := utils.ToCount(raw)
		if err != nil {
			return entry, fmt.Errorf("%w: coluna %s: %v", ErrInvalidCount, binding.Column, err)
		}
		entry.SetValue(role, value)
	}

	if binding, ok := schema.Binding(domain.RoleSubmittedAt); ok && binding.Column != "" {
		raw, _ := lookup(record, binding)
		if submittedAt, ok := utils.ParseLooseDate(raw); ok {
			submittedAt = submittedAt.UTC()
			entry.SubmittedAt = &submittedAt
		}
	}

	return entry, nil
}

// orderBySubmission ordena as linhas de uma origem pelo carimbo de envio, estável.
// Linhas sem carimbo ficam no fim, na ordem original.
func orderBySubmission(entries []domain.WorkloadEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].SubmittedAt, entries[j].SubmittedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
}
