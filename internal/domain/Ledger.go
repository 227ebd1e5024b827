package domain

import (
	"sort"
	"time"
)

// Ledger é o livro canônico: no máximo um registro por data, em ordem crescente.
// É imutável; toda reconciliação produz um novo Ledger.
type Ledger struct {
	entries []WorkloadEntry
}

// NewLedger cria um Ledger a partir de registros já únicos por data.
// Os registros são copiados e ordenados por data.
func NewLedger(entries []WorkloadEntry) Ledger {
	copied := make([]WorkloadEntry, len(entries))
	copy(copied, entries)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].BusinessDate.Before(copied[j].BusinessDate)
	})
	return Ledger{entries: copied}
}

func (l Ledger) Len() int {
	return len(l.entries)
}

func (l Ledger) IsEmpty() bool {
	return len(l.entries) == 0
}

// Entries retorna uma cópia dos registros
func (l Ledger) Entries() []WorkloadEntry {
	copied := make([]WorkloadEntry, len(l.entries))
	copy(copied, l.entries)
	return copied
}

// Get busca o registro de uma data
func (l Ledger) Get(date time.Time) (WorkloadEntry, bool) {
	date = NormalizeDate(date)
	i := sort.Search(len(l.entries), func(i int) bool {
		return !l.entries[i].BusinessDate.Before(date)
	})
	if i < len(l.entries) && l.entries[i].BusinessDate.Equal(date) {
		return l.entries[i], true
	}
	return WorkloadEntry{}, false
}

// Between retorna os registros com data em [start, end], inclusive nas duas pontas
func (l Ledger) Between(start, end time.Time) []WorkloadEntry {
	start, end = NormalizeDate(start), NormalizeDate(end)
	result := make([]WorkloadEntry, 0)
	for _, entry := range l.entries {
		if entry.BusinessDate.Before(start) {
			continue
		}
		if entry.BusinessDate.After(end) {
			break
		}
		result = append(result, entry)
	}
	return result
}

// Last retorna os n registros mais recentes, em ordem crescente
func (l Ledger) Last(n int) []WorkloadEntry {
	if n <= 0 {
		return []WorkloadEntry{}
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	tail := make([]WorkloadEntry, n)
	copy(tail, l.entries[len(l.entries)-n:])
	return tail
}
