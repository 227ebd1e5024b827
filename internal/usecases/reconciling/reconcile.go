package reconciling

import (
	"time"

	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

// Reconcile funde os lotes das origens em um único livro canônico.
//
// Os lotes chegam em ordem crescente de prioridade. Dentro de cada lote com carimbo de envio
// as linhas são ordenadas pelo carimbo antes da concatenação. Na deduplicação por data vence
// a última ocorrência, de modo que a origem de maior prioridade sempre prevalece e, dentro da
// mesma origem, o envio mais recente prevalece. Lotes com erro contam como origens vazias.
func Reconcile(batches []domain.SourceBatch) (domain.Ledger, []domain.SourceDiagnostic) {
	stream := make([]domain.WorkloadEntry, 0)
	diagnostics := make([]domain.SourceDiagnostic, 0, len(batches))

	for _, batch := range batches {
		diagnostic := domain.SourceDiagnostic{
			Source: batch.Source,
			Rows:   len(batch.Rows),
		}

		if batch.Err != nil {
			diagnostic.Status = domain.SourceStatusFailed
			diagnostic.Error = batch.Err.Error()
			diagnostic.Rows = 0
			diagnostics = append(diagnostics, diagnostic)
			continue
		}

		entries := make([]domain.WorkloadEntry, 0, len(batch.Rows))
		for _, row := range batch.Rows {
			entry, err := MapRecord(batch.Schema, row)
			if err != nil {
				diagnostic.Dropped++
				continue
			}
			entries = append(entries, entry)
		}

		if batch.Schema.HasSubmissionTimestamp() {
			orderBySubmission(entries)
		}

		diagnostic.Accepted = len(entries)
		diagnostic.Status = domain.SourceStatusOK
		if diagnostic.Rows == 0 {
			diagnostic.Status = domain.SourceStatusEmpty
		}

		stream = append(stream, entries...)
		diagnostics = append(diagnostics, diagnostic)
	}

	return domain.NewLedger(keepLastByDate(stream)), diagnostics
}

// keepLastByDate mantém apenas a última ocorrência de cada data no fluxo concatenado
func keepLastByDate(stream []domain.WorkloadEntry) []domain.WorkloadEntry {
	latest := make(map[time.Time]int, len(stream))
	for i, entry := range stream {
		latest[entry.BusinessDate] = i
	}

	unique := make([]domain.WorkloadEntry, 0, len(latest))
	for i, entry := range stream {
		if latest[entry.BusinessDate] == i {
			unique = append(unique, entry)
		}
	}
	return unique
}

// IsSourceFailure informa se o diagnóstico representa uma origem inacessível
func IsSourceFailure(diagnostic domain.SourceDiagnostic) bool {
	return diagnostic.Status == domain.SourceStatusFailed
}
