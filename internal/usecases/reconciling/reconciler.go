package reconciling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/pkg/metrics"
)

// Snapshot é um livro reconciliado imutável junto com os diagnósticos das origens
type Snapshot struct {
	Ledger      domain.Ledger
	Diagnostics []domain.SourceDiagnostic
	BuiltAt     time.Time
	ExpiresAt   time.Time
	Version     uint64
}

// Warnings retorna os diagnósticos das origens que falharam
func (s *Snapshot) Warnings() []domain.SourceDiagnostic {
	warnings := make([]domain.SourceDiagnostic, 0)
	if s == nil {
		return warnings
	}
	for _, diagnostic := range s.Diagnostics {
		if IsSourceFailure(diagnostic) {
			warnings = append(warnings, diagnostic)
		}
	}
	return warnings
}

// Reconciler lê as origens em paralelo e produz o livro canônico
type Reconciler struct {
	sources      []Source
	fetchTimeout time.Duration
	metrics      *metrics.Registry
	now          func() time.Time
}

// NewReconciler recebe as origens em ordem crescente de prioridade
func NewReconciler(sources []Source, fetchTimeout time.Duration, m *metrics.Registry) *Reconciler {
	return &Reconciler{
		sources:      sources,
		fetchTimeout: fetchTimeout,
		metrics:      m,
		now:          time.Now,
	}
}

// Build lê todas as origens e reconcilia. Nunca falha: no pior caso devolve um livro vazio.
// A ordem de término das leituras não afeta o resultado, que segue a posição de cada origem.
func (r *Reconciler) Build(ctx context.Context) *Snapshot {
	startedAt := r.now()

	batches := make([]domain.SourceBatch, len(r.sources))
	durations := make([]time.Duration, len(r.sources))

	wg := sync.WaitGroup{}
	for i, source := range r.sources {
		wg.Add(1)
		go func(i int, source Source) {
			defer wg.Done()
			fetchStart := time.Now()
			batches[i] = r.fetch(ctx, source)
			durations[i] = time.Since(fetchStart)
		}(i, source)
	}
	wg.Wait()

	ledger, diagnostics := Reconcile(batches)

	for i := range diagnostics {
		diagnostics[i].FetchedIn = durations[i]
		diagnostics[i].FetchedInMs = durations[i].Milliseconds()

		r.metrics.ObserveFetch(diagnostics[i].Source, string(diagnostics[i].Status), durations[i])
		r.metrics.AddDroppedRows(diagnostics[i].Source, diagnostics[i].Dropped)

		logger := logrus.WithFields(logrus.Fields{
			"source":   diagnostics[i].Source,
			"status":   diagnostics[i].Status,
			"rows":     diagnostics[i].Rows,
			"accepted": diagnostics[i].Accepted,
			"dropped":  diagnostics[i].Dropped,
			"duration": durations[i].String(),
		})
		if IsSourceFailure(diagnostics[i]) {
			logger.WithField("error", diagnostics[i].Error).Warn("Origem indisponível, tratada como vazia na reconciliação")
		} else {
			logger.Debug("Origem lida com sucesso")
		}
	}

	elapsed := r.now().Sub(startedAt)
	r.metrics.ObserveReconcile(elapsed, ledger.Len())

	logrus.WithFields(logrus.Fields{
		"sources":  len(r.sources),
		"entries":  ledger.Len(),
		"duration": elapsed.String(),
	}).Info("Livro de produção reconciliado")

	return &Snapshot{
		Ledger:      ledger,
		Diagnostics: diagnostics,
		BuiltAt:     r.now(),
	}
}

// fetch lê uma origem com tempo limite; erro, timeout ou panic viram um lote com erro
func (r *Reconciler) fetch(ctx context.Context, source Source) domain.SourceBatch {
	batch := domain.SourceBatch{
		Source: source.Name(),
		Schema: source.Schema(),
	}

	fetchCtx := ctx
	if r.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, r.fetchTimeout)
		defer cancel()
	}

	type fetchResult struct {
		rows []domain.RawRecord
		err  error
	}

	done := make(chan fetchResult, 1)
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				done <- fetchResult{err: fmt.Errorf("panic ao ler origem %s: %v", source.Name(), recovered)}
			}
		}()
		rows, err := source.FetchRows(fetchCtx)
		done <- fetchResult{rows: rows, err: err}
	}()

	select {
	case result := <-done:
		batch.Rows = result.rows
		batch.Err = result.err
		if batch.Err != nil {
			batch.Rows = nil
		}
	case <-fetchCtx.Done():
		batch.Err = fmt.Errorf("tempo limite ao ler origem %s: %w", source.Name(), fetchCtx.Err())
	}

	return batch
}
