// Package metrics expõe as métricas Prometheus da reconciliação, relatórios e envios
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry agrupa as métricas do serviço. Um Registry nil ignora todas as observações.
type Registry struct {
	registry *prometheus.Registry

	ReconcileDuration   prometheus.Histogram
	LedgerEntries       prometheus.Gauge
	SourceFetches       *prometheus.CounterVec
	SourceFetchDuration *prometheus.HistogramVec
	DroppedRows         *prometheus.CounterVec
	CacheRequests       *prometheus.CounterVec
	CacheInvalidations  prometheus.Counter
	Submissions         *prometheus.CounterVec
	ReportsRendered     *prometheus.CounterVec
}

// NewRegistry cria e registra todas as métricas em um registro próprio
func NewRegistry() *Registry {
	m := &Registry{
		registry: prometheus.NewRegistry(),

		ReconcileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "workload_reconcile_duration_seconds",
				Help:    "Duração de uma reconciliação completa do livro",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
			},
		),

		LedgerEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "workload_ledger_entries",
				Help: "Quantidade de datas no livro canônico atual",
			},
		),

		SourceFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workload_source_fetch_total",
				Help: "Leituras de origens brutas por status",
			},
			[]string{"source", "status"},
		),

		SourceFetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "workload_source_fetch_duration_seconds",
				Help:    "Duração da leitura de cada origem",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
			},
			[]string{"source"},
		),

		DroppedRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workload_dropped_rows_total",
				Help: "Linhas descartadas por data ou contagem inválida",
			},
			[]string{"source"},
		),

		CacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workload_ledger_cache_requests_total",
				Help: "Acessos ao cache do livro por resultado",
			},
			[]string{"result"},
		),

		CacheInvalidations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "workload_ledger_cache_invalidations_total",
				Help: "Invalidações explícitas do cache do livro",
			},
		),

		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workload_submissions_total",
				Help: "Envios de registros diários por destino e resultado",
			},
			[]string{"target", "result"},
		),

		ReportsRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workload_reports_rendered_total",
				Help: "Relatórios gerados por tipo de período e presença de dados",
			},
			[]string{"kind", "has_data"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ReconcileDuration,
		m.LedgerEntries,
		m.SourceFetches,
		m.SourceFetchDuration,
		m.DroppedRows,
		m.CacheRequests,
		m.CacheInvalidations,
		m.Submissions,
		m.ReportsRendered,
	)

	return m
}

// Handler expõe o endpoint /metrics
func (m *Registry) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Registry) ObserveReconcile(d time.Duration, entries int) {
	if m == nil {
		return
	}
	m.ReconcileDuration.Observe(d.Seconds())
	m.LedgerEntries.Set(float64(entries))
}

func (m *Registry) ObserveFetch(source, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.SourceFetches.WithLabelValues(source, status).Inc()
	m.SourceFetchDuration.WithLabelValues(source).Observe(d.Seconds())
}

func (m *Registry) AddDroppedRows(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.DroppedRows.WithLabelValues(source).Add(float64(n))
}

func (m *Registry) CacheHit() {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues("hit").Inc()
}

func (m *Registry) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues("miss").Inc()
}

func (m *Registry) CacheInvalidated() {
	if m == nil {
		return
	}
	m.CacheInvalidations.Inc()
}

func (m *Registry) ObserveSubmission(target string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.Submissions.WithLabelValues(target, result).Inc()
}

func (m *Registry) ObserveReport(kind string, hasData bool) {
	if m == nil {
		return
	}
	label := "false"
	if hasData {
		label = "true"
	}
	m.ReportsRendered.WithLabelValues(kind, label).Inc()
}
