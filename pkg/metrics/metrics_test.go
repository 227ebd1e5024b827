package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Observacoes(t *testing.T) {
	m := NewRegistry()

	m.ObserveFetch("seatable", "ok", 120*time.Millisecond)
	m.ObserveFetch("seatable", "failed", time.Second)
	m.AddDroppedRows("seatable", 2)
	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()
	m.ObserveSubmission("postgres", nil)
	m.ObserveSubmission("postgres", errors.New("timeout"))
	m.ObserveReconcile(300*time.Millisecond, 42)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceFetches.WithLabelValues("seatable", "failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DroppedRows.WithLabelValues("seatable")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("postgres", "failure")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.LedgerEntries))
}

func TestRegistry_NilIgnoraObservacoes(t *testing.T) {
	var m *Registry

	assert.NotPanics(t, func() {
		m.ObserveFetch("x", "ok", time.Second)
		m.CacheHit()
		m.CacheInvalidated()
		m.ObserveSubmission("x", nil)
		m.ObserveReport("week", true)
	})
}

func TestRegistry_Handler(t *testing.T) {
	m := NewRegistry()
	m.ObserveReport("week", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "workload_reports_rendered_total"))
}
