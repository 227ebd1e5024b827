package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/exporting"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reporting"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
)

// SourceStates retorna o estado do circuit breaker de cada origem
type SourceStates func() map[string]string

type LedgerStatusResponse struct {
	CacheState  reconciling.CacheState    `json:"cache_state"`
	Version     uint64                    `json:"version"`
	Entries     int                       `json:"entries"`
	BuiltAt     *time.Time                `json:"built_at,omitempty"`
	ExpiresAt   *time.Time                `json:"expires_at,omitempty"`
	Diagnostics []domain.SourceDiagnostic `json:"diagnostics"`
	Breakers    map[string]string         `json:"breakers,omitempty"`
}

// ListLedger retorna os últimos registros do livro em ordem crescente de data
func ListLedger(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryInt(r, "limit", reporting.DefaultRecentLimit)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
			return
		}

		entries, err := service.RecentEntries(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar registros do livro")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar registros", nil)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func statusResponse(state reconciling.CacheState, snapshot *reconciling.Snapshot, states SourceStates) LedgerStatusResponse {
	response := LedgerStatusResponse{
		CacheState:  state,
		Diagnostics: []domain.SourceDiagnostic{},
	}
	if snapshot != nil {
		builtAt, expiresAt := snapshot.BuiltAt, snapshot.ExpiresAt
		response.Version = snapshot.Version
		response.Entries = snapshot.Ledger.Len()
		response.BuiltAt = &builtAt
		response.ExpiresAt = &expiresAt
		if snapshot.Diagnostics != nil {
			response.Diagnostics = snapshot.Diagnostics
		}
	}
	if states != nil {
		response.Breakers = states()
	}
	return response
}

// GetLedgerStatus informa o estado do cache sem provocar reconstrução
func GetLedgerStatus(admin reconciling.LedgerAdmin, states SourceStates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse(admin.State(), admin.Peek(), states))
	}
}

// RefreshLedger descarta o cache e busca todas as origens novamente
func RefreshLedger(admin reconciling.LedgerAdmin, states SourceStates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshLedger")

		snapshot := admin.Refresh(r.Context())
		writeJSON(w, http.StatusOK, statusResponse(admin.State(), snapshot, states))
	}
}

// GetMonthTrend retorna os pontos diários do mês da data de referência
func GetMonthTrend(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reference, err := referenceDate(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		points, err := service.MonthTrend(r.Context(), reference)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular tendência do mês")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular tendência", nil)
			return
		}

		writeJSON(w, http.StatusOK, points)
	}
}

// ExportLedger baixa o livro reconciliado como planilha .xlsx
func ExportLedger(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := service.ExportLedger(r.Context(), &buf); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		filename := fmt.Sprintf("workload-%s.xlsx", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", exporting.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar planilha")
		}
	}
}
