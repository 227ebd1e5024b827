package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/infrastructure/repository"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reporting"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
)

const defaultArchiveLimit = 20

// GetReport gera o relatório do período. O padrão é o texto pronto para colar no grupo;
// ?format=json devolve a estrutura completa.
func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := domain.ParseWindowKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}

		reference, err := referenceDate(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		report, err := service.Report(r.Context(), kind, reference)
		if err != nil {
			logrus.WithError(err).WithField("kind", kind).Error("Erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
			return
		}

		if r.URL.Query().Get("format") == "json" {
			writeJSON(w, http.StatusOK, report)
			return
		}

		warnings := 0
		for _, diagnostic := range report.Diagnostics {
			if reconciling.IsSourceFailure(diagnostic) {
				warnings++
			}
		}

		body := report.Text
		if !report.HasData {
			body = report.Message
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if warnings > 0 {
			w.Header().Set("X-Ledger-Warnings", strconv.Itoa(warnings))
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar relatório")
		}
	}
}

// ListArchivedReports lista os relatórios semanais arquivados no banco
func ListArchivedReports(archive repository.ReportArchiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if archive == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Arquivo de relatórios exige DATABASE_ENABLED=true", nil)
			return
		}

		limit, ok := queryInt(r, "limit", defaultArchiveLimit)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
			return
		}

		reports, err := archive.ListReports(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar relatórios arquivados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar relatórios arquivados", nil)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}
