package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/submitting"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
)

// SubmitEntry grava o lançamento de um dia no destino configurado.
// Reenviar a mesma data é a forma de corrigir um lançamento.
func SubmitEntry(service submitting.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.EntrySubmission

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Submit(r.Context(), req)
		if err != nil {
			var subErr *submitting.SubmissionError
			if errors.As(err, &subErr) {
				var details any
				if subErr.Target != "" {
					details = map[string]string{"target": subErr.Target}
				}
				apiErrors.WriteError(w, subErr.Code, subErr.Error(), details)
				return
			}
			logrus.WithError(err).Error("Erro inesperado ao gravar lançamento")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gravar lançamento", nil)
			return
		}

		writeJSON(w, http.StatusCreated, result)
	}
}
