package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeWeeklyReport = "weekly-report"
	CronJobTypeLedgerWarmup = "ledger-warmup"
	CronJobTypeAll          = "all"
)

// CronJob é um agendador que aceita execução manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices associa cada tipo de cron job ao seu agendador
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, job := range services {
				job.TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", ")+", all", nil)
				return
			}
			job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	}
}

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for name := range s {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
