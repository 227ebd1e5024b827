package handler

import (
	"net/http"

	"github.com/vfg2006/radiology-workload-api/infrastructure/repository"
	"github.com/vfg2006/radiology-workload-api/internal/api/handler/router"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/authenticating"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/exporting"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reporting"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/submitting"
	"github.com/vfg2006/radiology-workload-api/pkg/middleware"
)

var authenticated = []func(http.Handler) http.Handler{middleware.RequireSession()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/session",
			Method:      http.MethodGet,
			Handler:     GetSession(),
			Middlewares: authenticated,
		},
	}
}

func Entries(service submitting.Submitter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entries",
			Method:      http.MethodPost,
			Handler:     SubmitEntry(service),
			Middlewares: authenticated,
		},
	}
}

func Ledger(reporter reporting.Reporter, admin reconciling.LedgerAdmin, exporter exporting.Exporter, states SourceStates) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ledger",
			Method:      http.MethodGet,
			Handler:     ListLedger(reporter),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/ledger/status",
			Method:      http.MethodGet,
			Handler:     GetLedgerStatus(admin, states),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/ledger/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshLedger(admin, states),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/ledger/trend",
			Method:      http.MethodGet,
			Handler:     GetMonthTrend(reporter),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/ledger/export",
			Method:      http.MethodGet,
			Handler:     ExportLedger(exporter),
			Middlewares: authenticated,
		},
	}
}

func Reports(reporter reporting.Reporter, archive repository.ReportArchiveRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/:kind",
			Method:      http.MethodGet,
			Handler:     GetReport(reporter),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/archive/reports",
			Method:      http.MethodGet,
			Handler:     ListArchivedReports(archive),
			Middlewares: authenticated,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/jobs/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: authenticated,
		},
	}
}
