// Package app monta as dependências compartilhadas pela API e pela CLI
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/infrastructure/database/postgres"
	"github.com/vfg2006/radiology-workload-api/infrastructure/integrator/guard"
	"github.com/vfg2006/radiology-workload-api/infrastructure/integrator/seatable"
	"github.com/vfg2006/radiology-workload-api/infrastructure/integrator/seatable/seatableclient"
	"github.com/vfg2006/radiology-workload-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/radiology-workload-api/infrastructure/integrator/workbook"
	"github.com/vfg2006/radiology-workload-api/infrastructure/repository"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/internal/scheduler"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/authenticating"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/exporting"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reporting"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/submitting"
	"github.com/vfg2006/radiology-workload-api/pkg/metrics"
)

type Services struct {
	Config  *config.Config
	Metrics *metrics.Registry

	// Conn é nil quando DATABASE_ENABLED=false
	Conn    *postgres.Connection
	Sources []*guard.GuardedSource
	Cache   *reconciling.LedgerCache

	Reporter      reporting.Reporter
	Submitter     submitting.Submitter
	Exporter      exporting.Exporter
	Authenticator authenticating.Authenticator
	// Archive é nil quando DATABASE_ENABLED=false
	Archive repository.ReportArchiveRepository

	WeeklyReport *scheduler.WeeklyReportService
	LedgerWarmup *scheduler.LedgerWarmupService
}

// Build cria as origens na ordem de LEDGER_SOURCES, o cache do livro e os casos de uso
func Build(ctx context.Context, cfg *config.Config) (*Services, error) {
	s := &Services{
		Config:  cfg,
		Metrics: metrics.NewRegistry(),
	}

	if cfg.Database.Enabled {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		s.Conn = conn
		s.Archive = repository.NewReportArchiveRepository(conn)
	}

	var seaTable *seatable.SeaTableIntegrator
	seaTableIntegrator := func() *seatable.SeaTableIntegrator {
		if seaTable == nil {
			seaTable = seatable.NewSeaTableIntegrator(seatableclient.NewClient(cfg.SeaTable), cfg.SeaTable)
		}
		return seaTable
	}

	var entries repository.WorkloadEntryRepository
	if s.Conn != nil {
		entries = repository.NewWorkloadEntryRepository(s.Conn)
	}

	settings := guard.Settings{
		FailuresToTrip: cfg.Ledger.BreakerFailures,
		OpenTimeout:    cfg.Ledger.BreakerOpenTimeout,
	}

	sources := make([]reconciling.Source, 0, len(cfg.Ledger.Sources))
	for _, name := range cfg.Ledger.Sources {
		var source guard.Source
		switch name {
		case config.SourceManualSheet:
			source = sheets.NewManualSheet(cfg.Sheets)
		case config.SourceFormSheet:
			source = sheets.NewFormSheet(cfg.Sheets)
		case config.SourceWorkbook:
			source = workbook.NewWorkbookIntegrator(cfg.Workbook)
		case config.SourceSeaTable:
			source = seaTableIntegrator()
		case config.SourcePostgres:
			if entries == nil {
				return nil, fmt.Errorf("origem %q exige DATABASE_ENABLED=true", name)
			}
			source = entries
		default:
			return nil, fmt.Errorf("origem desconhecida: %q", name)
		}

		guarded := guard.Wrap(source, settings)
		s.Sources = append(s.Sources, guarded)
		sources = append(sources, guarded)
	}

	logrus.WithField("sources", cfg.Ledger.Sources).Info("Origens do livro configuradas em ordem de prioridade")

	reconciler := reconciling.NewReconciler(sources, cfg.Ledger.FetchTimeout, s.Metrics)
	s.Cache = reconciling.NewLedgerCache(reconciler, cfg.Ledger.CacheTTL, s.Metrics)

	var appender submitting.Appender
	switch cfg.Ledger.SubmissionTarget {
	case config.SourceSeaTable:
		appender = seaTableIntegrator()
	case config.SourcePostgres:
		if entries == nil {
			return nil, fmt.Errorf("destino %q exige DATABASE_ENABLED=true", cfg.Ledger.SubmissionTarget)
		}
		appender = entries
	}

	authenticator, err := authenticating.NewService(cfg.Auth.Password, cfg.Auth.Secret, cfg.Auth.SessionTTL)
	if err != nil {
		return nil, err
	}

	s.Authenticator = authenticator
	s.Reporter = reporting.NewService(s.Cache, cfg.Location(), s.Metrics)
	s.Submitter = submitting.NewService(appender, s.Cache, cfg.Ledger.SubmitTimeout, s.Metrics)
	s.Exporter = exporting.NewService(s.Cache)
	s.WeeklyReport = scheduler.NewWeeklyReportService(s.Cache, s.Reporter, s.Archive, cfg)
	s.LedgerWarmup = scheduler.NewLedgerWarmupService(s.Cache, cfg)

	return s, nil
}

// SourceStates retorna o estado do disjuntor de cada origem
func (s *Services) SourceStates() map[string]string {
	states := make(map[string]string, len(s.Sources))
	for _, source := range s.Sources {
		states[source.Name()] = source.State()
	}
	return states
}

// StartSchedulers inicia os agendadores; falhas são registradas sem impedir a API de subir
func (s *Services) StartSchedulers(ctx context.Context) {
	if err := s.WeeklyReport.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório semanal")
	}
	if err := s.LedgerWarmup.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do livro")
	}
}

func (s *Services) Close() error {
	if s.Conn != nil {
		return s.Conn.Close()
	}
	return nil
}
