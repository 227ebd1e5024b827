package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/infrastructure/repository"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reporting"
)

// WeeklyReportService gera o relatório da semana encerrada toda sexta-feira de manhã
type WeeklyReportService struct {
	scheduler   *gocron.Scheduler
	config      config.WeeklyReport
	invalidator reconciling.LedgerInvalidator
	reporter    reporting.Reporter
	// archive é nil quando o banco está desabilitado
	archive repository.ReportArchiveRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.Report
	lastError           string
}

func NewWeeklyReportService(
	invalidator reconciling.LedgerInvalidator,
	reporter reporting.Reporter,
	archive repository.ReportArchiveRepository,
	appConfig *config.Config,
) *WeeklyReportService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.WeeklyReport.CronSchedule,
		"enabled":       appConfig.WeeklyReport.Enabled,
		"archive":       archive != nil,
	}).Info("Configuração do agendador do relatório semanal carregada")

	return &WeeklyReportService{
		scheduler:   gocron.NewScheduler(appConfig.Location()),
		config:      appConfig.WeeklyReport,
		invalidator: invalidator,
		reporter:    reporter,
		archive:     archive,
	}
}

// Start inicia o agendador
func (s *WeeklyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório semanal desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório semanal")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *WeeklyReportService) run(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório semanal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	report, err := s.RunOnce(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReport = report
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// RunOnce descarta o cache, gera o relatório da semana anterior e o arquiva quando há banco
func (s *WeeklyReportService) RunOnce(ctx context.Context) (*domain.Report, error) {
	startTime := time.Now()

	// Lançamentos de quinta à noite precisam entrar no relatório de sexta
	s.invalidator.Invalidate()

	report, err := s.reporter.Report(ctx, domain.WindowWeek, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar relatório semanal")
		return nil, err
	}

	fields := logrus.Fields{
		"start_date": report.Window.Start.Format(time.DateOnly),
		"end_date":   report.Window.End.Format(time.DateOnly),
		"entries":    report.Totals.Entries,
		"duration":   time.Since(startTime).String(),
	}

	if !report.HasData {
		logrus.WithFields(fields).Warn(report.Message)
		return report, nil
	}

	logrus.WithFields(fields).Info("Relatório semanal gerado:\n" + report.Text)

	if s.archive == nil {
		return report, nil
	}

	archived := &domain.ArchivedReport{
		Kind:      report.Window.Kind,
		StartDate: report.Window.Start,
		EndDate:   report.Window.End,
		Totals:    report.Totals,
		Text:      report.Text,
	}
	if err := s.archive.SaveReport(ctx, archived); err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro ao arquivar relatório semanal")
		return report, err
	}

	logrus.WithFields(fields).WithField("report_id", archived.ID).Info("Relatório semanal arquivado")
	return report, nil
}

// TriggerManualSync gera o relatório semanal fora do horário agendado
func (s *WeeklyReportService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório semanal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do relatório semanal")
	go s.run(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *WeeklyReportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"archive_enabled":        s.archive != nil,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	if s.lastReport != nil {
		status["last_window_start"] = s.lastReport.Window.Start.Format(time.DateOnly)
		status["last_window_end"] = s.lastReport.Window.End.Format(time.DateOnly)
		status["last_has_data"] = s.lastReport.HasData
	}
	return status
}
