package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
)

// LedgerWarmupService mantém o cache do livro aquecido para que a primeira requisição
// após o vencimento do TTL não pague o custo de buscar todas as origens
type LedgerWarmupService struct {
	scheduler *gocron.Scheduler
	config    config.LedgerWarmup
	ledger    reconciling.LedgerReader

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastEntries         int
	lastVersion         uint64
}

func NewLedgerWarmupService(ledger reconciling.LedgerReader, appConfig *config.Config) *LedgerWarmupService {
	return &LedgerWarmupService{
		scheduler: gocron.NewScheduler(appConfig.Location()),
		config:    appConfig.LedgerWarmup,
		ledger:    ledger,
	}
}

// Start inicia o agendador
func (s *LedgerWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento do cache do livro desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do livro")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warm(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do livro: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do livro")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LedgerWarmupService) warm(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	snapshot := s.ledger.GetOrRebuild(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastEntries = snapshot.Ledger.Len()
	s.lastVersion = snapshot.Version

	logrus.WithFields(logrus.Fields{
		"entries":  s.lastEntries,
		"version":  s.lastVersion,
		"duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Debug("Cache do livro verificado")
}

// TriggerManualSync executa o aquecimento imediatamente
func (s *LedgerWarmupService) TriggerManualSync() {
	logrus.Info("Iniciando aquecimento manual do livro")
	go s.warm(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *LedgerWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_entries":           s.lastEntries,
		"last_version":           s.lastVersion,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
