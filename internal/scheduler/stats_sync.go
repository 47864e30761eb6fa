package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
)

// StatsSyncConfig representa a configuração do agendador de reconciliação
type StatsSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// StatsSyncService reconcilia periodicamente as estatísticas de todos os influenciadores
type StatsSyncService struct {
	scheduler           *gocron.Scheduler
	config              StatsSyncConfig
	reconciler          reconciling.ReconcilingService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.SyncSummary
	lastError           string
}

func NewStatsSyncService(reconciler reconciling.ReconcilingService, appConfig *config.Config) *StatsSyncService {
	syncConfig := StatsSyncConfig{
		CronSchedule:        appConfig.StatsSync.CronSchedule,
		RequestDelaySeconds: appConfig.StatsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.StatsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.StatsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de estatísticas carregada")

	return &StatsSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		reconciler: reconciler,
	}
}

// Start agenda a reconciliação quando habilitada e para o agendador junto com o contexto
func (s *StatsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de estatísticas desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.begin() {
			logrus.Info("Sincronização de estatísticas já em andamento, ignorando")
			return
		}
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estatísticas: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("Agendador de sincronização de estatísticas iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de estatísticas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução fora do agendamento.
// Retorna false quando já existe uma execução em andamento.
func (s *StatsSyncService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Sincronização de estatísticas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de estatísticas")
	go s.syncAll(context.Background())
	return true
}

// IsRunning indica se há uma execução em andamento
func (s *StatsSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

func (s *StatsSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// syncAll deve ser chamado somente após begin
func (s *StatsSyncService) syncAll(ctx context.Context) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando reconciliação de todos os influenciadores")

	startTime := time.Now()
	summary, err := s.reconciler.ReconcileAll(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
		logger.WithError(err).Error("Erro na reconciliação de todos os influenciadores")
		return
	}

	s.lastError = ""
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()

	logger.WithFields(log.Fields{
		"duration":  time.Since(startTime).String(),
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Reconciliação de todos os influenciadores concluída")
}

// GetStatus retorna o status atual do agendador
func (s *StatsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
		"last_error":             s.lastError,
	}
}
