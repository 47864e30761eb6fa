package reconciling

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica"
	"github.com/vfg2006/influencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
	"github.com/vfg2006/influencer-stats-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Locker serializa reconciliações do mesmo influenciador entre instâncias
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type ReconcilingService interface {
	Reconcile(ctx context.Context, referrerID string) (*domain.StatsResult, error)
	ReconcileAll(ctx context.Context) (*domain.SyncSummary, error)
}

type Service struct {
	referrerRepository repository.ReferrerRepository
	integrator         appmetrica.Integrator
	locker             Locker
	redirectHost       string
	masterTrackerID    string
	maxConcurrentJobs  int
	requestDelay       time.Duration
}

// NewService recebe locker nil quando o Redis está desabilitado
func NewService(
	referrerRepository repository.ReferrerRepository,
	integrator appmetrica.Integrator,
	locker Locker,
	cfg *config.Config,
) ReconcilingService {
	maxConcurrentJobs := cfg.StatsSync.MaxConcurrentJobs
	if maxConcurrentJobs <= 0 {
		maxConcurrentJobs = 1
	}

	return &Service{
		referrerRepository: referrerRepository,
		integrator:         integrator,
		locker:             locker,
		redirectHost:       cfg.AppMetrica.RedirectHost,
		masterTrackerID:    cfg.AppMetrica.MasterTrackerID,
		maxConcurrentJobs:  maxConcurrentJobs,
		requestDelay:       time.Duration(cfg.StatsSync.RequestDelaySeconds) * time.Second,
	}
}

func (s *Service) Reconcile(ctx context.Context, referrerID string) (*domain.StatsResult, error) {
	start := time.Now()

	result, err := s.reconcile(ctx, referrerID)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeInternal
		if IsNotFound(err) {
			outcome = metrics.OutcomeNotFound
		}
	}
	metrics.RecordReconciliation(outcome, time.Since(start))

	return result, err
}

func (s *Service) reconcile(ctx context.Context, referrerID string) (*domain.StatsResult, error) {
	logger := log.ForReferrer(ctx, referrerID)

	if referrerID == "" {
		return nil, NewReconcileError(ErrReferrerNotFound, apiErrors.ErrReferrerNotFound, referrerID, "Identificador do influenciador vazio")
	}

	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, referrerID)
		if err != nil {
			logger.WithError(err).Warn("reconcile: could not acquire lock, proceeding without it")
		} else {
			defer release()
		}
	}

	referrer, err := s.referrerRepository.GetByID(ctx, referrerID)
	if err != nil {
		logger.WithError(err).Error("reconcile: failed to load referrer")
		return nil, NewReconcileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, referrerID, "Falha ao buscar influenciador no banco de dados")
	}

	if referrer == nil {
		logger.Warn("reconcile: referrer not found")
		return nil, NewReconcileError(ErrReferrerNotFound, apiErrors.ErrReferrerNotFound, referrerID, "Influenciador não encontrado")
	}

	tag := referrer.AttributionTag()

	var (
		wg            sync.WaitGroup
		acquisition   domain.AcquisitionStats
		registrations int
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		acquisition = s.integrator.FetchAcquisition(ctx, tag)
	}()
	go func() {
		defer wg.Done()
		registrations = s.integrator.FetchRegistrations(ctx, tag)
	}()
	wg.Wait()

	referrer.ApplyStats(acquisition, registrations)
	referrer.ReferralLink = domain.BuildReferralLink(s.redirectHost, s.masterTrackerID, tag)

	if err := s.referrerRepository.UpdateStats(ctx, referrer); err != nil {
		logger.WithError(err).Error("reconcile: failed to persist stats")
		return nil, NewReconcileError(ErrPersistence, apiErrors.ErrDatabaseOperation, referrerID, "Falha ao salvar estatísticas do influenciador")
	}

	logger.WithFields(log.Fields{
		"clicks":        referrer.Clicks,
		"installs":      referrer.Installs,
		"registrations": referrer.Registrations,
		"earnings":      referrer.Earnings.String(),
	}).Info("reconcile: stats updated")

	return domain.NewStatsResult(referrer), nil
}

// ReconcileAll reconcilia todos os influenciadores com concorrência limitada.
// Falhas individuais entram no resumo e não interrompem os demais.
func (s *Service) ReconcileAll(ctx context.Context) (*domain.SyncSummary, error) {
	logger := log.ForContext(ctx)

	referrers, err := s.referrerRepository.List(ctx)
	if err != nil {
		logger.WithError(err).Error("reconcile all: failed to list referrers")
		return nil, NewReconcileError(ErrFetchReferrers, apiErrors.ErrDatabaseOperation, "", "Falha ao listar influenciadores no banco de dados")
	}

	summary := &domain.SyncSummary{Total: len(referrers)}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, s.maxConcurrentJobs)
	)

	for i, referrer := range referrers {
		if ctx.Err() != nil {
			break
		}

		if i > 0 && s.requestDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.requestDelay):
			}
		}

		semaphore <- struct{}{}
		wg.Add(1)

		go func(referrerID string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			_, err := s.Reconcile(ctx, referrerID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				logger.WithFields(log.Fields{
					"referrer_id": referrerID,
					"error":       err.Error(),
				}).Error("reconcile all: referrer failed")
				return
			}
			summary.Succeeded++
		}(referrer.ID)
	}

	wg.Wait()

	// Influenciadores não processados por cancelamento contam como falha
	summary.Failed += summary.Total - summary.Succeeded - summary.Failed

	logger.WithFields(log.Fields{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("reconcile all: finished")

	return summary, nil
}
