package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
)

func newTestService(t *testing.T, reconciler *mocks.MockReconcilingService) *StatsSyncService {
	t.Helper()
	log.SetupTestLogger()

	return NewStatsSyncService(reconciler, &config.Config{
		StatsSync: config.StatsSync{
			CronSchedule:      "0 */6 * * *",
			MaxConcurrentJobs: 2,
		},
	})
}

func TestStatsSyncService_syncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconciler := mocks.NewMockReconcilingService(ctrl)
	service := newTestService(t, reconciler)

	reconciler.EXPECT().
		ReconcileAll(gomock.Any()).
		Return(&domain.SyncSummary{Total: 3, Succeeded: 2, Failed: 1}, nil)

	require.True(t, service.begin())
	service.syncAll(context.Background())

	status := service.GetStatus()
	assert.False(t, service.IsRunning())
	assert.Equal(t, &domain.SyncSummary{Total: 3, Succeeded: 2, Failed: 1}, status["last_summary"])
	assert.Empty(t, status["last_error"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestStatsSyncService_syncAllError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconciler := mocks.NewMockReconcilingService(ctrl)
	service := newTestService(t, reconciler)

	reconciler.EXPECT().
		ReconcileAll(gomock.Any()).
		Return(nil, errors.New("database down"))

	require.True(t, service.begin())
	service.syncAll(context.Background())

	status := service.GetStatus()
	assert.False(t, service.IsRunning())
	assert.Equal(t, "database down", status["last_error"])
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestStatsSyncService_TriggerManualSyncWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconciler := mocks.NewMockReconcilingService(ctrl)
	service := newTestService(t, reconciler)

	require.True(t, service.begin())
	assert.False(t, service.TriggerManualSync())
	assert.True(t, service.IsRunning())
}

func TestStatsSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconciler := mocks.NewMockReconcilingService(ctrl)
	service := newTestService(t, reconciler)

	done := make(chan struct{})
	reconciler.EXPECT().
		ReconcileAll(gomock.Any()).
		DoAndReturn(func(_ context.Context) (*domain.SyncSummary, error) {
			close(done)
			return &domain.SyncSummary{}, nil
		})

	assert.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciliação manual não executada")
	}

	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestStatsSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := newTestService(t, mocks.NewMockReconcilingService(ctrl))

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
