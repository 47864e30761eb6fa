package reconciling

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	integratormocks "github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/mocks"
	repomocks "github.com/vfg2006/influencer-stats-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
)

const expectedLinkR1 = "https://4567.redirect.appmetrica.yandex.com/?appmetrica_tracking_id=M&ad_content=R1"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AppMetrica.AppID = "4567"
	cfg.AppMetrica.RedirectDomain = "redirect.appmetrica.yandex.com"
	cfg.AppMetrica.MasterTrackerID = "M"
	cfg.StatsSync.MaxConcurrentJobs = 2
	cfg.Complete()
	return cfg
}

type fixture struct {
	repo       *repomocks.MockReferrerRepository
	integrator *integratormocks.MockIntegrator
	locker     *mocks.MockLocker
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		repo:       repomocks.NewMockReferrerRepository(ctrl),
		integrator: integratormocks.NewMockIntegrator(ctrl),
		locker:     mocks.NewMockLocker(ctrl),
	}
}

func (f *fixture) service(withLocker bool) ReconcilingService {
	if withLocker {
		return NewService(f.repo, f.integrator, f.locker, testConfig())
	}
	return NewService(f.repo, f.integrator, nil, testConfig())
}

func TestReconcile_NotFoundPerformsNoFetch(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(gomock.Any(), "unknown").Return(nil, nil)
	f.integrator.EXPECT().FetchAcquisition(gomock.Any(), gomock.Any()).Times(0)
	f.integrator.EXPECT().FetchRegistrations(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Times(0)

	result, err := f.service(false).Reconcile(context.Background(), "unknown")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var reconcileErr *ReconcileError
	require.True(t, errors.As(err, &reconcileErr))
	assert.Equal(t, apiErrors.ErrReferrerNotFound, reconcileErr.Code)
	assert.Equal(t, "unknown", reconcileErr.ReferrerID)
}

func TestReconcile_EmptyIDIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service(false).Reconcile(context.Background(), "")

	assert.True(t, IsNotFound(err))
}

func TestReconcile_EndToEnd(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(gomock.Any(), "R1").Return(&domain.Referrer{
		ID:            "R1",
		Name:          "Ana",
		TrackerID:     "R1",
		Clicks:        999,
		Installs:      999,
		Registrations: 999,
		Earnings:      49,
	}, nil)
	f.integrator.EXPECT().FetchAcquisition(gomock.Any(), "R1").Return(domain.AcquisitionStats{Clicks: 12, Installs: 45})
	f.integrator.EXPECT().FetchRegistrations(gomock.Any(), "R1").Return(3)
	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Referrer) error {
		assert.Equal(t, 12, r.Clicks)
		assert.Equal(t, 45, r.Installs)
		assert.Equal(t, 3, r.Registrations)
		assert.Equal(t, domain.Earnings(2), r.Earnings)
		assert.Equal(t, expectedLinkR1, r.ReferralLink)
		return nil
	})

	result, err := f.service(false).Reconcile(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, &domain.StatsResult{
		Name:          "Ana",
		Clicks:        12,
		Installs:      45,
		Registrations: 3,
		Earnings:      "2.00",
		ReferralLink:  expectedLinkR1,
	}, result)
}

func TestReconcile_UsesTrackerIDForAttribution(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(gomock.Any(), "R1").Return(&domain.Referrer{ID: "R1", Name: "Ana", TrackerID: "legacy-tag"}, nil)
	f.integrator.EXPECT().FetchAcquisition(gomock.Any(), "legacy-tag").Return(domain.AcquisitionStats{})
	f.integrator.EXPECT().FetchRegistrations(gomock.Any(), "legacy-tag").Return(0)
	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service(false).Reconcile(context.Background(), "R1")

	require.NoError(t, err)
	assert.Contains(t, result.ReferralLink, "ad_content=legacy-tag")
}

func TestReconcile_UpstreamZeroStillPersists(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(gomock.Any(), "R1").Return(&domain.Referrer{ID: "R1", Name: "Ana", Clicks: 10, Installs: 40, Earnings: 2}, nil)
	f.integrator.EXPECT().FetchAcquisition(gomock.Any(), "R1").Return(domain.AcquisitionStats{})
	f.integrator.EXPECT().FetchRegistrations(gomock.Any(), "R1").Return(0)
	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Referrer) error {
		assert.Zero(t, r.Clicks)
		assert.Zero(t, r.Installs)
		assert.Zero(t, r.Earnings)
		return nil
	})

	result, err := f.service(false).Reconcile(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, "0.00", result.Earnings)
	assert.Equal(t, 0, result.Clicks)
}

func TestReconcile_PersistenceFailureIsInternal(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(gomock.Any(), "R1").Return(&domain.Referrer{ID: "R1", Name: "Ana"}, nil)
	f.integrator.EXPECT().FetchAcquisition(gomock.Any(), "R1").Return(domain.AcquisitionStats{Clicks: 1, Installs: 20})
	f.integrator.EXPECT().FetchRegistrations(gomock.Any(), "R1").Return(1)
	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	result, err := f.service(false).Reconcile(context.Background(), "R1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.False(t, IsNotFound(err))

	var reconcileErr *ReconcileError
	require.True(t, errors.As(err, &reconcileErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, reconcileErr.Code)
}

func TestReconcile_LoadFailureIsInternal(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(gomock.Any(), "R1").Return(nil, errors.New("connection refused"))

	_, err := f.service(false).Reconcile(context.Background(), "R1")

	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestReconcile_HoldsLockUntilPersisted(t *testing.T) {
	f := newFixture(t)
	var released atomic.Bool

	gomock.InOrder(
		f.locker.EXPECT().Acquire(gomock.Any(), "R1").Return(func() { released.Store(true) }, nil),
		f.repo.EXPECT().GetByID(gomock.Any(), "R1").Return(&domain.Referrer{ID: "R1", Name: "Ana"}, nil),
	)
	f.integrator.EXPECT().FetchAcquisition(gomock.Any(), "R1").Return(domain.AcquisitionStats{})
	f.integrator.EXPECT().FetchRegistrations(gomock.Any(), "R1").Return(0)
	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *domain.Referrer) error {
		assert.False(t, released.Load())
		return nil
	})

	_, err := f.service(true).Reconcile(context.Background(), "R1")

	require.NoError(t, err)
	assert.True(t, released.Load())
}

func TestReconcile_LockFailureProceeds(t *testing.T) {
	f := newFixture(t)

	f.locker.EXPECT().Acquire(gomock.Any(), "R1").Return(nil, errors.New("redis down"))
	f.repo.EXPECT().GetByID(gomock.Any(), "R1").Return(&domain.Referrer{ID: "R1", Name: "Ana"}, nil)
	f.integrator.EXPECT().FetchAcquisition(gomock.Any(), "R1").Return(domain.AcquisitionStats{Clicks: 2, Installs: 3})
	f.integrator.EXPECT().FetchRegistrations(gomock.Any(), "R1").Return(1)
	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service(true).Reconcile(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Installs)
}

func TestReconcileAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any()).Return([]*domain.Referrer{
		{ID: "R1", Name: "Ana"},
		{ID: "R2", Name: "Bia"},
		{ID: "R3", Name: "Caio"},
	}, nil)

	for _, id := range []string{"R1", "R2", "R3"} {
		f.repo.EXPECT().GetByID(gomock.Any(), id).Return(&domain.Referrer{ID: id, Name: id}, nil)
		f.integrator.EXPECT().FetchAcquisition(gomock.Any(), id).Return(domain.AcquisitionStats{Clicks: 1, Installs: 20})
		f.integrator.EXPECT().FetchRegistrations(gomock.Any(), id).Return(1)
	}

	f.repo.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Referrer) error {
		if r.ID == "R2" {
			return errors.New("write failed")
		}
		return nil
	}).Times(3)

	summary, err := f.service(false).ReconcileAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.SyncSummary{Total: 3, Succeeded: 2, Failed: 1}, summary)
}

func TestReconcileAll_ListFailure(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	summary, err := f.service(false).ReconcileAll(context.Background())

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrFetchReferrers)
}

func TestReconcileAll_Empty(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any()).Return([]*domain.Referrer{}, nil)

	summary, err := f.service(false).ReconcileAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.SyncSummary{}, summary)
}
