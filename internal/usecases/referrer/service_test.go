package referrer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/influencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/influencer-stats-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
)

func newTestService(t *testing.T, ids ...string) (*Service, *mocks.MockReferrerRepository) {
	t.Helper()

	cfg := &config.Config{}
	cfg.AppMetrica.AppID = "4567"
	cfg.AppMetrica.RedirectDomain = "redirect.appmetrica.yandex.com"
	cfg.AppMetrica.MasterTrackerID = "M"
	cfg.Complete()

	repo := mocks.NewMockReferrerRepository(gomock.NewController(t))
	service := NewService(repo, cfg).(*Service)

	next := 0
	service.generateID = func() (string, error) {
		if next >= len(ids) {
			return "", errors.New("no more ids")
		}
		id := ids[next]
		next++
		return id, nil
	}

	return service, repo
}

func TestCreate(t *testing.T) {
	service, repo := newTestService(t, "abc123")

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Referrer) error {
		assert.Equal(t, "abc123", r.ID)
		assert.Equal(t, "abc123", r.TrackerID)
		assert.Equal(t, "Ana", r.Name)
		assert.Zero(t, r.Installs)
		return nil
	})

	resp, err := service.Create(context.Background(), &domain.CreateReferrerRequest{Name: "  Ana "})

	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.ID)
	assert.Equal(t, "0.00", resp.Earnings)
	assert.Equal(t, "https://4567.redirect.appmetrica.yandex.com/?appmetrica_tracking_id=M&ad_content=abc123", resp.ReferralLink)
}

func TestCreate_NameRequired(t *testing.T) {
	service, _ := newTestService(t)

	for _, request := range []*domain.CreateReferrerRequest{nil, {Name: ""}, {Name: "   "}} {
		_, err := service.Create(context.Background(), request)

		assert.ErrorIs(t, err, ErrNameRequired)

		var referrerErr *ReferrerError
		require.True(t, errors.As(err, &referrerErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, referrerErr.Code)
	}
}

func TestCreate_RetriesOnDuplicateID(t *testing.T) {
	service, repo := newTestService(t, "taken", "free")

	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: taken", repository.ErrDuplicateReferrer)),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	resp, err := service.Create(context.Background(), &domain.CreateReferrerRequest{Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, "free", resp.ID)
}

func TestCreate_GivesUpAfterRepeatedDuplicates(t *testing.T) {
	service, repo := newTestService(t, "a", "b", "c")

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateReferrer).Times(maxCreateAttempts)

	_, err := service.Create(context.Background(), &domain.CreateReferrerRequest{Name: "Ana"})

	assert.ErrorIs(t, err, ErrGenerateID)
}

func TestCreate_DatabaseError(t *testing.T) {
	service, repo := newTestService(t, "abc123")

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := service.Create(context.Background(), &domain.CreateReferrerRequest{Name: "Ana"})

	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestGet(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().GetByID(gomock.Any(), "R1").Return(&domain.Referrer{ID: "R1", Name: "Ana", Installs: 45, Earnings: 2}, nil)
	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)
	repo.EXPECT().GetByID(gomock.Any(), "broken").Return(nil, errors.New("boom"))

	resp, err := service.Get(context.Background(), "R1")
	require.NoError(t, err)
	assert.Equal(t, "2.00", resp.Earnings)

	_, err = service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReferrerNotFound)

	_, err = service.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestList(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().List(gomock.Any()).Return([]*domain.Referrer{{ID: "R1"}, {ID: "R2"}}, nil)

	resp, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "R2", resp[1].ID)
}
