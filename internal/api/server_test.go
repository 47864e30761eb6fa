package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	authmocks "github.com/vfg2006/influencer-stats-api/internal/usecases/authenticating/mocks"
	reconcilemocks "github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling/mocks"
	referrermocks "github.com/vfg2006/influencer-stats-api/internal/usecases/referrer/mocks"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
)

func TestServer_Routes(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	authenticator := authmocks.NewMockAuthenticator(ctrl)
	reconciler := reconcilemocks.NewMockReconcilingService(ctrl)

	srv, err := New(&config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
	}, Dependencies{
		Authenticator:   authenticator,
		ReferrerService: referrermocks.NewMockReferrerService(ctrl),
		Reconciler:      reconciler,
	})
	require.NoError(t, err)

	t.Run("healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stats exige token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("influenciador consulta as próprias estatísticas", func(t *testing.T) {
		authenticator.EXPECT().ValidateToken("referrer-token").
			Return(&domain.Claims{Role: domain.RoleReferrer, ReferrerID: "R1"}, nil)
		reconciler.EXPECT().Reconcile(gomock.Any(), "R1").
			Return(&domain.StatsResult{Name: "Alice", Earnings: "0.00"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
		req.Header.Set("Authorization", "Bearer referrer-token")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("influenciador não acessa rotas de admin", func(t *testing.T) {
		authenticator.EXPECT().ValidateToken("referrer-token").
			Return(&domain.Claims{Role: domain.RoleReferrer, ReferrerID: "R1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/referrers", nil)
		req.Header.Set("Authorization", "Bearer referrer-token")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("cron sem agendador", func(t *testing.T) {
		authenticator.EXPECT().ValidateToken("admin-token").
			Return(&domain.Claims{Role: domain.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cron/stats-sync/run", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(&config.Config{}, Dependencies{})
	assert.Error(t, err)
}

func TestServer_MetricsRequiresScrapeToken(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	srv, err := New(&config.Config{
		Server: config.Server{Host: "localhost", Port: "0", MetricsToken: "scrape-secret"},
	}, Dependencies{
		Authenticator:   authmocks.NewMockAuthenticator(ctrl),
		ReferrerService: referrermocks.NewMockReferrerService(ctrl),
		Reconciler:      reconcilemocks.NewMockReconcilingService(ctrl),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer scrape-secret")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
