package handler

import (
	"net/http"

	"github.com/vfg2006/influencer-stats-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/referrer"
	"github.com/vfg2006/influencer-stats-api/pkg/metrics"
	"github.com/vfg2006/influencer-stats-api/pkg/middleware"
)

func Healthcheck(db Pinger, metricsToken string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:        "/metrics",
			Method:      http.MethodGet,
			Handler:     metrics.Handler(),
			Middlewares: []func(http.Handler) http.Handler{middleware.MetricsAuth(metricsToken)},
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
			Path:        "/v1/referrers/:id/token",
			Method:      http.MethodPost,
			Handler:     IssueReferrerToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Referrers(service referrer.ReferrerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/referrers",
			Method:      http.MethodPost,
			Handler:     CreateReferrer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/referrers",
			Method:      http.MethodGet,
			Handler:     ListReferrers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/referrers/:id",
			Method:      http.MethodGet,
			Handler:     GetReferrer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Stats(service reconciling.ReconcilingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stats",
			Method:      http.MethodGet,
			Handler:     GetMyStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReferrerOnly()},
		},
		{
			Path:        "/v1/referrers/:id/stats",
			Method:      http.MethodGet,
			Handler:     GetReferrerStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(runner StatsSyncRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/stats-sync/run",
			Method:      http.MethodPost,
			Handler:     RunStatsSync(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
