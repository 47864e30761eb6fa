package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/internal/api/handler"
	"github.com/vfg2006/influencer-stats-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/referrer"
	"github.com/vfg2006/influencer-stats-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	DB              handler.Pinger
	Authenticator   authenticating.Authenticator
	ReferrerService referrer.ReferrerService
	Reconciler      reconciling.ReconcilingService
	StatsSync       handler.StatsSyncRunner
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Authenticator == nil || deps.ReferrerService == nil || deps.Reconciler == nil {
		return nil, fmt.Errorf("api: authenticator, referrer service and reconciler are required")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.DB, config.Server.MetricsToken)...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.Referrers(deps.ReferrerService)...),
		router.WithRoutes(handler.Stats(deps.Reconciler)...),
		router.WithRoutes(handler.CronJobs(deps.StatsSync)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
			// AppMetrica pode levar até o timeout por chamada em cada fetch
			WriteTimeout: config.AppMetrica.RequestTimeout + 15*time.Second,
		},
	}, nil
}

// OnShutdown registra funções de limpeza executadas depois que o HTTP para de aceitar conexões
func (s *Server) OnShutdown(fn func() error) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	for _, fn := range s.onShutdown {
		if err := fn(); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}
