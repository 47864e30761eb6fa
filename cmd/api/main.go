package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica"
	"github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/appmetricaclient"
	"github.com/vfg2006/influencer-stats-api/infrastructure/lock"
	"github.com/vfg2006/influencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/influencer-stats-api/internal/api"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/scheduler"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/referrer"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	referrerRepo := repository.NewReferrerRepository(pgConn)

	appMetricaClient := appmetricaclient.NewClient(&cfg.AppMetrica)
	integrator := appmetrica.New(appmetrica.NewSettings(&cfg.AppMetrica), appMetricaClient)

	var locker reconciling.Locker
	var closeRedis func() error
	if cfg.Redis.Enabled {
		redisClient := lock.NewClient(cfg.Redis)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis indisponível, reconciliações seguirão sem lock")
		} else {
			logrus.WithField("addr", cfg.Redis.Addr).Info("Conexão com Redis estabelecida com sucesso")
		}
		locker = lock.NewRedisLocker(redisClient, cfg.Redis.LockTTL)
		closeRedis = redisClient.Close
	}

	authenticator := authenticating.NewService(referrerRepo, cfg)
	referrerService := referrer.NewService(referrerRepo, cfg)
	reconciler := reconciling.NewService(referrerRepo, integrator, locker, cfg)

	statsSyncService := scheduler.NewStatsSyncService(reconciler, cfg)
	if err := statsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de estatísticas")
	}

	server, err := api.New(cfg, api.Dependencies{
		DB:              pgConn,
		Authenticator:   authenticator,
		ReferrerService: referrerService,
		Reconciler:      reconciler,
		StatsSync:       statsSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	server.OnShutdown(pgConn.Close)
	if closeRedis != nil {
		server.OnShutdown(closeRedis)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
