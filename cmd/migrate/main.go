package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-stats-api/infrastructure/migration"
	"github.com/vfg2006/influencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/referrer"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

const usage = "Uso: migrate <up|down|version|seed ARQUIVO>"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		return exitFailure
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao carregar configuração: %v\n", err)
		return exitFailure
	}
	log.Setup(cfg.App.LogLevel)

	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = migration.DefaultMigrationsDir
	}

	switch command := os.Args[1]; command {
	case "up", "down":
		if err := migration.Run(cfg.Database.DSN, dir, migration.Direction(command)); err != nil {
			logrus.WithError(err).Error("Falha ao executar migração")
			return exitFailure
		}

	case "version":
		version, dirty, err := migration.Version(cfg.Database.DSN, dir)
		if err != nil {
			logrus.WithError(err).Error("Falha ao consultar versão do schema")
			return exitFailure
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

	case "seed":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, usage)
			return exitFailure
		}
		return seed(cfg, os.Args[2])

	default:
		fmt.Fprintf(os.Stderr, "Comando inválido: %q\n%s\n", command, usage)
		return exitFailure
	}

	return exitSuccess
}

func seed(cfg *config.Config, path string) int {
	file, err := os.Open(path)
	if err != nil {
		logrus.WithError(err).Error("Erro ao abrir arquivo de influenciadores")
		return exitFailure
	}
	defer file.Close()

	names, err := migration.ReadNames(file)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler arquivo de influenciadores")
		return exitFailure
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return exitFailure
	}
	defer conn.Close()

	service := referrer.NewService(repository.NewReferrerRepository(conn), cfg)
	result := migration.SeedReferrers(ctx, service, names)

	for _, created := range result.Created {
		fmt.Printf("%s\t%s\t%s\n", created.ID, created.Name, created.ReferralLink)
	}

	if result.Failed > 0 {
		return exitFailure
	}
	return exitSuccess
}
