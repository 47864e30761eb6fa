package migration

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

const DefaultMigrationsDir = "migrations"

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

var ErrInvalidDirection = errors.New("invalid migration direction")

// Run aplica (up) ou desfaz (down, um passo) as migrações do diretório informado
func Run(dsn, dir string, direction Direction) error {
	if direction != DirectionUp && direction != DirectionDown {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	m, err := open(dsn, dir)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case DirectionUp:
		err = m.Up()
	case DirectionDown:
		err = m.Steps(-1)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logrus.WithField("direction", direction).Info("Nenhuma migração a aplicar")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s: %w", direction, err)
	}

	logrus.WithField("direction", direction).Info("Migrações aplicadas com sucesso")
	return nil
}

// Version retorna a versão atual do schema; 0 quando nenhuma migração foi aplicada
func Version(dsn, dir string) (uint, bool, error) {
	m, err := open(dsn, dir)
	if err != nil {
		return 0, false, err
	}
	defer func() { _, _ = m.Close() }()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get migration version: %w", err)
	}

	return version, dirty, nil
}

func open(dsn, dir string) (*migrate.Migrate, error) {
	if absPath, err := filepath.Abs(dir); err == nil {
		dir = absPath
	}

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return m, nil
}
