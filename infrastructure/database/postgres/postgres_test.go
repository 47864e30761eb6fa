package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/influencer-stats-api/internal/config"
)

func TestNewConnection_InvalidDSN(t *testing.T) {
	_, err := NewConnection(context.Background(), config.Database{DSN: "postgres://%zz"})

	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	conn := &Connection{DB: db}
	assert.NoError(t, conn.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
