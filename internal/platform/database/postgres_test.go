package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5433",
		User:     "tickets",
		Password: "p@ss word",
		DBName:   "event_ticketing",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://tickets:p%40ss%20word@db:5433/event_ticketing?sslmode=disable", cfg.DSN())
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
