package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "PatientsTable", cfg.Store.PatientsTable)
	assert.Equal(t, "DoctorsTable", cfg.Store.DoctorsTable)
	assert.Equal(t, "AppointmentsTable", cfg.Store.AppointmentsTable)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Empty(t, cfg.Notify.Topic)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("STORE_DRIVER", "MONGO")
	t.Setenv("DOCTORS_TABLE", "docs")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("NOTIFY_TOPIC", "medtrack.registrations")

	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	assert.Equal(t, "docs", cfg.Store.DoctorsTable)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "medtrack.registrations", cfg.Notify.Topic)
}

func TestLoad_EnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("SESSION_SECRET=from-file\nSESSION_TTL=30m\n"), 0o600))

	cfg, err := load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Session.Secret)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}

func TestLoad_IsLocalForcesLocalhost(t *testing.T) {
	t.Setenv("IS_LOCAL", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
}
