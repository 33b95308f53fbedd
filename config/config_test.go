package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 10000, cfg.Seed.Count)
	assert.Equal(t, 1000, cfg.Seed.IDOffset)
	assert.Equal(t, 1000, cfg.Seed.ProgressEvery)
	assert.True(t, cfg.Seed.Clear())
	assert.Equal(t, "flights.seeded", cfg.Kafka.SeedTopic)
	assert.Equal(t, "flightseed", cfg.Metrics.Namespace)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  user: ftms
  password: secret
  name: ftms
seed:
  count: 250
  clear_existing: false
  random_seed: 42
redis:
  addr: localhost:6379
kafka:
  brokers: ["localhost:9092"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost port=5432 user=ftms password=secret dbname=ftms sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 250, cfg.Seed.Count)
	assert.False(t, cfg.Seed.Clear())
	assert.Equal(t, uint64(42), cfg.Seed.RandomSeed)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FLIGHTSEED_DB_PATH", "/tmp/ftms.db")
	t.Setenv("FLIGHTSEED_COUNT", "77")

	cfg, err := LoadConfig(writeConfig(t, "seed:\n  count: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ftms.db", cfg.Database.Path)
	assert.Equal(t, 77, cfg.Seed.Count)
}

func TestLoadConfig_InvalidCount(t *testing.T) {
	t.Setenv("FLIGHTSEED_COUNT", "many")

	_, err := LoadConfig(writeConfig(t, ""))
	assert.Error(t, err)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "database:\n  driver: oracle\n"))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "seed: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config")
}
