package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestFromEnv(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		t.Setenv(EnvAddr, ":9090")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvMaxBatchSize, "25")
		t.Setenv(EnvShutdownTimeout, "3s")
		t.Setenv(EnvMetricsEnabled, "false")

		cfg, err := FromEnv(Default())
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 25, cfg.MaxBatchSize)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.False(t, cfg.MetricsEnabled)
		assert.Equal(t, Default().BatchConcurrency, cfg.BatchConcurrency)
	})

	t.Run("reports every malformed variable", func(t *testing.T) {
		t.Setenv(EnvMaxBatchSize, "many")
		t.Setenv(EnvShutdownTimeout, "soon")

		_, err := FromEnv(Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvMaxBatchSize)
		assert.Contains(t, err.Error(), EnvShutdownTimeout)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idnumbers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nlog_format: text\nshutdown_timeout: 2s\n"), 0o600))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, Default().MaxBatchSize, cfg.MaxBatchSize)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idnumbers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nbatch_concurrency: 4\n"), 0o600))
	t.Setenv(EnvAddr, ":6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr, "environment wins over the file")
	assert.Equal(t, 4, cfg.BatchConcurrency)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	cfg.MaxBatchSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
	assert.Contains(t, err.Error(), "MaxBatchSize")
}
