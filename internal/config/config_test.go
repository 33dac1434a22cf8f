package config_test

import (
	"os"
	"path/filepath"
	"reserved/internal/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "top10milliondomains.csv", cfg.Input.Path)
	require.Equal(t, "10k-reserved-domains.csv", cfg.Output.Path)
	require.Equal(t, "05d7257769904da71a864601b37e0e5522b7ac45e26259191201f71c236ac5ae", cfg.Output.ExpectedSHA256)
	require.Equal(t, 10000, cfg.Limit)
	require.Empty(t, cfg.Rules.Path)
	require.Empty(t, cfg.Metrics.TextfilePath)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
input:
  path: in.csv
output:
  path: out.csv
limit: 25
metrics:
  textfilePath: reserved.prom
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "in.csv", cfg.Input.Path)
	require.Equal(t, "out.csv", cfg.Output.Path)
	require.Equal(t, 25, cfg.Limit)
	require.Equal(t, "reserved.prom", cfg.Metrics.TextfilePath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LIMIT", "3")
	t.Setenv("OUTPUT_PATH", "env.csv")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Limit)
	require.Equal(t, "env.csv", cfg.Output.Path)
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	t.Setenv("LIMIT", "0")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
