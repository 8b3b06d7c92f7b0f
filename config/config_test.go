package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
game:
  seed_count: 48
  region_shape: disc
  random_seed: 7
log_level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 48, cfg.Game.SeedCount)
	require.Equal(t, "disc", cfg.Game.RegionShape)
	require.NotNil(t, cfg.Game.RandomSeed)
	require.Equal(t, uint64(7), *cfg.Game.RandomSeed)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: {}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 24, cfg.Game.SeedCount)
	require.Equal(t, "square", cfg.Game.RegionShape)
	require.Nil(t, cfg.Game.RandomSeed)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
