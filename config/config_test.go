package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdias/shutbox/winprob"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxTileValue)
	assert.Equal(t, winprob.OneDieWhenMaxOpenAtMostSix, cfg.Policy())
	assert.False(t, cfg.PreferSingleDie)
	assert.Equal(t, 10000, cfg.AutoplayGames)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shutbox.yaml")
	contents := []byte("max_tile_value: 9\none_die_policy: sum-below-six\nprefer_single_die: true\n")
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.MaxTileValue)
	assert.Equal(t, winprob.OneDieWhenSumBelowSix, cfg.Policy())
	assert.True(t, cfg.PreferSingleDie)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad policy", func(c *Config) { c.OneDiePolicy = "on-tuesdays" }},
		{"tile value too big", func(c *Config) { c.MaxTileValue = 99 }},
		{"tile value zero", func(c *Config) { c.MaxTileValue = 0 }},
		{"no games", func(c *Config) { c.AutoplayGames = 0 }},
		{"negative workers", func(c *Config) { c.AutoplayWorkers = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/shutbox.yaml")
	assert.Error(t, err)
}
