// Package config provides Viper-based configuration for the shutbox
// shell and self-play runner.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/markdias/shutbox/tiles"
	"github.com/markdias/shutbox/winprob"
)

// Config is the top-level application configuration.
type Config struct {
	// MaxTileValue is the highest tile on the board; 9 and 12 are the
	// common variants, anything above 12 is madness mode.
	MaxTileValue int `mapstructure:"max_tile_value"`
	// OneDiePolicy names the single-die house rule: "never",
	// "max-open-six", or "sum-below-six".
	OneDiePolicy string `mapstructure:"one_die_policy"`
	// PreferSingleDie biases rigged rolls toward one die.
	PreferSingleDie bool `mapstructure:"prefer_single_die"`
	// AutoplayGames is the default self-play game count.
	AutoplayGames int `mapstructure:"autoplay_games"`
	// AutoplayWorkers is the self-play parallelism; 0 means GOMAXPROCS.
	AutoplayWorkers int `mapstructure:"autoplay_workers"`
	Debug           bool `mapstructure:"debug"`
}

// Policy returns the parsed one-die policy. Call Validate first.
func (c *Config) Policy() winprob.OneDiePolicy {
	p, err := winprob.ParsePolicy(c.OneDiePolicy)
	if err != nil {
		return winprob.OneDieNever
	}
	return p
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	var errs []string
	if c.MaxTileValue < 1 || c.MaxTileValue > tiles.MaxTileValue {
		errs = append(errs, fmt.Sprintf("max_tile_value must be 1-%d, got %d",
			tiles.MaxTileValue, c.MaxTileValue))
	}
	if _, err := winprob.ParsePolicy(c.OneDiePolicy); err != nil {
		errs = append(errs, err.Error())
	}
	if c.AutoplayGames < 1 {
		errs = append(errs, fmt.Sprintf("autoplay_games must be >= 1, got %d", c.AutoplayGames))
	}
	if c.AutoplayWorkers < 0 {
		errs = append(errs, fmt.Sprintf("autoplay_workers must be >= 0, got %d", c.AutoplayWorkers))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path (optional; a
// missing path falls back to defaults), applies SHUTBOX_-prefixed
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHUTBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_tile_value", 12)
	v.SetDefault("one_die_policy", "max-open-six")
	v.SetDefault("prefer_single_die", false)
	v.SetDefault("autoplay_games", 10000)
	v.SetDefault("autoplay_workers", 0)
	v.SetDefault("debug", false)
}
