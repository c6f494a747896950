// Package config loads runtime settings for the robot. Everything has a
// sane default; the engine runs robots with no arguments, so settings
// arrive through ANFIELD_* environment variables or an optional config
// file next to the binary.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Strategy is the scoring profile name, resolved by the strategy
	// package. Empty means the default profile.
	Strategy string
	// Debug enables verbose logging to stderr. Stdout stays reserved for
	// move output.
	Debug bool
	// Workers is the goroutine count for batch scoring. Values below 2
	// select the sequential path.
	Workers int
	// FloodFillBound caps flood-fill expansion per placement; 0 means
	// unbounded.
	FloodFillBound int
}

func defaults(v *viper.Viper) {
	v.SetDefault("strategy", "advanced")
	v.SetDefault("debug", false)
	v.SetDefault("workers", 1)
	v.SetDefault("flood_fill_bound", 0)
}

// Load reads settings from the environment and, when present, a
// filler.yaml file in the working directory. A missing file is fine;
// a malformed one is not.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("anfield")
	v.AutomaticEnv()

	v.SetConfigName("filler")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	cfg := &Config{
		Strategy:       v.GetString("strategy"),
		Debug:          v.GetBool("debug"),
		Workers:        v.GetInt("workers"),
		FloodFillBound: v.GetInt("flood_fill_bound"),
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.FloodFillBound < 0 {
		cfg.FloodFillBound = 0
	}
	return cfg, nil
}
