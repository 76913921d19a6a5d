package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds driver settings read from the environment (and an optional
// .env file). Command-line flags override these values.
type Config struct {
	Output         string `env:"UDCHECK_OUTPUT" envDefault:"text"`
	MaxGenerations int    `env:"UDCHECK_MAX_GENERATIONS" envDefault:"0"`
	LogLevel       string `env:"UDCHECK_LOG_LEVEL" envDefault:"warn"`
	CacheSize      int    `env:"UDCHECK_CACHE_SIZE" envDefault:"1024"`
}

// loadConfig reads Config from the process environment. A missing .env
// file is not an error.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	return parseConfig(env.Options{})
}

// parseConfig parses and validates Config using opts, which tests use to
// inject an environment map.
func parseConfig(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Output {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("%w: output %q (want %s or %s)", errBadConfig, c.Output, outputText, outputYAML)
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("%w: max generations %d is negative", errBadConfig, c.MaxGenerations)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// parseLevel maps debug/info/warn/error to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", errBadConfig, s)
	}

	return lvl, nil
}
