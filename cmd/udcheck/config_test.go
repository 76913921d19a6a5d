package main

import (
	"log/slog"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseConfig_Defaults checks envDefault values.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, Config{Output: "text", MaxGenerations: 0, LogLevel: "warn", CacheSize: 1024}, cfg)
}

// TestParseConfig_Overrides reads every variable.
func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{
		"UDCHECK_OUTPUT":          "yaml",
		"UDCHECK_MAX_GENERATIONS": "50",
		"UDCHECK_LOG_LEVEL":       "DEBUG",
		"UDCHECK_CACHE_SIZE":      "8",
	}})
	require.NoError(t, err)
	assert.Equal(t, Config{Output: "yaml", MaxGenerations: 50, LogLevel: "DEBUG", CacheSize: 8}, cfg)

	lvl, err := parseLevel(cfg.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

// TestParseConfig_Invalid rejects bad values.
func TestParseConfig_Invalid(t *testing.T) {
	for name, environ := range map[string]map[string]string{
		"output":      {"UDCHECK_OUTPUT": "json"},
		"negative":    {"UDCHECK_MAX_GENERATIONS": "-1"},
		"level":       {"UDCHECK_LOG_LEVEL": "chatty"},
		"not a count": {"UDCHECK_CACHE_SIZE": "many"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseConfig(env.Options{Environment: environ})
			assert.Error(t, err)
		})
	}
}
