// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "ESTKIT_LOG_LEVEL"
	EnvLogTimestamp = "ESTKIT_LOG_TIMESTAMP"
	EnvLogNoColor   = "ESTKIT_LOG_NOCOLOR"
)

// newLogger builds the CLI logger on w. Environment variables override the
// config; every event carries the run id.
func newLogger(w io.Writer, cfg Config) zerolog.Logger {
	applyEnvOverrides(&cfg)

	level, _ := parseLevel(cfg.LogLevel)
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.LogNoColor,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(out).Level(level).With().
		Str("app", "estkit").
		Str("run", uuid.NewString())
	if cfg.LogTimestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

func applyEnvOverrides(cfg *Config) {
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if _, ok := parseLevel(raw); ok {
			cfg.LogLevel = raw
		}
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.LogTimestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.LogNoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "", "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
