// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfig         = "ESTKIT_CONFIG"
	defaultConfigFile = "estkit.toml"
)

// Config holds CLI defaults. Flags override it; it overrides DefaultConfig.
type Config struct {
	LogLevel           string
	LogTimestamp       bool
	LogNoColor         bool
	DefaultConduitType string
	DefaultVoltage     float64
	DefaultMaterial    string
	DefaultRatingC     int
	Output             string
}

// estkit.toml key mapping.
type fileConfig struct {
	LogLevel           string  `toml:"log_level"`
	LogTimestamp       bool    `toml:"log_timestamp"`
	LogNoColor         bool    `toml:"log_nocolor"`
	DefaultConduitType string  `toml:"default_conduit_type"`
	DefaultVoltage     float64 `toml:"default_voltage"`
	DefaultMaterial    string  `toml:"default_material"`
	DefaultRatingC     int     `toml:"default_rating_c"`
	Output             string  `toml:"output"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:           "warn",
		LogTimestamp:       false,
		DefaultConduitType: "EMT",
		DefaultVoltage:     480,
		DefaultMaterial:    "copper",
		DefaultRatingC:     75,
		Output:             "text",
	}
}

// resolveConfigPath picks the --config flag, then ESTKIT_CONFIG, then
// ./estkit.toml. explicit reports whether the path was asked for, in which
// case a missing file is an error.
func resolveConfigPath(flag string) (path string, explicit bool) {
	if p := strings.TrimSpace(flag); p != "" {
		return p, true
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, true
	}

	return defaultConfigFile, false
}

// loadConfig overlays the TOML file at path on DefaultConfig.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load estkit config: %w", err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_timestamp") {
		cfg.LogTimestamp = raw.LogTimestamp
	}
	if meta.IsDefined("log_nocolor") {
		cfg.LogNoColor = raw.LogNoColor
	}
	if meta.IsDefined("default_conduit_type") {
		cfg.DefaultConduitType = strings.TrimSpace(raw.DefaultConduitType)
	}
	if meta.IsDefined("default_voltage") {
		cfg.DefaultVoltage = raw.DefaultVoltage
	}
	if meta.IsDefined("default_material") {
		cfg.DefaultMaterial = strings.TrimSpace(raw.DefaultMaterial)
	}
	if meta.IsDefined("default_rating_c") {
		cfg.DefaultRatingC = raw.DefaultRatingC
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load estkit config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load estkit config: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Output {
	case "text", "json", "msgpack":
	default:
		return fmt.Errorf("unsupported output %q (expected text, json or msgpack)", c.Output)
	}
	if !(c.DefaultVoltage > 0) {
		return fmt.Errorf("default_voltage must be positive, got %v", c.DefaultVoltage)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}

	return nil
}
