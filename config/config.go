// SPDX-License-Identifier: MIT

// Package config loads the transitd daemon settings.
//
// Sources, later ones winning: built-in defaults, an optional YAML file,
// then TRANSIT_* environment variables. The merged result is checked with
// validator struct tags.
//
//	TRANSIT_ADDR       listen address            (default ":8080")
//	TRANSIT_STORE      "yaml" or "postgres"      (default "yaml")
//	TRANSIT_DATA       YAML network file         (default "network.yaml")
//	TRANSIT_DSN        PostgreSQL connection URL (required for postgres)
//	TRANSIT_SEED       event RNG seed, 0 = time  (default 0)
//	TRANSIT_LOG_LEVEL  debug|info|warn|error     (default "info")
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreYAML     = "yaml"
	StorePostgres = "postgres"
)

var (
	// ErrInvalidEnv reports an environment variable that does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment variable")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config holds daemon settings.
type Config struct {
	Addr            string        `yaml:"addr" validate:"required"`
	Store           string        `yaml:"store" validate:"oneof=yaml postgres"`
	Data            string        `yaml:"data" validate:"required_if=Store yaml"`
	DSN             string        `yaml:"dsn" validate:"required_if=Store postgres"`
	Seed            int64         `yaml:"seed"`
	LogLevel        string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	TransferPenalty float64       `yaml:"transfer_penalty" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:            ":8080",
		Store:           StoreYAML,
		Data:            "network.yaml",
		LogLevel:        "info",
		TransferPenalty: 1_000_000,
		ShutdownTimeout: 15 * time.Second,
	}
}

// Load merges defaults, the YAML file at path (skipped when path is
// empty) and the process environment, then validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from TRANSIT_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"TRANSIT_ADDR":      &c.Addr,
		"TRANSIT_STORE":     &c.Store,
		"TRANSIT_DATA":      &c.Data,
		"TRANSIT_DSN":       &c.DSN,
		"TRANSIT_LOG_LEVEL": &c.LogLevel,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	if v, ok := lookup("TRANSIT_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TRANSIT_SEED=%q: %w", ErrInvalidEnv, v, err)
		}
		c.Seed = seed
	}

	return nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog level; unknown values give Info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
