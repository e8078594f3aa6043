// Package config loads runtime settings for the identity editor from an
// optional .env file and IDENTITY_EDITOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/validation"
)

// Config holds every setting the CLI and HTTP server read.
type Config struct {
	Addr            string        `env:"IDENTITY_EDITOR_ADDR"             envDefault:":8080"`
	PackageSource   string        `env:"IDENTITY_EDITOR_PACKAGE"`
	CatalogSource   string        `env:"IDENTITY_EDITOR_CATALOG"`
	Validation      string        `env:"IDENTITY_EDITOR_VALIDATION"       envDefault:"permissive"`
	Duplicates      string        `env:"IDENTITY_EDITOR_DUPLICATES"       envDefault:"allow"`
	LogLevel        string        `env:"IDENTITY_EDITOR_LOG_LEVEL"        envDefault:"info"`
	Theme           string        `env:"IDENTITY_EDITOR_THEME"`
	ThemeVariant    string        `env:"IDENTITY_EDITOR_THEME_VARIANT"`
	AllowHTTP       bool          `env:"IDENTITY_EDITOR_ALLOW_HTTP"`
	RequestTimeout  time.Duration `env:"IDENTITY_EDITOR_REQUEST_TIMEOUT"  envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"IDENTITY_EDITOR_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Metrics         bool          `env:"IDENTITY_EDITOR_METRICS"          envDefault:"true"`
}

// Load reads the given .env files, when present, and parses the environment.
// Values already exported in the environment win over .env entries. Missing
// .env files are ignored; with no files, ".env" is tried.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := c.ValidationPolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.DuplicatePolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ValidationPolicy parses the Validation setting.
func (c Config) ValidationPolicy() (validation.Policy, error) {
	return validation.ParsePolicy(c.Validation)
}

// DuplicatePolicy parses the Duplicates setting.
func (c Config) DuplicatePolicy() (form.DuplicatePolicy, error) {
	return form.ParseDuplicatePolicy(c.Duplicates)
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	raw := strings.TrimSpace(c.LogLevel)
	if raw == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}

// BinderOptions translates the policies into form options. Callers should
// run Validate first; invalid values fall back to the defaults.
func (c Config) BinderOptions() []form.Option {
	var options []form.Option
	if policy, err := c.ValidationPolicy(); err == nil {
		options = append(options, form.WithValidationPolicy(policy))
	}
	if policy, err := c.DuplicatePolicy(); err == nil {
		options = append(options, form.WithDuplicatePolicy(policy))
	}
	return options
}
