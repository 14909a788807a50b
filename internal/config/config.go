// Package config loads esdiag settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dm/esdiag/internal/i18n"
	"github.com/dm/esdiag/internal/logparse"
	"github.com/dm/esdiag/internal/store"
)

// Config holds the settings of one esdiag invocation.
//
// Example YAML:
//
//	locale: en
//	output_dir: reports
//	cache_size: 64
//	max_line_bytes: 1048576
//	metrics_file: reports/esdiag.prom
//	parallel: 4
type Config struct {
	// Locale is the report language tag, "en" or any "zh" variant.
	Locale string `yaml:"locale"`

	// OutputDir receives the report, the cases directory and run.json.
	OutputDir string `yaml:"output_dir"`

	// Template is an optional custom report skeleton with {{NAME}} slots.
	Template string `yaml:"template"`

	CacheSize    int    `yaml:"cache_size"`
	MaxLineBytes int    `yaml:"max_line_bytes"`
	MetricsFile  string `yaml:"metrics_file"`

	// Parallel bounds the number of bundles the batch command analyzes at once.
	Parallel int `yaml:"parallel"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		Locale:       "en",
		OutputDir:    "output",
		CacheSize:    store.DefaultCacheSize,
		MaxLineBytes: logparse.DefaultMaxLineBytes,
		Parallel:     4,
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return cfg, fmt.Errorf("failed to load config from %q: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return cfg, fmt.Errorf("failed to parse config from %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed for %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and the locale tag. Every violation is
// reported, not only the first.
func (c Config) Validate() error {
	var errs *multierror.Error
	if _, err := i18n.Parse(c.Locale); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.OutputDir == "" {
		errs = multierror.Append(errs, errors.New("output_dir is required"))
	}
	if c.CacheSize < store.MinCacheSize {
		errs = multierror.Append(errs, fmt.Errorf("cache_size must be at least %d, got %d", store.MinCacheSize, c.CacheSize))
	}
	if c.MaxLineBytes < 1024 {
		errs = multierror.Append(errs, fmt.Errorf("max_line_bytes must be at least 1024, got %d", c.MaxLineBytes))
	}
	if c.Parallel <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("parallel must be positive, got %d", c.Parallel))
	}
	return errs.ErrorOrNil()
}

// ParsedLocale returns the Locale of c.Locale, defaulting to English.
func (c Config) ParsedLocale() i18n.Locale {
	l, _ := i18n.Parse(c.Locale)
	return l
}
