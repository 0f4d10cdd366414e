// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-skf.
//
// go-skf is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeremyhahn/go-skf/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override, e.g. SKF_LOG_LEVEL.
const EnvPrefix = "SKF"

// Config represents the complete translation layer configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Vendors VendorsConfig `yaml:"vendors"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File, when set, sends logs to a size-rotated file instead of stderr.
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// MetricsConfig controls metrics collection
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// VendorsConfig narrows and extends vendor selection. The set of available
// adapters is fixed at build time; configuration can only restrict it.
type VendorsConfig struct {
	// Enabled lists the adapters eligible for dispatch. Empty means all
	// compiled-in adapters.
	Enabled []string `yaml:"enabled,omitempty"`

	// Aliases maps DEVINFO manufacturer strings to adapter names.
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from a YAML file and applies environment variable
// overrides. An empty path loads the defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 - Config file path is provided by admin/user
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg, newEnv())

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newEnv returns a viper instance resolving keys such as "log.level" from
// SKF_LOG_LEVEL.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config, env *viper.Viper) {
	if level := env.GetString("log.level"); level != "" {
		cfg.Logging.Level = level
	}
	if format := env.GetString("log.format"); format != "" {
		cfg.Logging.Format = format
	}
	if file := env.GetString("log.file"); file != "" {
		cfg.Logging.File = file
	}
	if env.IsSet("metrics.enabled") {
		cfg.Metrics.Enabled = env.GetBool("metrics.enabled")
	}
	if enabled := env.GetString("vendors.enabled"); enabled != "" {
		cfg.Vendors.Enabled = splitList(enabled)
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks the configuration for internal consistency. Whether the
// named vendors are compiled in is checked when the dispatcher is built.
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	validFormats := map[string]bool{
		"json": true, "text": true,
	}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logging.Format)
	}

	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}

	seen := make(map[string]bool, len(c.Vendors.Enabled))
	for _, name := range c.Vendors.Enabled {
		if err := validation.ValidateVendorName(name); err != nil {
			return fmt.Errorf("enabled vendor: %w", err)
		}
		if seen[name] {
			return fmt.Errorf("vendor %q enabled more than once", name)
		}
		seen[name] = true
	}

	for manufacturer, name := range c.Vendors.Aliases {
		if strings.TrimSpace(manufacturer) == "" {
			return fmt.Errorf("vendor alias with empty manufacturer")
		}
		if name == "" {
			return fmt.Errorf("vendor alias %q has no target", manufacturer)
		}
		if err := validation.ValidateVendorName(name); err != nil {
			return fmt.Errorf("vendor alias %q: %w", manufacturer, err)
		}
	}

	return nil
}
