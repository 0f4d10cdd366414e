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

package cli

import (
	"io"

	"github.com/jeremyhahn/go-skf/internal/config"
	"github.com/jeremyhahn/go-skf/pkg/dispatch"
	"github.com/jeremyhahn/go-skf/pkg/logging"
	"github.com/jeremyhahn/go-skf/pkg/metrics"
	"github.com/jeremyhahn/go-skf/pkg/vendors"
)

// Config holds global CLI configuration
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// OutputFormat controls output formatting (json, text)
	OutputFormat string

	// Verbose forces debug logging regardless of the configured level
	Verbose bool

	// logFile is the rotating log file opened by CreateDispatcher, if any
	logFile io.Closer
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		OutputFormat: "text",
		Verbose:      false,
	}
}

// Load reads the configuration file, if any, and applies the CLI overrides.
func (c *Config) Load() (*config.Config, error) {
	cfg, err := config.Load(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	if c.Verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// CreateDispatcher builds a dispatcher over the compiled-in adapters using
// the loaded configuration. Logs go to logOut.
func (c *Config) CreateDispatcher(logOut io.Writer) (*dispatch.Dispatcher, error) {
	cfg, err := c.Load()
	if err != nil {
		return nil, err
	}

	if cfg.Metrics.Enabled {
		metrics.Enable()
	} else {
		metrics.Disable()
	}

	registry, err := vendors.Default()
	if err != nil {
		return nil, err
	}

	if cfg.Logging.File != "" {
		w := logging.NewFileWriter(cfg.Logging.File, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
		c.logFile = w
		logOut = w
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, logOut)
	d, err := dispatch.New(registry,
		dispatch.WithLogger(logger),
		dispatch.WithEnabled(cfg.Vendors.Enabled...),
		dispatch.WithAliases(cfg.Vendors.Aliases),
	)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the log file opened by CreateDispatcher.
func (c *Config) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}
