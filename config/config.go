// Package config loads labreport settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/labreport/source"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "labreport.yaml"

// Config holds all labreport configuration.
type Config struct {
	// Record source
	Database DatabaseConfig `yaml:"database"`

	// HTTP download server
	Server ServerConfig `yaml:"server"`

	// PDF output
	Report ReportConfig `yaml:"report"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DatabaseConfig selects the record database.
type DatabaseConfig struct {
	Driver    string `yaml:"driver"` // sqlite, mysql, postgres
	DSN       string `yaml:"dsn"`
	Bootstrap bool   `yaml:"bootstrap"` // create missing tables on start
}

// ServerConfig configures the download server.
type ServerConfig struct {
	Listen          string `yaml:"listen"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// ReportConfig configures generated documents.
type ReportConfig struct {
	Compress     bool    `yaml:"compress"`
	PreviewScale float64 `yaml:"preview_scale"` // pixels per mm
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:    "sqlite",
			DSN:       "database.db",
			Bootstrap: false,
		},
		Server: ServerConfig{
			Listen:          ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "60s",
			ShutdownTimeout: "10s",
		},
		Report: ReportConfig{
			Compress:     true,
			PreviewScale: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LABREPORT_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("LABREPORT_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("LABREPORT_LISTEN"); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv("LABREPORT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, _, err := source.ParseDriver(c.Database.Driver); err != nil {
		return fmt.Errorf("invalid database driver: %w", err)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn not configured (set database.dsn or LABREPORT_DB_DSN)")
	}

	level := strings.ToLower(c.Logging.Level)
	valid := false
	for _, l := range validLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, validLevels)
	}

	for name, value := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	if c.Report.PreviewScale <= 0 {
		return fmt.Errorf("invalid report.preview_scale: %v", c.Report.PreviewScale)
	}
	return nil
}

// duration parses a validated duration, falling back to def.
func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

// GetReadTimeout returns the server read timeout as a duration.
func (c *Config) GetReadTimeout() time.Duration {
	return duration(c.Server.ReadTimeout, 15*time.Second)
}

// GetWriteTimeout returns the server write timeout as a duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return duration(c.Server.WriteTimeout, 60*time.Second)
}

// GetShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	return duration(c.Server.ShutdownTimeout, 10*time.Second)
}
