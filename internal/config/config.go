// Package config provides configuration for the gmoctl command line tool.
// Settings are resolved from three sources in priority order: environment
// variables, an optional JSON configuration file, and built-in defaults. The
// library packages take no configuration; everything here concerns the CLI's
// own policies (export pacing, retry, logging).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the complete gmoctl configuration.
type Config struct {
	// Export configures multi-page trade-history exports.
	Export ExportConfig `json:"export"`

	// Logging configures structured log output.
	Logging LoggingConfig `json:"logging"`
}

// ExportConfig configures how the CLI walks trade-history pages. Pacing and
// retry are caller-side policies; the API client itself performs exactly one
// request per call.
type ExportConfig struct {
	RequestsPerSecond int    `json:"requests_per_second" env:"GMO_REQUESTS_PER_SECOND"` // page request pacing
	PageSize          int    `json:"page_size" env:"GMO_PAGE_SIZE"`                     // executions per page
	MaxAttempts       int    `json:"max_attempts" env:"GMO_MAX_ATTEMPTS"`               // attempts per page, transient failures only
	InitialDelay      string `json:"initial_delay" env:"GMO_INITIAL_DELAY"`             // first retry delay
	MaxDelay          string `json:"max_delay" env:"GMO_MAX_DELAY"`                     // retry delay ceiling
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level      string `json:"level" env:"GMO_LOG_LEVEL"`             // debug, info, warn, error
	Format     string `json:"format" env:"GMO_LOG_FORMAT"`           // json, text
	Output     string `json:"output" env:"GMO_LOG_OUTPUT"`           // stdout, stderr, file
	FilePath   string `json:"file_path" env:"GMO_LOG_FILE_PATH"`     // log file path when output is "file"
	MaxSize    int    `json:"max_size" env:"GMO_LOG_MAX_SIZE"`       // rotation size in MB
	MaxBackups int    `json:"max_backups" env:"GMO_LOG_MAX_BACKUPS"` // rotated files to keep
	MaxAge     int    `json:"max_age" env:"GMO_LOG_MAX_AGE"`         // rotated file age in days
	Compress   bool   `json:"compress" env:"GMO_LOG_COMPRESS"`       // gzip rotated files
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			RequestsPerSecond: 3,
			PageSize:          100,
			MaxAttempts:       3,
			InitialDelay:      "500ms",
			MaxDelay:          "10s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// Load resolves the configuration: defaults, then the JSON file at path if it
// exists (an empty path skips the file entirely), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func loadFromEnv(cfg *Config) {
	if val := os.Getenv("GMO_REQUESTS_PER_SECOND"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Export.RequestsPerSecond = n
		}
	}
	if val := os.Getenv("GMO_PAGE_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Export.PageSize = n
		}
	}
	if val := os.Getenv("GMO_MAX_ATTEMPTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Export.MaxAttempts = n
		}
	}
	if val := os.Getenv("GMO_INITIAL_DELAY"); val != "" {
		cfg.Export.InitialDelay = val
	}
	if val := os.Getenv("GMO_MAX_DELAY"); val != "" {
		cfg.Export.MaxDelay = val
	}

	if val := os.Getenv("GMO_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("GMO_LOG_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("GMO_LOG_OUTPUT"); val != "" {
		cfg.Logging.Output = val
	}
	if val := os.Getenv("GMO_LOG_FILE_PATH"); val != "" {
		cfg.Logging.FilePath = val
	}
	if val := os.Getenv("GMO_LOG_COMPRESS"); val != "" {
		cfg.Logging.Compress = val == "true"
	}
}

// Validate checks the resolved configuration for values the CLI cannot run
// with.
func (c *Config) Validate() error {
	if c.Export.RequestsPerSecond <= 0 {
		return fmt.Errorf("export.requests_per_second must be positive, got %d", c.Export.RequestsPerSecond)
	}
	if c.Export.PageSize <= 0 {
		return fmt.Errorf("export.page_size must be positive, got %d", c.Export.PageSize)
	}
	if c.Export.MaxAttempts <= 0 {
		return fmt.Errorf("export.max_attempts must be positive, got %d", c.Export.MaxAttempts)
	}
	if _, err := time.ParseDuration(c.Export.InitialDelay); err != nil {
		return fmt.Errorf("export.initial_delay is not a duration: %w", err)
	}
	if _, err := time.ParseDuration(c.Export.MaxDelay); err != nil {
		return fmt.Errorf("export.max_delay is not a duration: %w", err)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text; got %q", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "stdout", "stderr":
	case "file":
		if c.Logging.FilePath == "" {
			return fmt.Errorf("logging.file_path is required when logging.output is \"file\"")
		}
	default:
		return fmt.Errorf("logging.output must be stdout, stderr, or file; got %q", c.Logging.Output)
	}

	return nil
}

// InitialRetryDelay returns the parsed first retry delay. Validate guarantees
// the value parses.
func (e ExportConfig) InitialRetryDelay() time.Duration {
	d, _ := time.ParseDuration(e.InitialDelay)
	return d
}

// MaxRetryDelay returns the parsed retry delay ceiling.
func (e ExportConfig) MaxRetryDelay() time.Duration {
	d, _ := time.ParseDuration(e.MaxDelay)
	return d
}
