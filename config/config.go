// Package config loads the module's file-based configuration. YAML and JSON
// files go through viper; TOML is parsed with go-toml directly because viper
// lower-cases keys on the way in.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/stackbound/commons/httpclient"
	"github.com/stackbound/commons/pkg/logger"
)

// SchemaVersion is the configuration schema this package understands. Files
// declaring a different major version are rejected.
const SchemaVersion = "1.0.0"

var supportedSchema = semver.MustParse(SchemaVersion)

// ErrMissingSchemaVersion is returned when a config file does not declare
// its schemaVersion.
var ErrMissingSchemaVersion = errors.New("schemaVersion is required")

// Config is the root of the parsed configuration file.
type Config struct {
	SchemaVersion string     `mapstructure:"schemaVersion" yaml:"schemaVersion" toml:"schemaVersion"`
	Log           LogConfig  `mapstructure:"log" yaml:"log" toml:"log"`
	HTTP          HTTPConfig `mapstructure:"http" yaml:"http" toml:"http"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	// Level is a zap level name ("debug", "info", ...). Empty means info.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
}

// HTTPConfig feeds httpclient.Config. The section is optional; it is in use
// once baseURL is set.
type HTTPConfig struct {
	BaseURL      string `mapstructure:"baseURL" yaml:"baseURL" toml:"baseURL"`
	Timeout      string `mapstructure:"timeout" yaml:"timeout" toml:"timeout"`
	UserAgent    string `mapstructure:"userAgent" yaml:"userAgent" toml:"userAgent"`
	MaxAttempts  uint   `mapstructure:"maxAttempts" yaml:"maxAttempts" toml:"maxAttempts"`
	InitialDelay string `mapstructure:"initialDelay" yaml:"initialDelay" toml:"initialDelay"`
}

// Load reads and validates a configuration file. The format follows the
// file extension: .toml is parsed as TOML, anything else goes through
// viper (YAML, JSON).
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if filepath.Ext(path) == ".toml" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	if c.SchemaVersion == "" {
		return ErrMissingSchemaVersion
	}

	declared, err := semver.NewVersion(c.SchemaVersion)
	if err != nil {
		return fmt.Errorf("invalid schemaVersion %q: %w", c.SchemaVersion, err)
	}
	if declared.Major() != supportedSchema.Major() {
		return fmt.Errorf("unsupported schemaVersion %s: this release understands schema %d.x",
			c.SchemaVersion, supportedSchema.Major())
	}

	if err := c.Log.Validate(); err != nil {
		return err
	}

	return c.HTTP.Validate()
}

// Validate checks the log section.
func (c LogConfig) Validate() error {
	if c.Level == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	return nil
}

// Build constructs the configured logger.
func (c LogConfig) Build() (logger.Logger, error) {
	lvl := zapcore.InfoLevel
	if c.Level != "" {
		parsed, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		lvl = parsed
	}

	lcfg := logger.Config{Level: lvl}

	return lcfg.New()
}

// Enabled reports whether the http section is in use.
func (c HTTPConfig) Enabled() bool {
	return c.BaseURL != ""
}

// Validate checks the http section. An absent section is valid.
func (c HTTPConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}

	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("invalid http timeout %q: %w", c.Timeout, err)
		}
	}
	if c.InitialDelay != "" {
		if _, err := time.ParseDuration(c.InitialDelay); err != nil {
			return fmt.Errorf("invalid http initialDelay %q: %w", c.InitialDelay, err)
		}
	}

	return nil
}

// Client constructs an httpclient.Client from the section. Unset fields
// keep the httpclient defaults.
func (c HTTPConfig) Client(lggr logger.Logger) (*httpclient.Client, error) {
	if !c.Enabled() {
		return nil, errors.New("http section is not configured: baseURL is required")
	}

	opts := []httpclient.Option{httpclient.WithLogger(lggr)}

	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid http timeout %q: %w", c.Timeout, err)
		}
		opts = append(opts, httpclient.WithTimeout(timeout))
	}
	if c.UserAgent != "" {
		opts = append(opts, httpclient.WithUserAgent(c.UserAgent))
	}

	retryPolicy := httpclient.RetryPolicy{
		MaxAttempts:  httpclient.DefaultMaxAttempts,
		InitialDelay: httpclient.DefaultInitialDelay,
	}
	if c.MaxAttempts > 0 {
		retryPolicy.MaxAttempts = c.MaxAttempts
	}
	if c.InitialDelay != "" {
		delay, err := time.ParseDuration(c.InitialDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid http initialDelay %q: %w", c.InitialDelay, err)
		}
		retryPolicy.InitialDelay = delay
	}
	opts = append(opts, httpclient.WithRetryPolicy(retryPolicy))

	return httpclient.New(c.BaseURL, opts...)
}
