// Package config loads the service and CLI configuration from defaults, an
// optional YAML or JSON file, and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ATS_SERVER_PORT.
const EnvPrefix = "ATS"

// Config is the full configuration tree.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	AI        AIConfig        `mapstructure:"ai"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
	Fetch     FetchConfig     `mapstructure:"fetch"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
}

// DatabaseConfig enables analysis history when URL is set.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// AIConfig enables Gemini section suggestions when APIKey is set.
type AIConfig struct {
	APIKey  string        `mapstructure:"api-key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuthConfig enables bearer-token auth on the API when Secret is set.
type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token-ttl"`
}

type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default-limit"`
	DefaultWindow   time.Duration `mapstructure:"default-window"`
	CleanupInterval time.Duration `mapstructure:"cleanup-interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user-agent"`
}

// defaults are registered on every viper instance so that env-only
// configuration still unmarshals each key.
var defaults = map[string]any{
	"server.port":                8080,
	"server.read-timeout":        15 * time.Second,
	"server.write-timeout":       60 * time.Second,
	"database.url":               "",
	"ai.api-key":                 "",
	"ai.model":                   "standard",
	"ai.timeout":                 15 * time.Second,
	"auth.secret":                "",
	"auth.token-ttl":             24 * time.Hour,
	"ratelimit.enabled":          true,
	"ratelimit.default-limit":    60,
	"ratelimit.default-window":   time.Minute,
	"ratelimit.cleanup-interval": 5 * time.Minute,
	"ratelimit.whitelist":        []string{},
	"ratelimit.blacklist":        []string{},
	"log.level":                  "info",
	"log.format":                 "json",
	"fetch.timeout":              30 * time.Second,
	"fetch.user-agent":           "ats-optimizer/1.0",
}

// unprefixed are conventional variables honored alongside the ATS_ ones.
var unprefixed = map[string]string{
	"database.url": "DATABASE_URL",
	"ai.api-key":   "GEMINI_API_KEY",
	"server.port":  "PORT",
}

// New returns a viper instance with defaults and environment bindings.
// Callers may bind flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, env := range unprefixed {
		// The prefixed form wins over the conventional name.
		prefixed := EnvPrefix + "_" + strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(key))
		_ = v.BindEnv(key, prefixed, env)
	}
	return v
}

// Load reads path (if non-empty) into v, unmarshals and validates the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. It reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		add("server.port", "must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		add("server.read-timeout", "must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		add("server.write-timeout", "must be positive")
	}

	switch c.AI.Model {
	case "lite", "standard", "advanced":
	default:
		add("ai.model", "must be lite, standard or advanced, got %q", c.AI.Model)
	}
	if c.AI.Timeout <= 0 {
		add("ai.timeout", "must be positive")
	}

	if c.Auth.Secret != "" && c.Auth.TokenTTL < time.Minute {
		add("auth.token-ttl", "must be at least 1m, got %s", c.Auth.TokenTTL)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultLimit < 1 {
			add("ratelimit.default-limit", "must be at least 1")
		}
		if c.RateLimit.DefaultWindow <= 0 {
			add("ratelimit.default-window", "must be positive")
		}
		if c.RateLimit.CleanupInterval <= 0 {
			add("ratelimit.cleanup-interval", "must be positive")
		}
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		add("log.format", "must be json or console, got %q", c.Log.Format)
	}

	if c.Fetch.Timeout <= 0 {
		add("fetch.timeout", "must be positive")
	}

	return errors.Join(errs...)
}

// HistoryEnabled reports whether a database is configured.
func (c *Config) HistoryEnabled() bool { return c.Database.URL != "" }

// AIEnabled reports whether a Gemini key is configured.
func (c *Config) AIEnabled() bool { return c.AI.APIKey != "" }

// AuthEnabled reports whether bearer tokens are required.
func (c *Config) AuthEnabled() bool { return c.Auth.Secret != "" }
