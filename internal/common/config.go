// Package common provides shared utilities for WealthLens
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/wealthlens/wealthlens/internal/models"
)

// Config holds all configuration for WealthLens
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Auth        AuthConfig    `toml:"auth"`
	Ingest      IngestConfig  `toml:"ingest"`
	Rules       RulesFile     `toml:"rules"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds path configuration for the embedded store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// AuthConfig holds OTP and JWT authentication configuration. Expiry fields
// are duration strings ("720h", "10m").
type AuthConfig struct {
	JWTSecret      string  `toml:"jwt_secret"`
	TokenExpiry    string  `toml:"token_expiry"`
	OTPExpiry      string  `toml:"otp_expiry"`
	OTPMaxAttempts int     `toml:"otp_max_attempts"`
	OTPSendsPerMin float64 `toml:"otp_sends_per_min"`
	DemoMode       bool    `toml:"demo_mode"`
	DemoOTP        string  `toml:"demo_otp"`
}

// GetTokenExpiry parses and returns the token expiry duration.
func (c *AuthConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

// GetOTPExpiry parses and returns the OTP expiry duration.
func (c *AuthConfig) GetOTPExpiry() time.Duration {
	d, err := time.ParseDuration(c.OTPExpiry)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}

// IngestConfig holds statement ingestion settings.
type IngestConfig struct {
	MaxUploadMB  int     `toml:"max_upload_mb"`
	USDToINRRate float64 `toml:"usd_to_inr_rate"` // conversion applied to US-broker statements
}

// RulesFile points at the insight policy table.
type RulesFile struct {
	Path string `toml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Path: "data/wealthlens",
		},
		Auth: AuthConfig{
			JWTSecret:      "dev-jwt-secret-change-in-production",
			TokenExpiry:    "720h",
			OTPExpiry:      "10m",
			OTPMaxAttempts: 3,
			OTPSendsPerMin: 3,
			DemoMode:       true,
			DemoOTP:        "1234",
		},
		Ingest: IngestConfig{
			MaxUploadMB:  16,
			USDToINRRate: 84.50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("WEALTHLENS_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("WEALTHLENS_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("WEALTHLENS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("WEALTHLENS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("WEALTHLENS_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if v := os.Getenv("WEALTHLENS_AUTH_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("WEALTHLENS_AUTH_TOKEN_EXPIRY"); v != "" {
		config.Auth.TokenExpiry = v
	}
	if v := os.Getenv("WEALTHLENS_DEMO_MODE"); v != "" {
		config.Auth.DemoMode = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("WEALTHLENS_DEMO_OTP"); v != "" {
		config.Auth.DemoOTP = v
	}

	if v := os.Getenv("WEALTHLENS_RULES_PATH"); v != "" {
		config.Rules.Path = v
	}

	if v := os.Getenv("WEALTHLENS_USD_TO_INR"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			config.Ingest.USDToINRRate = rate
		}
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// LoadRules loads the insight policy table from the configured TOML file,
// falling back to the shipped defaults when no file is configured or present.
func (c *Config) LoadRules() (*models.RulesConfig, error) {
	rules := models.DefaultRulesConfig()

	if c.Rules.Path == "" {
		return rules, nil
	}
	if _, err := os.Stat(c.Rules.Path); os.IsNotExist(err) {
		return rules, nil
	}

	data, err := os.ReadFile(c.Rules.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", c.Rules.Path, err)
	}
	if err := toml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", c.Rules.Path, err)
	}
	return rules, nil
}
