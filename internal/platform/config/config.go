// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
	Store       StoreConfig       `koanf:"store"`
	Transaction TransactionConfig `koanf:"transaction"`
	RateLimit   RateLimitConfig   `koanf:"ratelimit"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig holds SQLite store settings.
type StoreConfig struct {
	Path            string        `koanf:"path"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	BusyTimeout     time.Duration `koanf:"busy_timeout"`
}

// TransactionConfig holds transaction manager settings.
type TransactionConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	RetryAttempts  int                  `koanf:"retry_attempts"`
	RetryBackoff   time.Duration        `koanf:"retry_backoff"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings for the retrying
// transaction path.
type CircuitBreakerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	MaxFailures int           `koanf:"max_failures"`
	Timeout     time.Duration `koanf:"timeout"`
}

// RateLimitConfig holds HTTP request rate limiting settings.
type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
