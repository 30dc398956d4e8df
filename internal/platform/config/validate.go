package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Transaction.validate(),
		c.RateLimit.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StoreConfig) validate() error {
	var errs []error

	if st.Path == "" {
		errs = append(errs, errors.New("store.path must not be empty"))
	}
	if st.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("store.max_open_conns must be >= 1, got %d", st.MaxOpenConns))
	}
	if st.BusyTimeout <= 0 {
		errs = append(errs, errors.New("store.busy_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (t *TransactionConfig) validate() error {
	var errs []error

	if t.Timeout < 0 {
		errs = append(errs, errors.New("transaction.timeout must not be negative"))
	}
	if t.RetryAttempts < 0 {
		errs = append(errs, fmt.Errorf("transaction.retry_attempts must be >= 0, got %d", t.RetryAttempts))
	}
	if t.RetryBackoff <= 0 {
		errs = append(errs, errors.New("transaction.retry_backoff must be positive"))
	}
	if t.CircuitBreaker.Enabled {
		if t.CircuitBreaker.MaxFailures < 1 {
			errs = append(errs, fmt.Errorf("transaction.circuit_breaker.max_failures must be >= 1, got %d",
				t.CircuitBreaker.MaxFailures))
		}
		if t.CircuitBreaker.Timeout <= 0 {
			errs = append(errs, errors.New("transaction.circuit_breaker.timeout must be positive"))
		}
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	var errs []error

	if r.RPS <= 0 {
		errs = append(errs, fmt.Errorf("ratelimit.rps must be positive, got %f", r.RPS))
	}
	if r.Burst < 1 {
		errs = append(errs, fmt.Errorf("ratelimit.burst must be >= 1, got %d", r.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
