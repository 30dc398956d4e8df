package config

const (
	defaultServerPort = 8080

	defaultRetryAttempts = 3

	defaultCircuitBreakerMaxFailures = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.path":              "taskboard.db",
		"store.max_open_conns":    1,
		"store.max_idle_conns":    1,
		"store.conn_max_lifetime": "1h",
		"store.busy_timeout":      "5s",

		"transaction.timeout":                      "30s",
		"transaction.retry_attempts":               defaultRetryAttempts,
		"transaction.retry_backoff":                "50ms",
		"transaction.circuit_breaker.enabled":      true,
		"transaction.circuit_breaker.max_failures": defaultCircuitBreakerMaxFailures,
		"transaction.circuit_breaker.timeout":      "30s",

		"ratelimit.enabled": false,
		"ratelimit.rps":     50.0,
		"ratelimit.burst":   100,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
