package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit returns middleware that rejects requests beyond the configured
// rate with 429 Too Many Requests. A single token bucket covers all clients:
// the limiter protects the store behind the service, not per-client
// fairness.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
