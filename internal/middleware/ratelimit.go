package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit aplica un token bucket global. rps <= 0 lo desactiva.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rps <= 0 {
			return next
		}
		if burst <= 0 {
			burst = 1
		}
		limiter := rate.NewLimiter(rate.Limit(rps), burst)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				WriteError(w, http.StatusTooManyRequests, ErrTypeEndpoint, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
