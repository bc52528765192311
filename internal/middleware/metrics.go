package middleware

import (
	"net/http"
	"strconv"
	"time"

	"petclinic/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics registra contador, latencia e in-flight por patrón de ruta chi.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newStatusRecorder(w)

			m.InFlight.Inc()
			defer m.InFlight.Dec()

			next.ServeHTTP(rw, r)

			route := routePattern(r)
			m.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rw.status)).Inc()
			m.RequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

// routePattern evita cardinalidad alta: usa el patrón, no el path.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return "unmatched"
}
