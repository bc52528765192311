package middleware

import (
	"net/http"
	"runtime/debug"

	"petclinic/internal/platform/logger"
)

// Recover captura panics, los loguea y responde 500 con el cuerpo de error del endpoint.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"panic":      rec,
					"path":       r.URL.Path,
					"request_id": GetRequestID(r.Context()),
					"stack":      string(debug.Stack()),
				})
				WriteError(w, http.StatusInternalServerError, ErrTypeEndpoint, "internal error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
