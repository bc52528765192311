package middleware

import (
	"net/http"
	"strings"
)

// Policy es la configuración de acceso de un endpoint.
// Se declara al registrar rutas; los handlers no la consultan.
type Policy struct {
	AnonymousAllowed bool
}

// Access corta con 401 si el endpoint no admite anónimos y el request no trae claims.
// Debe ir después de AuthContext.
func Access(p Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if p.AnonymousAllowed {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || strings.TrimSpace(claims.UserID) == "" {
				WriteError(w, http.StatusUnauthorized, ErrTypeAccessDenied, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
