package middleware

import (
	"net/http"
	"strings"

	"fintrack/internal/api/response"
	"fintrack/internal/auth"
)

// RequireToken rejects requests without a valid Bearer token. The auth and
// system namespaces are mounted outside this middleware.
func RequireToken(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.RespondError(w, http.StatusUnauthorized, "missing bearer token", "")
				return
			}

			if err := authService.VerifyToken(token); err != nil {
				response.RespondError(w, http.StatusUnauthorized, err.Error(), "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
