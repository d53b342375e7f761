package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Sarah-okolo/Hireflow-server/internal/auth"
	"github.com/Sarah-okolo/Hireflow-server/internal/httputil"
)

// RequireAuth wraps protected routes. It extracts the bearer credential,
// resolves it to a principal, and stores the principal in the request
// context. Requests without a verifiable credential are rejected with 401
// before the handler runs.
func RequireAuth(resolver auth.Resolver, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			credential := bearerToken(r)
			if credential == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			principal, err := resolver.Resolve(credential)
			if err != nil {
				logger.Debug("credential rejected", "path", r.URL.Path, "error", err)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next(w, httputil.WithPrincipal(r, principal))
		}
	}
}

// bearerToken extracts the token from the Authorization header. Returns ""
// when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}
