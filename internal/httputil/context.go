package httputil

import (
	"context"
	"net/http"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
)

// Context key type to avoid collisions
type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal returns a request whose context carries the verified
// principal. Only the auth middleware writes this; handlers read it.
func WithPrincipal(r *http.Request, p *authz.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), principalKey, p)
	return r.WithContext(ctx)
}

// GetPrincipal retrieves the verified principal from the request context.
// Returns nil when the request never passed the auth middleware.
func GetPrincipal(r *http.Request) *authz.Principal {
	p, _ := r.Context().Value(principalKey).(*authz.Principal)
	return p
}
