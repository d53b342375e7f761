package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/httputil"
)

// principalOrFail fetches the verified principal set by the auth middleware.
// A nil principal means a route was wired without RequireAuth; answer 401
// rather than proceeding unauthenticated.
func principalOrFail(w http.ResponseWriter, r *http.Request) *authz.Principal {
	principal := httputil.GetPrincipal(r)
	if principal == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "unauthenticated")
		return nil
	}
	return principal
}

// pathID parses the {id} path segment. Responds 400 and returns false when
// the segment is not a valid identifier.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid id format")
		return uuid.Nil, false
	}
	return id, true
}
