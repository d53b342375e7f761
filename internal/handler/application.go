package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/httputil"
	"github.com/Sarah-okolo/Hireflow-server/internal/service"
)

// ApplicationHandler handles job application HTTP requests
type ApplicationHandler struct {
	applications *service.ApplicationService
	logger       *slog.Logger
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applications *service.ApplicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		logger:       logger,
	}
}

// Apply submits an application to a job
// POST /api/applications/apply
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}

	var req service.ApplyRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.applications.Apply(r.Context(), principal, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{"application": app})
}

// List returns applications visible to the caller
// GET /api/applications
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}

	apps, err := h.applications.List(r.Context(), principal)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
}

// Shortlist marks an application as shortlisted
// POST /api/applications/{id}/shortlist
func (h *ApplicationHandler) Shortlist(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.applications.Shortlist)
}

// Reject marks an application as rejected
// POST /api/applications/{id}/reject
func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.applications.Reject)
}

// Approve marks an application as approved
// POST /api/applications/{id}/approve
func (h *ApplicationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.applications.Approve)
}

func (h *ApplicationHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, principal *authz.Principal, id uuid.UUID) (*models.Application, error),
) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	app, err := op(r.Context(), principal, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"application": app})
}
