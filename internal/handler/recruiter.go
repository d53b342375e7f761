package handler

import (
	"log/slog"
	"net/http"

	"github.com/Sarah-okolo/Hireflow-server/internal/httputil"
	"github.com/Sarah-okolo/Hireflow-server/internal/service"
)

// RecruiterHandler handles recruiter account HTTP requests
type RecruiterHandler struct {
	recruiters *service.RecruiterService
	logger     *slog.Logger
}

// NewRecruiterHandler creates a new recruiter handler
func NewRecruiterHandler(recruiters *service.RecruiterService, logger *slog.Logger) *RecruiterHandler {
	return &RecruiterHandler{
		recruiters: recruiters,
		logger:     logger,
	}
}

// Create adds a recruiter under the caller's company
// POST /api/recruiters/create
func (h *RecruiterHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}

	var req service.CreateRecruiterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recruiter, err := h.recruiters.Create(r.Context(), principal, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{"recruiterId": recruiter.ID})
}

// Get returns a recruiter record
// GET /api/recruiters/{id}
func (h *RecruiterHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	recruiter, err := h.recruiters.Get(r.Context(), principal, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"recruiter": recruiter})
}

// Delete removes a recruiter
// DELETE /api/recruiters/{id}
func (h *RecruiterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.recruiters.Delete(r.Context(), principal, id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
}
