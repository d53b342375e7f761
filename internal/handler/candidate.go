package handler

import (
	"log/slog"
	"net/http"

	"github.com/Sarah-okolo/Hireflow-server/internal/httputil"
	"github.com/Sarah-okolo/Hireflow-server/internal/service"
)

// CandidateHandler handles candidate profile HTTP requests
type CandidateHandler struct {
	candidates *service.CandidateService
	logger     *slog.Logger
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidates *service.CandidateService, logger *slog.Logger) *CandidateHandler {
	return &CandidateHandler{
		candidates: candidates,
		logger:     logger,
	}
}

// GetProfile returns the caller's own candidate profile
// GET /api/candidates/profile
func (h *CandidateHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}

	profile, err := h.candidates.GetProfile(r.Context(), principal)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// UpdateProfile updates the caller's own candidate profile
// PUT /api/candidates/profile
func (h *CandidateHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}

	var req service.UpdateProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.candidates.UpdateProfile(r.Context(), principal, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// Create adds a candidate profile for the caller's company
// POST /api/candidates/create
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}

	var req service.CreateCandidateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate, err := h.candidates.Create(r.Context(), principal, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{"candidateId": candidate.ID})
}

// Delete removes a candidate profile
// DELETE /api/candidates/{id}
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.candidates.Delete(r.Context(), principal, id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
}
