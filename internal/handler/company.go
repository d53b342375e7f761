package handler

import (
	"log/slog"
	"net/http"

	"github.com/Sarah-okolo/Hireflow-server/internal/httputil"
	"github.com/Sarah-okolo/Hireflow-server/internal/service"
)

// CompanyHandler handles company account HTTP requests
type CompanyHandler struct {
	companies *service.CompanyService
	logger    *slog.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companies *service.CompanyService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		companies: companies,
		logger:    logger,
	}
}

// Get returns the caller's own company record
// GET /api/companies
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}

	company, err := h.companies.Get(r.Context(), principal)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"company": company})
}

// Delete removes a company record
// DELETE /api/companies/{id}
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal := principalOrFail(w, r)
	if principal == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.companies.Delete(r.Context(), principal, id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
}
