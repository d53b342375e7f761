package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/repositories"
)

// ApplicationService implements the application lifecycle: a candidate
// applies, and the owning company's side shortlists, rejects, or approves.
type ApplicationService struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
	gate         *authz.Gate
	logger       *slog.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	gate *authz.Gate,
	logger *slog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		gate:         gate,
		logger:       logger,
	}
}

// ApplyRequest is the application payload.
type ApplyRequest struct {
	JobID string `json:"jobId"`
}

func applicationRef(a *models.Application) *authz.ResourceRef {
	companyID := a.CompanyID
	candidateID := a.CandidateID
	return &authz.ResourceRef{
		Type:             authz.ResourceApplications,
		ID:               a.ID,
		OwnerCompanyID:   &companyID,
		OwnerPrincipalID: &candidateID,
	}
}

// Apply submits the caller's application to an existing job. The owning
// company is denormalized from the job so later ownership checks need a
// single load.
func (s *ApplicationService) Apply(ctx context.Context, principal *authz.Principal, req *ApplyRequest) (*models.Application, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.JobID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := decisionError(s.gate.AuthorizeCollection(ctx, principal, authz.ActionCreate, authz.ResourceApplications)); err != nil {
		return nil, err
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid job ID format", domain.ErrValidation)
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("job not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	app := &models.Application{
		ID:          uuid.New(),
		JobID:       job.ID,
		CandidateID: principal.ID,
		CompanyID:   job.CompanyID,
		Status:      models.StatusSubmitted,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("application submitted", "application_id", app.ID, "job_id", job.ID, "candidate_id", principal.ID)
	return app, nil
}

// List returns applications scoped to the caller: candidates see their own,
// recruiters and companies see their company's.
func (s *ApplicationService) List(ctx context.Context, principal *authz.Principal) ([]models.Application, error) {
	if err := decisionError(s.gate.AuthorizeCollection(ctx, principal, authz.ActionRead, authz.ResourceApplications)); err != nil {
		return nil, err
	}

	if principal.Role == models.RoleCandidate {
		return s.applications.ListByCandidate(ctx, principal.ID)
	}
	if principal.CompanyID == nil {
		return nil, fmt.Errorf("listing applications requires a company affiliation: %w", domain.ErrForbidden)
	}
	return s.applications.ListByCompany(ctx, *principal.CompanyID)
}

// Shortlist moves an application to shortlisted.
func (s *ApplicationService) Shortlist(ctx context.Context, principal *authz.Principal, id uuid.UUID) (*models.Application, error) {
	return s.transition(ctx, principal, id, authz.ActionShortlist, models.StatusShortlisted)
}

// Reject moves an application to rejected.
func (s *ApplicationService) Reject(ctx context.Context, principal *authz.Principal, id uuid.UUID) (*models.Application, error) {
	return s.transition(ctx, principal, id, authz.ActionReject, models.StatusRejected)
}

// Approve moves an application to approved.
func (s *ApplicationService) Approve(ctx context.Context, principal *authz.Principal, id uuid.UUID) (*models.Application, error) {
	return s.transition(ctx, principal, id, authz.ActionApprove, models.StatusApproved)
}

func (s *ApplicationService) transition(ctx context.Context, principal *authz.Principal, id uuid.UUID, action authz.Action, next models.ApplicationStatus) (*models.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("application not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	if err := decisionError(s.gate.Authorize(ctx, principal, action, authz.ResourceApplications, applicationRef(app))); err != nil {
		return nil, err
	}

	if !app.Status.CanTransitionTo(next) {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("application is %s and cannot become %s", app.Status, next),
			ResourceType: "application",
			ResourceID:   app.ID.String(),
		}
	}

	updated, err := s.applications.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info("application status changed",
		"application_id", id,
		"from", app.Status,
		"to", next,
		"by", principal.ID,
	)
	return updated, nil
}
