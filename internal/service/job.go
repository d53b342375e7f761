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

// JobService implements job posting operations.
type JobService struct {
	jobs   repositories.JobRepository
	gate   *authz.Gate
	logger *slog.Logger
}

// NewJobService creates a new job service
func NewJobService(jobs repositories.JobRepository, gate *authz.Gate, logger *slog.Logger) *JobService {
	return &JobService{
		jobs:   jobs,
		gate:   gate,
		logger: logger,
	}
}

// CreateJobRequest is the job posting payload. Ownership fields are taken
// from the verified principal, never from the payload.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func jobRef(j *models.Job) *authz.ResourceRef {
	companyID := j.CompanyID
	recruiterID := j.RecruiterID
	return &authz.ResourceRef{
		Type:             authz.ResourceJobs,
		ID:               j.ID,
		OwnerCompanyID:   &companyID,
		OwnerPrincipalID: &recruiterID,
	}
}

// Create posts a new job owned by the caller's company.
func (s *JobService) Create(ctx context.Context, principal *authz.Principal, req *CreateJobRequest) (*models.Job, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := decisionError(s.gate.AuthorizeCollection(ctx, principal, authz.ActionCreate, authz.ResourceJobs)); err != nil {
		return nil, err
	}
	if principal.CompanyID == nil {
		return nil, fmt.Errorf("job postings require a company affiliation: %w", domain.ErrForbidden)
	}

	job := &models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		CompanyID:   *principal.CompanyID,
		RecruiterID: principal.ID,
		CreatedAt:   time.Now(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("job created", "job_id", job.ID, "company_id", job.CompanyID, "recruiter_id", job.RecruiterID)
	return job, nil
}

// List returns job postings. Candidates browse all openings; recruiters and
// companies see their own company's postings.
func (s *JobService) List(ctx context.Context, principal *authz.Principal) ([]models.Job, error) {
	if err := decisionError(s.gate.AuthorizeCollection(ctx, principal, authz.ActionRead, authz.ResourceJobs)); err != nil {
		return nil, err
	}

	if principal.Role == models.RoleCandidate {
		return s.jobs.List(ctx)
	}
	if principal.CompanyID == nil {
		return nil, fmt.Errorf("listing jobs requires a company affiliation: %w", domain.ErrForbidden)
	}
	return s.jobs.ListByCompany(ctx, *principal.CompanyID)
}

// Get returns one job posting.
func (s *JobService) Get(ctx context.Context, principal *authz.Principal, id uuid.UUID) (*models.Job, error) {
	job, ref, err := s.loadJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionRead, authz.ResourceJobs, ref)); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a job posting; the gate restricts this to the owning
// company's recruiters.
func (s *JobService) Delete(ctx context.Context, principal *authz.Principal, id uuid.UUID) error {
	_, ref, err := s.loadJob(ctx, id)
	if err != nil {
		return err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionDelete, authz.ResourceJobs, ref)); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("job deleted", "job_id", id, "deleted_by", principal.ID)
	return nil
}

func (s *JobService) loadJob(ctx context.Context, id uuid.UUID) (*models.Job, *authz.ResourceRef, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("job not found: %w", domain.ErrNotFound)
		}
		return nil, nil, err
	}
	return job, jobRef(job), nil
}
