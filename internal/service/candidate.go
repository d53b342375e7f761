package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/repositories"
)

// CandidateService implements candidate profile operations. Every operation
// loads the target fresh from the store, passes the resulting resource
// reference through the gate, and then performs exactly one write.
type CandidateService struct {
	users  repositories.UserRepository
	gate   *authz.Gate
	logger *slog.Logger
}

// NewCandidateService creates a new candidate service
func NewCandidateService(users repositories.UserRepository, gate *authz.Gate, logger *slog.Logger) *CandidateService {
	return &CandidateService{
		users:  users,
		gate:   gate,
		logger: logger,
	}
}

// UpdateProfileRequest is the candidate profile update payload.
type UpdateProfileRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Skills    []string `json:"skills"`
}

// CreateCandidateRequest is the payload for recruiter/company-created
// candidate profiles.
type CreateCandidateRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Skills    []string `json:"skills"`
	CompanyID string   `json:"companyId"`
}

func candidateRef(u *models.User) *authz.ResourceRef {
	id := u.ID
	return &authz.ResourceRef{
		Type:             authz.ResourceCandidates,
		ID:               u.ID,
		OwnerCompanyID:   u.CompanyID,
		OwnerPrincipalID: &id,
	}
}

// GetProfile returns the caller's own candidate profile.
func (s *CandidateService) GetProfile(ctx context.Context, principal *authz.Principal) (*models.User, error) {
	candidate, ref, err := s.loadCandidate(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionRead, authz.ResourceCandidates, ref)); err != nil {
		return nil, err
	}
	return candidate, nil
}

// UpdateProfile updates the caller's own candidate profile.
func (s *CandidateService) UpdateProfile(ctx context.Context, principal *authz.Principal, req *UpdateProfileRequest) (*models.User, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	_, ref, err := s.loadCandidate(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionUpdate, authz.ResourceCandidates, ref)); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateCandidateProfile(ctx, principal.ID, req.FirstName, req.LastName, req.Email, req.Skills)
	if err != nil {
		return nil, err
	}

	s.logger.Info("candidate profile updated", "candidate_id", principal.ID)
	return updated, nil
}

// Create adds a candidate profile on behalf of a recruiter or company. The
// owning company is verified against the store and must be the caller's own
// company; the payload cannot attach a candidate to someone else's company.
func (s *CandidateService) Create(ctx context.Context, principal *authz.Principal, req *CreateCandidateRequest) (*models.User, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.CompanyID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := decisionError(s.gate.AuthorizeCollection(ctx, principal, authz.ActionCreate, authz.ResourceCandidates)); err != nil {
		return nil, err
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid company ID format", domain.ErrValidation)
	}
	if _, err := s.users.GetCompanyByCompanyID(ctx, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: company ID not found", domain.ErrValidation)
		}
		return nil, err
	}
	if principal.CompanyID == nil || *principal.CompanyID != companyID {
		return nil, fmt.Errorf("cannot create candidates for another company: %w", domain.ErrForbidden)
	}

	candidate := &models.User{
		ID:        uuid.New(),
		Role:      models.RoleCandidate,
		CompanyID: &companyID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Skills:    req.Skills,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, candidate); err != nil {
		return nil, err
	}

	s.logger.Info("candidate profile created", "candidate_id", candidate.ID, "company_id", companyID)
	return candidate, nil
}

// Delete removes a candidate profile. Ownership is checked against the
// freshly loaded record, never against request fields.
func (s *CandidateService) Delete(ctx context.Context, principal *authz.Principal, id uuid.UUID) error {
	_, ref, err := s.loadCandidate(ctx, id)
	if err != nil {
		return err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionDelete, authz.ResourceCandidates, ref)); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id, models.RoleCandidate); err != nil {
		return err
	}

	s.logger.Info("candidate deleted", "candidate_id", id, "deleted_by", principal.ID)
	return nil
}

func (s *CandidateService) loadCandidate(ctx context.Context, id uuid.UUID) (*models.User, *authz.ResourceRef, error) {
	candidate, err := s.users.GetByID(ctx, id, models.RoleCandidate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("candidate not found: %w", domain.ErrNotFound)
		}
		return nil, nil, err
	}
	return candidate, candidateRef(candidate), nil
}
