package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/repositories"
)

// RecruiterService implements recruiter account operations.
type RecruiterService struct {
	users  repositories.UserRepository
	gate   *authz.Gate
	logger *slog.Logger
}

// NewRecruiterService creates a new recruiter service
func NewRecruiterService(users repositories.UserRepository, gate *authz.Gate, logger *slog.Logger) *RecruiterService {
	return &RecruiterService{
		users:  users,
		gate:   gate,
		logger: logger,
	}
}

// CreateRecruiterRequest is the payload for company-created recruiter
// accounts.
type CreateRecruiterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	CompanyID string `json:"companyId"`
}

func recruiterRef(u *models.User) *authz.ResourceRef {
	id := u.ID
	return &authz.ResourceRef{
		Type:             authz.ResourceRecruiters,
		ID:               u.ID,
		OwnerCompanyID:   u.CompanyID,
		OwnerPrincipalID: &id,
	}
}

// Create adds a recruiter account under an existing company. The company
// must exist and must be the caller's own.
func (s *RecruiterService) Create(ctx context.Context, principal *authz.Principal, req *CreateRecruiterRequest) (*models.User, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.CompanyID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := decisionError(s.gate.AuthorizeCollection(ctx, principal, authz.ActionCreate, authz.ResourceRecruiters)); err != nil {
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
		return nil, fmt.Errorf("cannot create recruiters for another company: %w", domain.ErrForbidden)
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: username already exists", domain.ErrValidation)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	recruiter := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         models.RoleRecruiter,
		CompanyID:    &companyID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, recruiter); err != nil {
		return nil, err
	}

	s.logger.Info("recruiter created", "recruiter_id", recruiter.ID, "company_id", companyID)
	return recruiter, nil
}

// Get returns a recruiter record; the gate restricts reads to the
// recruiter's own profile.
func (s *RecruiterService) Get(ctx context.Context, principal *authz.Principal, id uuid.UUID) (*models.User, error) {
	recruiter, ref, err := s.loadRecruiter(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionRead, authz.ResourceRecruiters, ref)); err != nil {
		return nil, err
	}
	return recruiter, nil
}

// Delete removes a recruiter; only the owning company passes the gate.
func (s *RecruiterService) Delete(ctx context.Context, principal *authz.Principal, id uuid.UUID) error {
	_, ref, err := s.loadRecruiter(ctx, id)
	if err != nil {
		return err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionDelete, authz.ResourceRecruiters, ref)); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id, models.RoleRecruiter); err != nil {
		return err
	}

	s.logger.Info("recruiter deleted", "recruiter_id", id, "deleted_by", principal.ID)
	return nil
}

func (s *RecruiterService) loadRecruiter(ctx context.Context, id uuid.UUID) (*models.User, *authz.ResourceRef, error) {
	recruiter, err := s.users.GetByID(ctx, id, models.RoleRecruiter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("recruiter not found: %w", domain.ErrNotFound)
		}
		return nil, nil, err
	}
	return recruiter, recruiterRef(recruiter), nil
}
