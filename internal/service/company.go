package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/repositories"
)

// CompanyService implements company account operations.
type CompanyService struct {
	users  repositories.UserRepository
	gate   *authz.Gate
	logger *slog.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(users repositories.UserRepository, gate *authz.Gate, logger *slog.Logger) *CompanyService {
	return &CompanyService{
		users:  users,
		gate:   gate,
		logger: logger,
	}
}

func companyRef(u *models.User) *authz.ResourceRef {
	id := u.ID
	return &authz.ResourceRef{
		Type:             authz.ResourceCompanies,
		ID:               u.ID,
		OwnerCompanyID:   u.CompanyID,
		OwnerPrincipalID: &id,
	}
}

// Get returns the caller's own company record.
func (s *CompanyService) Get(ctx context.Context, principal *authz.Principal) (*models.User, error) {
	company, ref, err := s.loadCompany(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionRead, authz.ResourceCompanies, ref)); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company record; the gate only allows a company deleting
// itself.
func (s *CompanyService) Delete(ctx context.Context, principal *authz.Principal, id uuid.UUID) error {
	_, ref, err := s.loadCompany(ctx, id)
	if err != nil {
		return err
	}
	if err := decisionError(s.gate.Authorize(ctx, principal, authz.ActionDelete, authz.ResourceCompanies, ref)); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id, models.RoleCompany); err != nil {
		return err
	}

	s.logger.Info("company deleted", "company_id", id)
	return nil
}

func (s *CompanyService) loadCompany(ctx context.Context, id uuid.UUID) (*models.User, *authz.ResourceRef, error) {
	company, err := s.users.GetByID(ctx, id, models.RoleCompany)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("company not found: %w", domain.ErrNotFound)
		}
		return nil, nil, err
	}
	return company, companyRef(company), nil
}
