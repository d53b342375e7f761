package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

// UserRepository is the persistence surface for the users table. All
// principal kinds (candidate, recruiter, company) live in one table
// discriminated by role.
type UserRepository interface {
	// Create inserts a new user. Returns a ConflictError when the username
	// is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByID loads a user by primary key. Returns domain.ErrNotFound when
	// absent. An optional role narrows the lookup (e.g. "the candidate with
	// this id", not just any user).
	GetByID(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error)

	// GetByUsername loads a user by unique username. Returns
	// domain.ErrNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetCompanyByCompanyID loads the company account owning the given
	// company identifier. Returns domain.ErrNotFound when absent.
	GetCompanyByCompanyID(ctx context.Context, companyID uuid.UUID) (*models.User, error)

	// UpdateCandidateProfile updates the mutable profile fields of the
	// candidate with the given id. Returns domain.ErrNotFound when no
	// candidate row matched.
	UpdateCandidateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string, skills []string) (*models.User, error)

	// Delete removes the user with the given id and role. Returns
	// domain.ErrNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID, role models.Role) error
}
