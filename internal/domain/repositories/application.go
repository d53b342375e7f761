package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

// ApplicationRepository is the persistence surface for job applications.
type ApplicationRepository interface {
	// Create inserts a new application. Returns a ConflictError when the
	// candidate already applied to the job.
	Create(ctx context.Context, app *models.Application) error

	// GetByID returns domain.ErrNotFound when the application is absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)

	// ListByCompany returns a company's applications, newest first.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Application, error)

	// ListByCandidate returns a candidate's own applications, newest first.
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Application, error)

	// UpdateStatus sets the status of the application with the given id.
	// Returns domain.ErrNotFound when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}
