package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

// JobRepository is the persistence surface for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error

	// GetByID returns domain.ErrNotFound when the job is absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)

	// List returns all jobs, newest first.
	List(ctx context.Context) ([]models.Job, error)

	// ListByCompany returns the jobs owned by a company, newest first.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error)

	// Delete returns domain.ErrNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
