package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/repositories"
)

const applicationColumns = `id, job_id, candidate_id, company_id, status, created_at, updated_at`

// PostgresApplicationRepository implements the ApplicationRepository interface
type PostgresApplicationRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewApplicationRepository creates a new PostgresApplicationRepository
func NewApplicationRepository(config *RepositoryConfig) repositories.ApplicationRepository {
	return &PostgresApplicationRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new application. The unique (job_id, candidate_id) index
// rejects duplicate applications.
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Applications, applicationColumns)

	_, err := r.pool.Exec(ctx, query,
		app.ID,
		app.JobID,
		app.CandidateID,
		app.CompanyID,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "application for this job already exists",
				ResourceType: "application",
			}
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// GetByID loads an application by id.
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, applicationColumns, r.tables.Applications)

	var app models.Application
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&app.ID,
		&app.JobID,
		&app.CandidateID,
		&app.CompanyID,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get application by id: %w", err)
	}
	return &app, nil
}

// ListByCompany returns a company's applications, newest first.
func (r *PostgresApplicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE company_id = $1 ORDER BY created_at DESC
	`, applicationColumns, r.tables.Applications)
	return r.queryApplications(ctx, query, companyID)
}

// ListByCandidate returns a candidate's applications, newest first.
func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE candidate_id = $1 ORDER BY created_at DESC
	`, applicationColumns, r.tables.Applications)
	return r.queryApplications(ctx, query, candidateID)
}

// UpdateStatus sets the status of one application.
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING %s
	`, r.tables.Applications, applicationColumns)

	var app models.Application
	err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&app.ID,
		&app.JobID,
		&app.CandidateID,
		&app.CompanyID,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return &app, nil
}

func (r *PostgresApplicationRepository) queryApplications(ctx context.Context, query string, args ...interface{}) ([]models.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var app models.Application
		if err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.CandidateID,
			&app.CompanyID,
			&app.Status,
			&app.CreatedAt,
			&app.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}
