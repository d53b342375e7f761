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

const jobColumns = `id, title, description, location, company_id, recruiter_id, created_at`

// PostgresJobRepository implements the JobRepository interface
type PostgresJobRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewJobRepository creates a new PostgresJobRepository
func NewJobRepository(config *RepositoryConfig) repositories.JobRepository {
	return &PostgresJobRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new job posting.
func (r *PostgresJobRepository) Create(ctx context.Context, job *models.Job) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Jobs, jobColumns)

	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.Title,
		job.Description,
		nullableString(job.Location),
		job.CompanyID,
		job.RecruiterID,
		job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// GetByID loads a job by id.
func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, jobColumns, r.tables.Jobs)

	var (
		job      models.Job
		location *string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&location,
		&job.CompanyID,
		&job.RecruiterID,
		&job.CreatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}
	job.Location = deref(location)
	return &job, nil
}

// List returns all jobs, newest first.
func (r *PostgresJobRepository) List(ctx context.Context) ([]models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC`, jobColumns, r.tables.Jobs)
	return r.queryJobs(ctx, query)
}

// ListByCompany returns the jobs owned by one company, newest first.
func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE company_id = $1 ORDER BY created_at DESC
	`, jobColumns, r.tables.Jobs)
	return r.queryJobs(ctx, query, companyID)
}

// Delete removes a job by id.
func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Jobs)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) queryJobs(ctx context.Context, query string, args ...interface{}) ([]models.Job, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var (
			job      models.Job
			location *string
		)
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Description,
			&location,
			&job.CompanyID,
			&job.RecruiterID,
			&job.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		job.Location = deref(location)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}
