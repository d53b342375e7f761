package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/repositories"
)

const userColumns = `id, username, password_hash, role, company_id, company_name,
	first_name, last_name, email, skills, created_at, updated_at`

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewUserRepository creates a new PostgresUserRepository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new user row.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, r.tables.Users, userColumns)

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		nullableString(user.Username),
		nullableString(user.PasswordHash),
		user.Role,
		user.CompanyID,
		nullableString(user.CompanyName),
		nullableString(user.FirstName),
		nullableString(user.LastName),
		nullableString(user.Email),
		user.Skills,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("username %q already exists", user.Username),
				ResourceType: "user",
			}
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetByID loads a user by id, optionally narrowed to a role.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, userColumns, r.tables.Users)
	args := []interface{}{id}
	if role != "" {
		query += ` AND role = $2`
		args = append(args, role)
	}

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// GetByUsername loads a user by unique username.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE username = $1`, userColumns, r.tables.Users)

	user, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

// GetCompanyByCompanyID loads the company account owning a company id.
func (r *PostgresUserRepository) GetCompanyByCompanyID(ctx context.Context, companyID uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE role = $1 AND company_id = $2
	`, userColumns, r.tables.Users)

	user, err := scanUser(r.pool.QueryRow(ctx, query, models.RoleCompany, companyID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get company by company id: %w", err)
	}
	return user, nil
}

// UpdateCandidateProfile updates the mutable fields of a candidate row. The
// role predicate keeps the write from touching non-candidate rows even if
// the id belongs to another principal kind.
func (r *PostgresUserRepository) UpdateCandidateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string, skills []string) (*models.User, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET first_name = $1, last_name = $2, email = $3, skills = $4, updated_at = now()
		WHERE id = $5 AND role = $6
		RETURNING %s
	`, r.tables.Users, userColumns)

	user, err := scanUser(r.pool.QueryRow(ctx, query, firstName, lastName, email, skills, id, models.RoleCandidate))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update candidate profile: %w", err)
	}
	return user, nil
}

// Delete removes a user row by id and role.
func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID, role models.Role) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND role = $2`, r.tables.Users)

	tag, err := r.pool.Exec(ctx, query, id, role)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanUser reads one user row.
func scanUser(row pgx.Row) (*models.User, error) {
	var (
		user models.User

		username, passwordHash, companyName, firstName, lastName, email *string
	)
	err := row.Scan(
		&user.ID,
		&username,
		&passwordHash,
		&user.Role,
		&user.CompanyID,
		&companyName,
		&firstName,
		&lastName,
		&email,
		&user.Skills,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Username = deref(username)
	user.PasswordHash = deref(passwordHash)
	user.CompanyName = deref(companyName)
	user.FirstName = deref(firstName)
	user.LastName = deref(lastName)
	user.Email = deref(email)
	return &user, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
