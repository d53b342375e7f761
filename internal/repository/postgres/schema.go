package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables and indexes if they do not exist yet. The
// users table holds every principal kind discriminated by role; jobs and
// applications are keyed by the owning company and recruiter/candidate ids.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id            UUID PRIMARY KEY,
				username      TEXT,
				password_hash TEXT,
				role          TEXT NOT NULL,
				company_id    UUID,
				company_name  TEXT,
				first_name    TEXT,
				last_name     TEXT,
				email         TEXT,
				skills        TEXT[],
				created_at    TIMESTAMPTZ NOT NULL,
				updated_at    TIMESTAMPTZ NOT NULL
			)
		`, tables.Users),
		fmt.Sprintf(`
			CREATE UNIQUE INDEX IF NOT EXISTS %s_username_key
			ON %s (username) WHERE username IS NOT NULL AND username <> ''
		`, tables.Users, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id           UUID PRIMARY KEY,
				title        TEXT NOT NULL,
				description  TEXT NOT NULL,
				location     TEXT,
				company_id   UUID NOT NULL,
				recruiter_id UUID NOT NULL,
				created_at   TIMESTAMPTZ NOT NULL
			)
		`, tables.Jobs),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id           UUID PRIMARY KEY,
				job_id       UUID NOT NULL,
				candidate_id UUID NOT NULL,
				company_id   UUID NOT NULL,
				status       TEXT NOT NULL,
				created_at   TIMESTAMPTZ NOT NULL,
				updated_at   TIMESTAMPTZ NOT NULL,
				UNIQUE (job_id, candidate_id)
			)
		`, tables.Applications),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
