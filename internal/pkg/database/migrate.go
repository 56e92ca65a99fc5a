package database

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// migration is one versioned schema step. Migrations run exactly once, in
// order, at store initialization; queries never mutate the schema as a
// side effect.
type migration struct {
	version int
	name    string
	up      string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create_employees",
		up: `
			CREATE TABLE IF NOT EXISTS employees (
				matricula      TEXT PRIMARY KEY,
				full_name      TEXT NOT NULL,
				job_function   TEXT NOT NULL DEFAULT '',
				abbreviation   TEXT NOT NULL DEFAULT '',
				admission_date DATE,
				labor_class    TEXT NOT NULL DEFAULT 'MOD',
				status         TEXT NOT NULL DEFAULT 'Ativo',
				created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		version: 2,
		name:    "create_reference_lists",
		up: `
			CREATE TABLE IF NOT EXISTS job_functions (
				name TEXT PRIMARY KEY
			);
			CREATE TABLE IF NOT EXISTS equipment (
				tag TEXT PRIMARY KEY
			)`,
	},
	{
		version: 3,
		name:    "create_time_entries",
		up: `
			CREATE TABLE IF NOT EXISTS time_entries (
				id             BIGSERIAL PRIMARY KEY,
				matricula      TEXT NOT NULL,
				employee_name  TEXT NOT NULL,
				job_function   TEXT NOT NULL,
				equipment_tag  TEXT NOT NULL,
				activity       TEXT NOT NULL DEFAULT '',
				clock_start    TEXT NOT NULL,
				lunch_out      TEXT NOT NULL,
				lunch_in       TEXT NOT NULL,
				clock_end      TEXT NOT NULL,
				total_duration TEXT NOT NULL,
				entry_date     DATE NOT NULL,
				created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_time_entries_date ON time_entries (entry_date)`,
	},
	{
		version: 4,
		name:    "create_roster_snapshots",
		up: `
			CREATE TABLE IF NOT EXISTS roster_snapshots (
				id              BIGSERIAL PRIMARY KEY,
				roster_date     DATE NOT NULL,
				matricula       TEXT NOT NULL,
				employee_name   TEXT NOT NULL,
				job_function    TEXT NOT NULL,
				status_code     INT NOT NULL,
				situation_label TEXT NOT NULL,
				created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_roster_snapshots_date ON roster_snapshots (roster_date)`,
	},
	{
		version: 5,
		name:    "create_users",
		up: `
			CREATE TABLE IF NOT EXISTS users (
				id            TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
				username      TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				is_manager    BOOLEAN NOT NULL DEFAULT FALSE,
				created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		version: 6,
		name:    "seed_default_job_functions",
		up: `
			INSERT INTO job_functions (name) VALUES
				('ENCARREGADO'), ('MONTADOR'), ('SOLDADOR'), ('AJUDANTE'), ('TECNICO')
			ON CONFLICT (name) DO NOTHING`,
	},
}

// Migrate applies pending migrations and seeds the bootstrap manager
// account when a password is configured and the user does not exist yet.
func Migrate(ctx context.Context, db *DB, bootstrapUser, bootstrapPassword string) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INT PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(ctx, m.up); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
			m.version, m.name,
		); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
	}

	if bootstrapUser != "" && bootstrapPassword != "" {
		if err := seedBootstrapManager(ctx, db, bootstrapUser, bootstrapPassword); err != nil {
			return err
		}
	}

	return nil
}

func seedBootstrapManager(ctx context.Context, db *DB, username, password string) error {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check bootstrap manager: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (username, password_hash, is_manager)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (username) DO NOTHING
	`, username, string(hash))
	if err != nil {
		return fmt.Errorf("seed bootstrap manager: %w", err)
	}
	return nil
}
