package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		username   VARCHAR(255) NOT NULL,
		phone      VARCHAR(32)  NOT NULL UNIQUE,
		is_admin   BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS evaluations (
		id             UUID PRIMARY KEY,
		user_id        UUID         NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_name   VARCHAR(255) NOT NULL,
		responses      JSONB        NOT NULL,
		overall_rating INTEGER      NOT NULL CHECK (overall_rating BETWEEN 1 AND 5),
		created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_user_id ON evaluations(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at DESC)`,
}

// Migrate creates the tables when they do not exist yet
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
