package migrations

import (
	"context"
	"database/sql"
)

func upCreateUsers(ctx context.Context, tx *sql.Tx) error {
	if err := createEnum(ctx, tx, "user_role", "admin", "user"); err != nil {
		return err
	}
	return execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS users (
			id                     TEXT PRIMARY KEY,
			email                  TEXT UNIQUE,
			name                   TEXT NOT NULL DEFAULT '',
			password_hash          TEXT,
			role                   user_role NOT NULL DEFAULT 'user',
			auth_provider          TEXT NOT NULL DEFAULT 'local',
			reset_token            TEXT,
			reset_token_expires_at TIMESTAMPTZ,
			created_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
}

func downCreateUsers(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx,
		`DROP TABLE IF EXISTS users`,
		`DROP TYPE IF EXISTS user_role`,
	)
}
