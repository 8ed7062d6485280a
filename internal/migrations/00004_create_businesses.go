package migrations

import (
	"context"
	"database/sql"
)

// The assistant columns are the original inline design; version 8 moves them
// into their own table.
func upCreateBusinesses(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS businesses (
			id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			owner_id           UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name               TEXT NOT NULL,
			phone              TEXT,
			timezone           TEXT NOT NULL DEFAULT 'UTC',
			assistant_name     TEXT,
			assistant_voice_id TEXT,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_businesses_owner_id ON businesses(owner_id)`,
	)
}

func downCreateBusinesses(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `DROP TABLE IF EXISTS businesses`)
}
