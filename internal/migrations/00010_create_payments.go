package migrations

import (
	"context"
	"database/sql"
)

func upCreatePayments(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS payments (
			id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			business_id  UUID NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			user_id      UUID NOT NULL,
			amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0),
			currency     TEXT NOT NULL DEFAULT 'USD',
			status       TEXT NOT NULL DEFAULT 'pending',
			external_ref TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT fk_payments_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_business ON payments(business_id)`,
	)
}

func downCreatePayments(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `DROP TABLE IF EXISTS payments`)
}
