package migrations

import (
	"context"
	"database/sql"
)

func upCreateContactsAndTags(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS contacts (
			id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			business_id         UUID NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			name                TEXT NOT NULL,
			phone               TEXT NOT NULL,
			email               TEXT,
			notes               TEXT,
			interactions_count  INTEGER NOT NULL DEFAULT 0,
			appointments_count  INTEGER NOT NULL DEFAULT 0,
			last_interaction_at TIMESTAMPTZ,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT uq_contacts_business_phone UNIQUE (business_id, phone)
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			business_id UUID NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			color       TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT uq_tags_business_name UNIQUE (business_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS contact_tags (
			contact_id UUID NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
			tag_id     UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (contact_id, tag_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_tags_tag_id ON contact_tags(tag_id)`,
	)
}

func downCreateContactsAndTags(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx,
		`DROP TABLE IF EXISTS contact_tags`,
		`DROP TABLE IF EXISTS tags`,
		`DROP TABLE IF EXISTS contacts`,
	)
}
