package migrations

import (
	"context"
	"database/sql"
)

// upCreateAssistants moves the inline assistant columns of businesses into
// their own table, one row per business that had any assistant data.
func upCreateAssistants(ctx context.Context, tx *sql.Tx) error {
	if err := createEnum(ctx, tx, "voice_provider", "11labs", "azure", "playht"); err != nil {
		return err
	}
	if err := createEnum(ctx, tx, "model_provider", "openai", "anthropic", "google"); err != nil {
		return err
	}
	err := execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS assistants (
			id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			business_id    UUID NOT NULL UNIQUE REFERENCES businesses(id) ON DELETE CASCADE,
			name           TEXT NOT NULL,
			voice_provider voice_provider NOT NULL DEFAULT '11labs',
			voice_id       TEXT NOT NULL DEFAULT '',
			model_provider model_provider NOT NULL DEFAULT 'openai',
			model          TEXT NOT NULL DEFAULT 'gpt-4o-mini',
			first_message  TEXT NOT NULL DEFAULT '',
			external_id    TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}

	inline, err := columnExists(ctx, tx, "businesses", "assistant_name")
	if err != nil || !inline {
		return err
	}
	return execAll(ctx, tx, `
		INSERT INTO assistants (business_id, name, voice_id)
		SELECT id, COALESCE(assistant_name, 'Asistente'), COALESCE(assistant_voice_id, '')
		FROM businesses
		WHERE assistant_name IS NOT NULL OR assistant_voice_id IS NOT NULL
		ON CONFLICT (business_id) DO NOTHING`,
		`ALTER TABLE businesses DROP COLUMN assistant_name, DROP COLUMN IF EXISTS assistant_voice_id`,
	)
}

func downCreateAssistants(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx,
		`ALTER TABLE businesses
			ADD COLUMN IF NOT EXISTS assistant_name TEXT,
			ADD COLUMN IF NOT EXISTS assistant_voice_id TEXT`,
		`UPDATE businesses b
			SET assistant_name = a.name, assistant_voice_id = NULLIF(a.voice_id, '')
			FROM assistants a
			WHERE a.business_id = b.id`,
		`DROP TABLE IF EXISTS assistants`,
		`DROP TYPE IF EXISTS model_provider`,
		`DROP TYPE IF EXISTS voice_provider`,
	)
}
