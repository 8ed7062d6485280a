package migrations

import (
	"context"
	"database/sql"
)

func upCreateAssistantConfigurations(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS assistant_configurations (
			id                       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assistant_id             UUID NOT NULL UNIQUE REFERENCES assistants(id) ON DELETE CASCADE,
			business_id              UUID NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			voice_prompt             TEXT NOT NULL DEFAULT '',
			voice_prompt_is_custom   BOOLEAN NOT NULL DEFAULT false,
			voice_prompt_tokens      INTEGER NOT NULL DEFAULT 0,
			voice_prompt_source      TEXT NOT NULL DEFAULT 'generated'
				CHECK (voice_prompt_source IN ('generated', 'custom')),
			chatbot_prompt           TEXT NOT NULL DEFAULT '',
			chatbot_prompt_is_custom BOOLEAN NOT NULL DEFAULT false,
			chatbot_prompt_tokens    INTEGER NOT NULL DEFAULT 0,
			chatbot_prompt_source    TEXT NOT NULL DEFAULT 'generated'
				CHECK (chatbot_prompt_source IN ('generated', 'custom')),
			behavior_config          JSONB NOT NULL DEFAULT '{}'::jsonb,
			sync_status              TEXT NOT NULL DEFAULT 'never'
				CHECK (sync_status IN ('never', 'pending', 'synced', 'failed')),
			synced_at                TIMESTAMPTZ,
			sync_error               TEXT,
			created_at               TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at               TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assistant_configurations_business ON assistant_configurations(business_id)`,
	)
}

func downCreateAssistantConfigurations(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `DROP TABLE IF EXISTS assistant_configurations`)
}
