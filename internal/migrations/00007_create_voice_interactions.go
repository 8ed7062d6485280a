package migrations

import (
	"context"
	"database/sql"
)

func upCreateVoiceInteractions(ctx context.Context, tx *sql.Tx) error {
	if err := createEnum(ctx, tx, "intent_type",
		"schedule_appointment", "cancel_appointment", "reschedule_appointment",
		"business_info", "greeting", "other"); err != nil {
		return err
	}
	err := execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS voice_interactions (
			id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			business_id    UUID NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			appointment_id UUID REFERENCES appointments(id) ON DELETE SET NULL,
			call_id        TEXT,
			transcription  TEXT NOT NULL,
			intent         TEXT NOT NULL DEFAULT '',
			intent_type    intent_type NOT NULL DEFAULT 'other',
			response       TEXT NOT NULL DEFAULT '',
			confidence     DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (confidence >= 0 AND confidence <= 1),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_voice_interactions_business ON voice_interactions(business_id, created_at DESC)`,
	)
	if err != nil {
		return err
	}

	exists, err := columnExists(ctx, tx, "appointments", "voice_interaction_id")
	if err != nil || exists {
		return err
	}
	return execAll(ctx, tx, `
		ALTER TABLE appointments
			ADD COLUMN voice_interaction_id UUID REFERENCES voice_interactions(id) ON DELETE SET NULL`)
}

func downCreateVoiceInteractions(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx,
		`ALTER TABLE appointments DROP COLUMN IF EXISTS voice_interaction_id`,
		`DROP TABLE IF EXISTS voice_interactions`,
		`DROP TYPE IF EXISTS intent_type`,
	)
}
