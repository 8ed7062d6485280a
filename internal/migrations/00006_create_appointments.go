package migrations

import (
	"context"
	"database/sql"
)

// Appointments outlive their contact: the link is cleared, not cascaded.
func upCreateAppointments(ctx context.Context, tx *sql.Tx) error {
	if err := createEnum(ctx, tx, "appointment_status",
		"pending", "confirmed", "cancelled", "completed", "no_show"); err != nil {
		return err
	}
	return execAll(ctx, tx, `
		CREATE TABLE IF NOT EXISTS appointments (
			id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			business_id      UUID NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			contact_id       UUID REFERENCES contacts(id) ON DELETE SET NULL,
			client_name      TEXT NOT NULL,
			client_phone     TEXT NOT NULL,
			client_email     TEXT,
			service_type     TEXT NOT NULL,
			starts_at        TIMESTAMPTZ NOT NULL,
			duration_minutes INTEGER NOT NULL DEFAULT 30 CHECK (duration_minutes > 0),
			status           appointment_status NOT NULL DEFAULT 'pending',
			notes            TEXT,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_business_starts ON appointments(business_id, starts_at)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_contact_id ON appointments(contact_id)`,
	)
}

func downCreateAppointments(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx,
		`DROP TABLE IF EXISTS appointments`,
		`DROP TYPE IF EXISTS appointment_status`,
	)
}
