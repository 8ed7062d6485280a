package migrations

import (
	"context"
	"database/sql"
	"log/slog"
)

func upAddGuestRole(ctx context.Context, tx *sql.Tx) error {
	has, err := enumHasLabel(ctx, tx, "user_role", "guest")
	if err != nil || has {
		return err
	}
	return execAll(ctx, tx, `ALTER TYPE user_role ADD VALUE 'guest'`)
}

// PostgreSQL cannot drop an enum label, so the revert only logs.
func downAddGuestRole(logger *slog.Logger) txFunc {
	return func(ctx context.Context, _ *sql.Tx) error {
		logger.WarnContext(ctx, "irreversible migration: user_role keeps the 'guest' label",
			slog.Int64("version", 3))
		return nil
	}
}
