package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// upPaymentsUserOptional keeps payment history when a user is deleted.
func upPaymentsUserOptional(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx,
		`ALTER TABLE payments ALTER COLUMN user_id DROP NOT NULL`,
		`ALTER TABLE payments DROP CONSTRAINT IF EXISTS fk_payments_user`,
		`ALTER TABLE payments
			ADD CONSTRAINT fk_payments_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL`,
	)
}

func downPaymentsUserOptional(ctx context.Context, tx *sql.Tx) error {
	var orphaned int
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM payments WHERE user_id IS NULL`).Scan(&orphaned); err != nil {
		return fmt.Errorf("count payments without user: %w", err)
	}
	if orphaned > 0 {
		return fmt.Errorf("payments: %d row(s) have no user_id; cannot restore NOT NULL without deleting payment history", orphaned)
	}
	return execAll(ctx, tx,
		`ALTER TABLE payments DROP CONSTRAINT IF EXISTS fk_payments_user`,
		`ALTER TABLE payments ALTER COLUMN user_id SET NOT NULL`,
		`ALTER TABLE payments
			ADD CONSTRAINT fk_payments_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE`,
	)
}
