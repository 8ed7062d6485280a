package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

const uuidPattern = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`

// upUsersUUIDPrimaryKey converts users.id from text to uuid. Rows whose id is
// not UUID-formatted abort the migration; nothing is rewritten.
func upUsersUUIDPrimaryKey(ctx context.Context, tx *sql.Tx) error {
	var (
		invalid int
		sample  sql.NullString
	)
	err := tx.QueryRowContext(ctx,
		`SELECT count(*), min(id) FROM users WHERE id !~ $1`, uuidPattern,
	).Scan(&invalid, &sample)
	if err != nil {
		return fmt.Errorf("scan users for non-UUID ids: %w", err)
	}
	if invalid > 0 {
		return fmt.Errorf("users: %d row(s) have a non-UUID id (e.g. %q); fix or remove them before converting the primary key to uuid",
			invalid, sample.String)
	}

	return execAll(ctx, tx, `
		ALTER TABLE users
			ALTER COLUMN id TYPE UUID USING id::uuid,
			ALTER COLUMN id SET DEFAULT gen_random_uuid()`)
}

func downUsersUUIDPrimaryKey(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, `
		ALTER TABLE users
			ALTER COLUMN id DROP DEFAULT,
			ALTER COLUMN id TYPE TEXT USING id::text`)
}
