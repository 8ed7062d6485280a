// Package migrations holds the ordered schema migration set. Every step is a
// goose Go migration executed inside a transaction by the goose provider.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

// All returns the full migration set in version order.
func All(logger *slog.Logger) []*goose.Migration {
	logger = logger.With("component", "migrations")
	return []*goose.Migration{
		tx(1, upCreateUsers, downCreateUsers),
		tx(2, upUsersUUIDPrimaryKey, downUsersUUIDPrimaryKey),
		tx(3, upAddGuestRole, downAddGuestRole(logger)),
		tx(4, upCreateBusinesses, downCreateBusinesses),
		tx(5, upCreateContactsAndTags, downCreateContactsAndTags),
		tx(6, upCreateAppointments, downCreateAppointments),
		tx(7, upCreateVoiceInteractions, downCreateVoiceInteractions),
		tx(8, upCreateAssistants, downCreateAssistants),
		tx(9, upCreateAssistantConfigurations, downCreateAssistantConfigurations),
		tx(10, upCreatePayments, downCreatePayments),
		tx(11, upPaymentsUserOptional, downPaymentsUserOptional),
		tx(12, upCreateRefreshTokens, downCreateRefreshTokens),
	}
}

// NewProvider returns a goose provider over the compiled-in migration set.
// The global goose registry is not consulted.
func NewProvider(db *sql.DB, logger *slog.Logger) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, nil,
		goose.WithGoMigrations(All(logger)...),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return nil, fmt.Errorf("migrations: new provider: %w", err)
	}
	return p, nil
}

type txFunc func(ctx context.Context, tx *sql.Tx) error

func tx(version int64, up, down txFunc) *goose.Migration {
	return goose.NewGoMigration(version, &goose.GoFunc{RunTx: up}, &goose.GoFunc{RunTx: down})
}

// execAll runs statements in order and stops at the first failure.
func execAll(ctx context.Context, tx *sql.Tx, stmts ...string) error {
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("%s: %w", summary(s), err)
		}
	}
	return nil
}

func summary(stmt string) string {
	stmt = strings.Join(strings.Fields(stmt), " ")
	if len(stmt) > 60 {
		return stmt[:60] + "..."
	}
	return stmt
}

func enumExists(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var ok bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = $1 AND typtype = 'e')`, name,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check enum %s: %w", name, err)
	}
	return ok, nil
}

func enumHasLabel(ctx context.Context, tx *sql.Tx, name, label string) (bool, error) {
	var ok bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM pg_enum e JOIN pg_type t ON t.oid = e.enumtypid
			WHERE t.typname = $1 AND e.enumlabel = $2
		)`, name, label,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check enum label %s.%s: %w", name, label, err)
	}
	return ok, nil
}

func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	var ok bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2
		)`, table, column,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check column %s.%s: %w", table, column, err)
	}
	return ok, nil
}

// createEnum creates an enum type unless one with the same name already exists.
func createEnum(ctx context.Context, tx *sql.Tx, name string, labels ...string) error {
	exists, err := enumExists(ctx, tx, name)
	if err != nil || exists {
		return err
	}
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = "'" + strings.ReplaceAll(l, "'", "''") + "'"
	}
	return execAll(ctx, tx, fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", name, strings.Join(quoted, ", ")))
}
