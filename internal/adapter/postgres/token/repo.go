// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const columns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new token repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t,
		`INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+columns,
		userID, tokenHash, expiresAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", userID)
	}
	return &t, nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t,
		`SELECT `+columns+` FROM refresh_tokens
		 WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`,
		tokenHash)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by hash")
	}
	return &t, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`, id)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes tokens that expired or were revoked before cutoff.
// Returns the count of deleted tokens.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < $1 OR revoked_at < $1`, cutoff)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}
	return tag.RowsAffected(), nil
}
