// Package business implements the Business repository using PostgreSQL.
package business

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const columns = `id, owner_id, name, phone, timezone, created_at, updated_at`

// Repo provides business persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new business repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a business by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	var b domain.Business
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &b,
		`SELECT `+columns+` FROM businesses WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "business", id)
	}
	return &b, nil
}

// ListByOwner returns the businesses owned by a user, oldest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error) {
	out := []domain.Business{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`SELECT `+columns+` FROM businesses WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, postgres.MapError(err, "business", ownerID)
	}
	return out, nil
}

// ListAll returns every business, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Business, error) {
	out := []domain.Business{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`SELECT `+columns+` FROM businesses ORDER BY created_at, id`)
	if err != nil {
		return nil, postgres.MapError(err, "business", "all")
	}
	return out, nil
}

// Create inserts a business.
func (r *Repo) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	var out domain.Business
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`INSERT INTO businesses (owner_id, name, phone, timezone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+columns,
		b.OwnerID, b.Name, b.Phone, b.Timezone)
	if err != nil {
		return nil, postgres.MapError(err, "business", b.Name)
	}
	return &out, nil
}
