// Package tag implements the Tag repository using PostgreSQL.
package tag

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const columns = `id, business_id, name, color, created_at`

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new tag repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// List returns the tags of a business ordered by name.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID) ([]domain.Tag, error) {
	out := []domain.Tag{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`SELECT `+columns+` FROM tags WHERE business_id = $1 ORDER BY name`, businessID)
	if err != nil {
		return nil, postgres.MapError(err, "tag", businessID)
	}
	return out, nil
}

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	var t domain.Tag
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t,
		`SELECT `+columns+` FROM tags WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return &t, nil
}

// Create inserts a tag. A duplicate name in the business is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	var out domain.Tag
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`INSERT INTO tags (business_id, name, color) VALUES ($1, $2, $3) RETURNING `+columns,
		t.BusinessID, t.Name, t.Color)
	if err != nil {
		return nil, postgres.MapError(err, "tag", t.Name)
	}
	return &out, nil
}

// Update changes the non-nil fields of a tag.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, color *string) (*domain.Tag, error) {
	b := postgres.Builder().Update("tags").Where("id = ?", id).Suffix("RETURNING " + columns)
	if name != nil {
		b = b.Set("name", *name)
	}
	if color != nil {
		b = b.Set("color", *color)
	}
	if name == nil && color == nil {
		return r.GetByID(ctx, id)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var out domain.Tag
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return &out, nil
}

// Delete removes a tag and its contact links.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}
	return postgres.Exactly1(tag, "tag", id)
}
