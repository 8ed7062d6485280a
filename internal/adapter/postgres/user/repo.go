// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const columns = `id, email, name, password_hash, role::text AS role, auth_provider,
	reset_token, reset_token_expires_at, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+columns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email address. Emails are compared
// case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+columns+` FROM users WHERE lower(email) = lower($1)`, email)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return row.toDomain(), nil
}

// Create inserts a new user and returns the persisted row. A zero ID is
// generated by the database.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO users (id, email, name, password_hash, role, auth_provider)
		 VALUES ($1, $2, $3, $4, $5::user_role, $6)
		 RETURNING `+columns,
		id, u.Email, u.Name, u.PasswordHash, string(u.Role), string(u.AuthProvider))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.EmailOrEmpty())
	}
	return row.toDomain(), nil
}

// UpdateRole sets the role of the user with the given email.
// Returns domain.ErrNotFound when no user has that email.
func (r *Repo) UpdateRole(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE users SET role = $2::user_role, updated_at = now()
		 WHERE lower(email) = lower($1)
		 RETURNING `+columns,
		email, string(role))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return row.toDomain(), nil
}

// SetPassword replaces the password hash and clears any pending reset token.
func (r *Repo) SetPassword(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE users SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL, updated_at = now()
		 WHERE id = $1`,
		id, hash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	return postgres.Exactly1(tag, "user", id)
}

type userRow struct {
	ID                  uuid.UUID  `db:"id"`
	Email               *string    `db:"email"`
	Name                string     `db:"name"`
	PasswordHash        *string    `db:"password_hash"`
	Role                string     `db:"role"`
	AuthProvider        string     `db:"auth_provider"`
	ResetToken          *string    `db:"reset_token"`
	ResetTokenExpiresAt *time.Time `db:"reset_token_expires_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (row userRow) toDomain() *domain.User {
	return &domain.User{
		ID:                  row.ID,
		Email:               row.Email,
		Name:                row.Name,
		PasswordHash:        row.PasswordHash,
		Role:                domain.UserRole(row.Role),
		AuthProvider:        domain.AuthProvider(row.AuthProvider),
		ResetToken:          row.ResetToken,
		ResetTokenExpiresAt: row.ResetTokenExpiresAt,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
