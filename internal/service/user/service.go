// Package user provisions operator accounts: creation, role changes and
// password resets. It backs the maintenance commands, not the HTTP API.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, email string, role domain.UserRole) (*domain.User, error)
	SetPassword(ctx context.Context, id uuid.UUID, hash string) error
}

type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages user accounts.
type Service struct {
	log        *slog.Logger
	users      userRepo
	tokens     tokenRepo
	tx         txManager
	bcryptCost int
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenRepo, tx txManager, bcryptCost int) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		tokens:     tokens,
		tx:         tx,
		bcryptCost: bcryptCost,
	}
}

// CreateInput holds the fields of a new account.
type CreateInput struct {
	Email    string          `json:"email"    validate:"required,email,max=255"`
	Name     string          `json:"name"     validate:"required,max=255"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
	Role     domain.UserRole `json:"role"`
}

// Create registers a local account. Guests have no user row, so the guest
// role is rejected.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if in.Role == "" {
		in.Role = domain.UserRoleUser
	}

	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if !in.Role.IsValid() || in.Role.IsGuest() {
		return nil, domain.NewValidationError("role", "debe ser user o admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user.Create: hash password: %w", err)
	}
	hashStr := string(hash)

	u, err := s.users.Create(ctx, &domain.User{
		Email:        &in.Email,
		Name:         in.Name,
		PasswordHash: &hashStr,
		Role:         in.Role,
		AuthProvider: domain.AuthProviderLocal,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
	)
	return u, nil
}

// SetRole changes the role of the account registered under email.
func (s *Service) SetRole(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	if !role.IsValid() || role.IsGuest() {
		return nil, domain.NewValidationError("role", "debe ser user o admin")
	}

	u, err := s.users.UpdateRole(ctx, strings.TrimSpace(email), role)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("user_id", u.ID.String()),
		slog.String("new_role", role.String()),
	)
	return u, nil
}

// ResetPassword replaces the password and revokes every refresh token of the
// account, so existing sessions end at their next refresh.
func (s *Service) ResetPassword(ctx context.Context, email, password string) error {
	if n := len(password); n < 8 || n > 72 {
		return domain.NewValidationError("password", "debe tener entre 8 y 72 caracteres")
	}

	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("user.ResetPassword: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("user.ResetPassword: hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.SetPassword(ctx, u.ID, string(hash)); err != nil {
			return err
		}
		return s.tokens.RevokeAllByUser(ctx, u.ID)
	})
	if err != nil {
		return fmt.Errorf("user.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "user password reset", slog.String("user_id", u.ID.String()))
	return nil
}
