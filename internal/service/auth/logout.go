package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/auth"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/pkg/ctxutil"
)

// Logout revokes refresh tokens. An authenticated user loses every session;
// otherwise only the presented refresh token is revoked. Logging out twice
// is not an error.
func (s *Service) Logout(ctx context.Context, rawRefresh string) error {
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
			return fmt.Errorf("auth.Logout: %w", err)
		}
		s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
		return nil
	}

	if rawRefresh == "" {
		return nil
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(rawRefresh))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}
	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return fmt.Errorf("auth.Logout revoke: %w", err)
	}
	return nil
}

// Me returns the caller's identity. Guest sessions are answered from the
// token alone.
func (s *Service) Me(ctx context.Context) (*Me, error) {
	id := ctxutil.IdentityFromCtx(ctx)
	if id == nil {
		return nil, domain.ErrUnauthorized
	}
	if id.IsGuest() {
		return GuestMe(id), nil
	}

	user, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	return &Me{
		ID:    user.ID.String(),
		Email: user.EmailOrEmpty(),
		Name:  user.Name,
		Role:  user.Role.String(),
	}, nil
}

// CleanupExpiredTokens removes refresh tokens that expired before now-olderThan.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context, olderThan time.Duration) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx, s.now().Add(-olderThan))
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int64("count", count))
	}
	return count, nil
}
