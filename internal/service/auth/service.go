package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/receptionist-backend/internal/auth"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// businessRepo is used to check that a guest session targets a real business.
type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenIssuer signs access tokens.
type tokenIssuer interface {
	AccessToken(u *domain.User) (string, error)
	GuestToken(businessID uuid.UUID) (token, subject string, err error)
	AccessTTL() time.Duration
	GuestTTL() time.Duration
}

// Service implements auth operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	tokens     tokenRepo
	businesses businessRepo
	tx         txManager
	issuer     tokenIssuer
	refreshTTL time.Duration
	now        func() time.Time

	// dummyHash is compared against when the email is unknown, so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	businesses businessRepo,
	tx txManager,
	issuer tokenIssuer,
	refreshTTL time.Duration,
	bcryptCost int,
) *Service {
	dummy, err := bcrypt.GenerateFromPassword([]byte("receptionist-dummy-password"), bcryptCost)
	if err != nil {
		dummy = nil
	}
	return &Service{
		log:        logger.With("service", "auth"),
		users:      users,
		tokens:     tokens,
		businesses: businesses,
		tx:         tx,
		issuer:     issuer,
		refreshTTL: refreshTTL,
		now:        time.Now,
		dummyHash:  dummy,
	}
}

// issueSession signs an access token, stores the hash of a fresh refresh
// token and returns both raw tokens.
func (s *Service) issueSession(ctx context.Context, user *domain.User) (*Session, error) {
	access, err := s.issuer.AccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	now := s.now()
	refreshExpires := now.Add(s.refreshTTL)
	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, refreshExpires); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &Session{
		AccessToken:      access,
		AccessExpiresAt:  now.Add(s.issuer.AccessTTL()),
		RefreshToken:     rawRefresh,
		RefreshExpiresAt: refreshExpires,
		User:             user,
	}, nil
}
