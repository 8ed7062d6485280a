package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
)

// Guest opens an anonymous session for the given business. No user row is
// created; the session lives only in the signed token.
func (s *Service) Guest(ctx context.Context, req dto.GuestSessionRequest) (*GuestSession, error) {
	businessID := req.BusinessUUID()

	if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("business_id", "no existe")
		}
		return nil, fmt.Errorf("auth.Guest get business: %w", err)
	}

	token, subject, err := s.issuer.GuestToken(businessID)
	if err != nil {
		return nil, fmt.Errorf("auth.Guest sign token: %w", err)
	}

	s.log.InfoContext(ctx, "guest session opened",
		slog.String("business_id", businessID.String()),
		slog.String("session", subject))

	return &GuestSession{
		AccessToken: token,
		ExpiresAt:   s.now().Add(s.issuer.GuestTTL()),
		Subject:     subject,
		BusinessID:  businessID,
	}, nil
}
