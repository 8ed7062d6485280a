package business

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
	"github.com/heartmarshall/receptionist-backend/pkg/ctxutil"
)

const defaultTimezone = "UTC"

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error)
	ListAll(ctx context.Context) ([]domain.Business, error)
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
}

// Service manages tenants.
type Service struct {
	log        *slog.Logger
	businesses businessRepo
}

// NewService creates a new business service.
func NewService(logger *slog.Logger, businesses businessRepo) *Service {
	return &Service{
		log:        logger.With("service", "business"),
		businesses: businesses,
	}
}

// List returns the businesses visible to the caller: all of them for admins,
// the bound one for guests, the owned ones otherwise.
func (s *Service) List(ctx context.Context) ([]domain.Business, error) {
	id := ctxutil.IdentityFromCtx(ctx)
	if id == nil {
		return nil, domain.ErrUnauthorized
	}

	switch {
	case id.IsAdmin():
		list, err := s.businesses.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("business.List: %w", err)
		}
		return list, nil
	case id.IsGuest():
		b, err := tenant.Business(ctx, s.businesses, *id.BusinessID)
		if err != nil {
			return nil, fmt.Errorf("business.List: %w", err)
		}
		return []domain.Business{*b}, nil
	}

	list, err := s.businesses.ListByOwner(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("business.List: %w", err)
	}
	return list, nil
}

// Get returns one business the caller may act on.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return tenant.Business(ctx, s.businesses, id)
}

// Create registers a new business owned by the caller.
func (s *Service) Create(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tz := req.Timezone
	if tz == "" {
		tz = defaultTimezone
	}

	b, err := s.businesses.Create(ctx, &domain.Business{
		OwnerID:  ownerID,
		Name:     strings.TrimSpace(req.Name),
		Phone:    req.NormalizedPhone(),
		Timezone: tz,
	})
	if err != nil {
		return nil, fmt.Errorf("business.Create: %w", err)
	}

	s.log.InfoContext(ctx, "business created",
		slog.String("business_id", b.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return b, nil
}
