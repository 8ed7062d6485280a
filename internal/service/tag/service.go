package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

type tagRepo interface {
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, id uuid.UUID, name, color *string) (*domain.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// Service manages business-scoped tags.
type Service struct {
	log        *slog.Logger
	tags       tagRepo
	businesses businessRepo
}

// NewService creates a new tag service.
func NewService(logger *slog.Logger, tags tagRepo, businesses businessRepo) *Service {
	return &Service{
		log:        logger.With("service", "tag"),
		tags:       tags,
		businesses: businesses,
	}
}

// List returns the tags of a business.
func (s *Service) List(ctx context.Context, businessID uuid.UUID) ([]domain.Tag, error) {
	if _, err := tenant.Business(ctx, s.businesses, businessID); err != nil {
		return nil, err
	}
	tags, err := s.tags.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("tag.List: %w", err)
	}
	return tags, nil
}

// Create adds a tag. Names are unique per business.
func (s *Service) Create(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error) {
	businessID := req.BusinessUUID()
	if _, err := tenant.Business(ctx, s.businesses, businessID); err != nil {
		return nil, err
	}

	t, err := s.tags.Create(ctx, &domain.Tag{
		BusinessID: businessID,
		Name:       req.TrimmedName(),
		Color:      req.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("tag.Create: %w", err)
	}

	s.log.InfoContext(ctx, "tag created", slog.String("tag_id", t.ID.String()))
	return t, nil
}

// Update renames or recolors a tag.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTagRequest) (*domain.Tag, error) {
	if _, err := s.owned(ctx, id); err != nil {
		return nil, err
	}

	name := req.Name
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, domain.NewValidationError("name", "es requerido")
		}
		name = &trimmed
	}

	t, err := s.tags.Update(ctx, id, name, req.Color)
	if err != nil {
		return nil, fmt.Errorf("tag.Update: %w", err)
	}
	return t, nil
}

// Delete removes a tag from the business and from every contact.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.owned(ctx, id); err != nil {
		return err
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("tag.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "tag deleted", slog.String("tag_id", id.String()))
	return nil
}

// owned loads a tag and checks that its business belongs to the caller.
func (s *Service) owned(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	t, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tag %s: %w", id, err)
	}
	if _, err := tenant.Business(ctx, s.businesses, t.BusinessID); err != nil {
		return nil, err
	}
	return t, nil
}
