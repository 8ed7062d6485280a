package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

type contactRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error)
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	Update(ctx context.Context, id uuid.UUID, name, phone, email, notes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Upsert(ctx context.Context, c *domain.Contact) (bool, error)
	AddTag(ctx context.Context, contactID, tagID uuid.UUID) error
	RemoveTag(ctx context.Context, contactID, tagID uuid.UUID) error
}

type tagRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
}

type appointmentRepo interface {
	List(ctx context.Context, f domain.AppointmentFilter) ([]domain.Appointment, int, error)
}

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config tunes imports and exports.
type Config struct {
	ImportMaxRows   int
	ImportChunkSize int
	ExportPageSize  int
}

// DefaultConfig returns the limits used in production.
func DefaultConfig() Config {
	return Config{
		ImportMaxRows:   5000,
		ImportChunkSize: 100,
		ExportPageSize:  200,
	}
}

// Service manages the contacts of a business.
type Service struct {
	log          *slog.Logger
	contacts     contactRepo
	tags         tagRepo
	appointments appointmentRepo
	businesses   businessRepo
	tx           txManager
	cfg          Config
	now          func() time.Time
}

// NewService creates a new contact service.
func NewService(
	logger *slog.Logger,
	contacts contactRepo,
	tags tagRepo,
	appointments appointmentRepo,
	businesses businessRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		log:          logger.With("service", "contact"),
		contacts:     contacts,
		tags:         tags,
		appointments: appointments,
		businesses:   businesses,
		tx:           tx,
		cfg:          cfg,
		now:          time.Now,
	}
}

// owned loads a contact and checks that its business belongs to the caller.
func (s *Service) owned(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contact %s: %w", id, err)
	}
	if _, err := tenant.Business(ctx, s.businesses, c.BusinessID); err != nil {
		return nil, err
	}
	return c, nil
}

// businessTag loads a tag and checks it belongs to the business.
func (s *Service) businessTag(ctx context.Context, businessID, tagID uuid.UUID) (*domain.Tag, error) {
	t, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("tag %s: %w", tagID, err)
	}
	if t.BusinessID != businessID {
		return nil, fmt.Errorf("tag %s: %w", tagID, domain.ErrNotFound)
	}
	return t, nil
}
