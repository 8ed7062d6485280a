package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// maxDuration bounds how far back a booked slot can reach into a new one.
const maxDuration = 8 * time.Hour

type appointmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, f domain.AppointmentFilter) ([]domain.Appointment, int, error)
	ListBooked(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Appointment, error)
	LockSchedule(ctx context.Context, businessID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next domain.AppointmentStatus) (*domain.Appointment, error)
}

type contactRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Contact, error)
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	RecordInteraction(ctx context.Context, id uuid.UUID, at time.Time, booked bool) error
}

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service books appointments and moves them through their lifecycle.
type Service struct {
	log          *slog.Logger
	appointments appointmentRepo
	contacts     contactRepo
	businesses   businessRepo
	tx           txManager
	now          func() time.Time
}

// NewService creates a new appointment service.
func NewService(
	logger *slog.Logger,
	appointments appointmentRepo,
	contacts contactRepo,
	businesses businessRepo,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "appointment"),
		appointments: appointments,
		contacts:     contacts,
		businesses:   businesses,
		tx:           tx,
		now:          time.Now,
	}
}
