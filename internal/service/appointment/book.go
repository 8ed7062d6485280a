package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

// Booking is an appointment request, independent of where it came from.
type Booking struct {
	ContactID          *uuid.UUID
	ClientName         string
	ClientPhone        string // normalized
	ClientEmail        *string
	ServiceType        string
	StartsAt           time.Time
	DurationMinutes    int
	Notes              *string
	VoiceInteractionID *uuid.UUID
}

// Create books an appointment on behalf of the caller.
func (s *Service) Create(ctx context.Context, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	b, err := tenant.Business(ctx, s.businesses, req.BusinessUUID())
	if err != nil {
		return nil, err
	}
	return s.Book(ctx, b, Booking{
		ContactID:       req.ContactUUID(),
		ClientName:      req.ClientName,
		ClientPhone:     req.NormalizedPhone(),
		ClientEmail:     req.ClientEmail,
		ServiceType:     req.ServiceType,
		StartsAt:        req.StartTime(),
		DurationMinutes: req.Duration(),
		Notes:           req.Notes,
	})
}

// Book creates an appointment for a business the caller was already checked
// against. The booking is linked to the given contact, or to the contact
// with the same phone, which is created when missing. The contact's counters
// are bumped in the same transaction.
func (s *Service) Book(ctx context.Context, b *domain.Business, in Booking) (*domain.Appointment, error) {
	now := s.now()
	if !in.StartsAt.After(now) {
		return nil, domain.NewValidationError("starts_at", "debe ser una fecha futura")
	}
	if in.DurationMinutes <= 0 {
		in.DurationMinutes = dto.DefaultDurationMinutes
	}

	if in.ContactID != nil {
		c, err := s.contacts.GetByID(ctx, *in.ContactID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("appointment.Book get contact: %w", err)
		}
		if err != nil || c.BusinessID != b.ID {
			return nil, domain.NewValidationError("contact_id", "no existe")
		}
	}

	var created *domain.Appointment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Held until commit, so concurrent bookings of one business see each other.
		if err := s.appointments.LockSchedule(ctx, b.ID); err != nil {
			return fmt.Errorf("lock schedule: %w", err)
		}
		if err := s.ensureFree(ctx, b.ID, in); err != nil {
			return err
		}

		contactID, err := s.resolveContact(ctx, b.ID, in)
		if err != nil {
			return err
		}

		created, err = s.appointments.Create(ctx, &domain.Appointment{
			BusinessID:         b.ID,
			ContactID:          contactID,
			VoiceInteractionID: in.VoiceInteractionID,
			ClientName:         in.ClientName,
			ClientPhone:        in.ClientPhone,
			ClientEmail:        in.ClientEmail,
			ServiceType:        in.ServiceType,
			StartsAt:           in.StartsAt.UTC(),
			DurationMinutes:    in.DurationMinutes,
			Status:             domain.AppointmentStatusPending,
			Notes:              in.Notes,
		})
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		if err := s.contacts.RecordInteraction(ctx, *contactID, now, true); err != nil {
			return fmt.Errorf("record interaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("appointment.Book: %w", err)
	}

	s.log.InfoContext(ctx, "appointment booked",
		slog.String("appointment_id", created.ID.String()),
		slog.String("business_id", b.ID.String()),
		slog.Time("starts_at", created.StartsAt))
	return created, nil
}

// ensureFree rejects a booking that overlaps a pending or confirmed one.
func (s *Service) ensureFree(ctx context.Context, businessID uuid.UUID, in Booking) error {
	end := in.StartsAt.Add(time.Duration(in.DurationMinutes) * time.Minute)
	booked, err := s.appointments.ListBooked(ctx, businessID, in.StartsAt.Add(-maxDuration), end)
	if err != nil {
		return fmt.Errorf("list booked: %w", err)
	}
	for _, a := range booked {
		if a.EndsAt().After(in.StartsAt) {
			return fmt.Errorf("slot taken by %s: %w", a.ID, domain.ErrConflict)
		}
	}
	return nil
}

func (s *Service) resolveContact(ctx context.Context, businessID uuid.UUID, in Booking) (*uuid.UUID, error) {
	if in.ContactID != nil {
		return in.ContactID, nil
	}

	c, err := s.contacts.GetByPhone(ctx, businessID, in.ClientPhone)
	if err == nil {
		return &c.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get contact by phone: %w", err)
	}

	c, err = s.contacts.Create(ctx, &domain.Contact{
		BusinessID: businessID,
		Name:       in.ClientName,
		Phone:      in.ClientPhone,
		Email:      in.ClientEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &c.ID, nil
}
