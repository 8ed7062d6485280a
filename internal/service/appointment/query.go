package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

// List returns one page of appointments and the total match count.
func (s *Service) List(ctx context.Context, f domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	if _, err := tenant.Business(ctx, s.businesses, f.BusinessID); err != nil {
		return nil, 0, err
	}
	items, total, err := s.appointments.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("appointment.List: %w", err)
	}
	return items, total, nil
}

// UpdateStatus moves an appointment to a new status. Terminal states are
// immutable and a confirmed appointment cannot go back to pending; both are
// domain.ErrConflict.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateAppointmentStatusRequest) (*domain.Appointment, error) {
	current, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment %s: %w", id, err)
	}
	if _, err := tenant.Business(ctx, s.businesses, current.BusinessID); err != nil {
		return nil, err
	}

	next := req.AppointmentStatus()
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("appointment %s cannot move from %s to %s: %w", id, current.Status, next, domain.ErrConflict)
	}

	updated, err := s.appointments.UpdateStatus(ctx, id, current.Status, next)
	if err != nil {
		return nil, fmt.Errorf("appointment.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "appointment status changed",
		slog.String("appointment_id", id.String()),
		slog.String("from", current.Status.String()),
		slog.String("to", next.String()))
	return updated, nil
}

// Slot is an occupied interval of a day.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookedSlots lists the occupied intervals of one local calendar day of the
// business. day is interpreted in the business time zone.
func (s *Service) BookedSlots(ctx context.Context, b *domain.Business, day time.Time) ([]Slot, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)

	booked, err := s.appointments.ListBooked(ctx, b.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("appointment.BookedSlots: %w", err)
	}

	slots := make([]Slot, len(booked))
	for i, a := range booked {
		slots[i] = Slot{Start: a.StartsAt.In(loc), End: a.EndsAt().In(loc)}
	}
	return slots, nil
}
