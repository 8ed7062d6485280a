package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/appointment"
	"github.com/heartmarshall/receptionist-backend/internal/service/voice"
)

func (s *Service) functionCall(ctx context.Context, log *slog.Logger, b *domain.Business, msg *dto.VapiMessage) (*Result, error) {
	fc := msg.FunctionCall
	log = log.With(slog.String("function", fc.Name))

	switch fc.Name {
	case dto.FunctionBookAppointment:
		return s.bookAppointment(ctx, log, b, msg)
	case dto.FunctionCheckAvailability:
		return s.checkAvailability(ctx, b, fc)
	}

	log.WarnContext(ctx, "unknown function call")
	return &Result{Result: fmt.Sprintf("La función %q no está disponible.", fc.Name)}, nil
}

func (s *Service) bookAppointment(ctx context.Context, log *slog.Logger, b *domain.Business, msg *dto.VapiMessage) (*Result, error) {
	p := msg.FunctionCall.BookingParams(msg.CallerNumber())
	if err := dto.Validate(p); err != nil {
		return &Result{Result: "Faltan datos para reservar: " + describe(err)}, nil
	}

	loc := location(b)
	start, err := p.StartsAt(loc)
	if err != nil {
		return &Result{Result: "No entendí la fecha u hora de la cita."}, nil
	}

	interaction, err := s.save(ctx, b, msg,
		fmt.Sprintf("%s %s %s %s", p.Name, p.Service, p.Date, p.Time),
		voice.Intent{Type: domain.IntentTypeSchedule, Label: dto.FunctionBookAppointment, Confidence: 1})
	if err != nil {
		return nil, err
	}

	appt, err := s.booker.Book(ctx, b, appointment.Booking{
		ClientName:         strings.TrimSpace(p.Name),
		ClientPhone:        p.NormalizedPhone(),
		ClientEmail:        p.Email,
		ServiceType:        strings.TrimSpace(p.Service),
		StartsAt:           start,
		DurationMinutes:    p.Duration(),
		Notes:              p.Notes,
		VoiceInteractionID: &interaction.ID,
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		return &Result{Result: "Ese horario ya está ocupado. Propón otro horario al cliente."}, nil
	case errors.Is(err, domain.ErrValidation):
		return &Result{Result: "No se pudo reservar: " + describe(err)}, nil
	case err != nil:
		return nil, fmt.Errorf("webhook book: %w", err)
	}

	if err := s.interactions.AttachAppointment(ctx, interaction.ID, appt.ID); err != nil {
		return nil, fmt.Errorf("webhook attach appointment: %w", err)
	}

	log.InfoContext(ctx, "appointment booked by assistant", slog.String("appointment_id", appt.ID.String()))
	return &Result{Result: fmt.Sprintf("Cita reservada para %s el %s a las %s.",
		appt.ClientName, start.Format("2006-01-02"), start.Format("15:04"))}, nil
}

func (s *Service) checkAvailability(ctx context.Context, b *domain.Business, fc *dto.VapiFunctionCall) (*Result, error) {
	q := fc.AvailabilityParams()
	if err := dto.Validate(q); err != nil {
		return &Result{Result: "Indica la fecha en formato AAAA-MM-DD."}, nil
	}

	slots, err := s.booker.BookedSlots(ctx, b, q.Day())
	if err != nil {
		return nil, fmt.Errorf("webhook availability: %w", err)
	}
	if len(slots) == 0 {
		return &Result{Result: fmt.Sprintf("No hay citas reservadas el %s.", q.Date)}, nil
	}

	parts := make([]string, len(slots))
	for i, sl := range slots {
		parts[i] = sl.Start.Format("15:04") + "-" + sl.End.Format("15:04")
	}
	return &Result{Result: fmt.Sprintf("Horarios ocupados el %s: %s.", q.Date, strings.Join(parts, ", "))}, nil
}

func location(b *domain.Business) *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func describe(err error) string {
	fields := domain.Fields(err)
	if len(fields) == 0 {
		return err.Error()
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + " " + f.Message
	}
	return strings.Join(parts, "; ")
}
