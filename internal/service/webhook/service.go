// Package webhook handles the events the voice platform posts during calls.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/appointment"
	"github.com/heartmarshall/receptionist-backend/internal/service/voice"
	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

type contactRepo interface {
	GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Contact, error)
	RecordInteraction(ctx context.Context, id uuid.UUID, at time.Time, booked bool) error
}

type interactionRepo interface {
	Create(ctx context.Context, v *domain.VoiceInteraction) (*domain.VoiceInteraction, error)
	ListByCall(ctx context.Context, businessID uuid.UUID, callID string) ([]domain.VoiceInteraction, error)
	AttachAppointment(ctx context.Context, id, appointmentID uuid.UUID) error
}

type booker interface {
	Book(ctx context.Context, b *domain.Business, in appointment.Booking) (*domain.Appointment, error)
	BookedSlots(ctx context.Context, b *domain.Business, day time.Time) ([]appointment.Slot, error)
}

// Result is the body returned to the platform. For function calls Result
// is read back to the caller by the assistant.
type Result struct {
	Result string `json:"result,omitempty"`
}

// Service dispatches webhook events by message type.
type Service struct {
	log          *slog.Logger
	businesses   businessRepo
	contacts     contactRepo
	interactions interactionRepo
	booker       booker
	now          func() time.Time
}

// NewService creates a new webhook service.
func NewService(
	logger *slog.Logger,
	businesses businessRepo,
	contacts contactRepo,
	interactions interactionRepo,
	bk booker,
) *Service {
	return &Service{
		log:          logger.With("service", "webhook"),
		businesses:   businesses,
		contacts:     contacts,
		interactions: interactions,
		booker:       bk,
		now:          time.Now,
	}
}

// Handle processes one event for a business. The caller has already
// authenticated the platform, so no tenant ownership applies.
func (s *Service) Handle(ctx context.Context, businessID uuid.UUID, ev dto.VapiEvent) (*Result, error) {
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("webhook business %s: %w", businessID, err)
	}

	msg := ev.Message
	log := s.log.With(
		slog.String("business_id", businessID.String()),
		slog.String("call_id", msg.CallID()),
		slog.String("type", msg.Type),
	)

	switch msg.Type {
	case dto.VapiEventCallStarted:
		return &Result{}, s.callStarted(ctx, log, b, msg)
	case dto.VapiEventCallEnded:
		return &Result{}, s.callEnded(ctx, log, b, msg)
	case dto.VapiEventTranscript:
		return &Result{}, s.transcript(ctx, log, b, msg)
	case dto.VapiEventFunctionCall:
		return s.functionCall(ctx, log, b, msg)
	}
	return nil, domain.NewValidationError("message.type", "tipo de evento no soportado")
}

func (s *Service) callStarted(ctx context.Context, log *slog.Logger, b *domain.Business, msg *dto.VapiMessage) error {
	log.InfoContext(ctx, "call started")

	phone := validate.NormalizePhone(msg.CallerNumber())
	if phone == "" {
		return nil
	}
	c, err := s.contacts.GetByPhone(ctx, b.ID, phone)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("webhook caller lookup: %w", err)
	}
	if err := s.contacts.RecordInteraction(ctx, c.ID, s.now(), false); err != nil {
		return fmt.Errorf("webhook record interaction: %w", err)
	}
	return nil
}

func (s *Service) callEnded(ctx context.Context, log *slog.Logger, b *domain.Business, msg *dto.VapiMessage) error {
	count := 0
	if id := msg.CallID(); id != "" {
		items, err := s.interactions.ListByCall(ctx, b.ID, id)
		if err != nil {
			return fmt.Errorf("webhook list call interactions: %w", err)
		}
		count = len(items)
	}

	if summary := strings.TrimSpace(msg.Summary); summary != "" {
		if _, err := s.save(ctx, b, msg, summary, voice.Intent{
			Type: domain.IntentTypeOther, Label: "call_summary", Confidence: 1,
		}); err != nil {
			return err
		}
	}

	log.InfoContext(ctx, "call ended",
		slog.String("reason", msg.EndedReason),
		slog.Int("interactions", count))
	return nil
}

func (s *Service) transcript(ctx context.Context, log *slog.Logger, b *domain.Business, msg *dto.VapiMessage) error {
	// Partial transcripts are superseded by the final one.
	if msg.TranscriptType != "" && msg.TranscriptType != "final" {
		return nil
	}
	if msg.Role != "" && msg.Role != "user" {
		return nil
	}

	text := strings.TrimSpace(msg.Transcript)
	intent := voice.DetectIntent(text)
	if _, err := s.save(ctx, b, msg, text, intent); err != nil {
		return err
	}

	log.DebugContext(ctx, "transcript stored", slog.String("intent", intent.Label))
	return nil
}

func (s *Service) save(ctx context.Context, b *domain.Business, msg *dto.VapiMessage, text string, intent voice.Intent) (*domain.VoiceInteraction, error) {
	var callID *string
	if id := msg.CallID(); id != "" {
		callID = &id
	}
	v, err := s.interactions.Create(ctx, &domain.VoiceInteraction{
		BusinessID:    b.ID,
		CallID:        callID,
		Transcription: text,
		Intent:        intent.Label,
		IntentType:    intent.Type,
		Confidence:    intent.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("webhook save interaction: %w", err)
	}
	return v, nil
}
