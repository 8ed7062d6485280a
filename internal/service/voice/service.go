// Package voice answers caller utterances and wraps the speech vendor.
package voice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/adapter/speech"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/observer"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

type interactionRepo interface {
	Create(ctx context.Context, v *domain.VoiceInteraction) (*domain.VoiceInteraction, error)
}

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

type speechClient interface {
	Enabled() bool
	Synthesize(ctx context.Context, text, voiceID string) (*speech.Audio, error)
	Transcribe(ctx context.Context, audio io.Reader, filename, language string) (*speech.Transcript, error)
}

// Reply is the answer to one utterance.
type Reply struct {
	InteractionID uuid.UUID         `json:"interaction_id"`
	Transcription string            `json:"transcription"`
	Intent        string            `json:"intent"`
	IntentType    domain.IntentType `json:"intent_type"`
	Response      string            `json:"response"`
	Confidence    float64           `json:"confidence"`
	Language      string            `json:"language"`
}

// Status reports which voice capabilities are available.
type Status struct {
	Provider     string `json:"provider"`
	SpeechToText bool   `json:"speech_to_text"`
	TextToSpeech bool   `json:"text_to_speech"`
	IntentEngine string `json:"intent_engine"`
	Ready        bool   `json:"ready"`
}

// Service implements the voice use cases.
type Service struct {
	log          *slog.Logger
	businesses   businessRepo
	interactions interactionRepo
	speech       speechClient
}

// NewService creates a new voice service.
func NewService(logger *slog.Logger, businesses businessRepo, interactions interactionRepo, sp speechClient) *Service {
	return &Service{
		log:          logger.With("service", "voice"),
		businesses:   businesses,
		interactions: interactions,
		speech:       sp,
	}
}

// ProcessText classifies an utterance, answers it and stores the exchange.
func (s *Service) ProcessText(ctx context.Context, req dto.ProcessTextRequest) (*Reply, error) {
	b, err := tenant.Business(ctx, s.businesses, req.BusinessUUID())
	if err != nil {
		return nil, err
	}
	return s.answer(ctx, b, strings.TrimSpace(req.Text), req.CallID, req.Language)
}

// Process transcribes an audio clip and answers it like ProcessText.
func (s *Service) Process(ctx context.Context, businessID uuid.UUID, filename string, audio io.Reader, language string) (*Reply, error) {
	b, err := tenant.Business(ctx, s.businesses, businessID)
	if err != nil {
		return nil, err
	}

	tr, err := s.speech.Transcribe(ctx, audio, filename, language)
	if err != nil {
		return nil, fmt.Errorf("voice.Process transcribe: %w", err)
	}
	if tr.Text == "" {
		return nil, domain.NewValidationError("audio", "no se detectó voz en el audio")
	}

	if language == "" && (tr.LanguageCode == LangEN || strings.HasPrefix(tr.LanguageCode, "eng")) {
		language = LangEN
	}
	return s.answer(ctx, b, tr.Text, nil, language)
}

func (s *Service) answer(ctx context.Context, b *domain.Business, text string, callID *string, language string) (*Reply, error) {
	intent := DetectIntent(text)
	if language == "" {
		language = intent.Language
	}
	response := fmt.Sprintf(responses[language][intent.Type], b.Name)

	saved, err := s.interactions.Create(ctx, &domain.VoiceInteraction{
		BusinessID:    b.ID,
		CallID:        callID,
		Transcription: text,
		Intent:        intent.Label,
		IntentType:    intent.Type,
		Response:      response,
		Confidence:    intent.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("voice.answer save interaction: %w", err)
	}

	observer.IncVoiceIntent(intent.Label)
	s.log.InfoContext(ctx, "utterance processed",
		slog.String("business_id", b.ID.String()),
		slog.String("intent", intent.Label),
		slog.Float64("confidence", intent.Confidence))

	return &Reply{
		InteractionID: saved.ID,
		Transcription: text,
		Intent:        intent.Label,
		IntentType:    intent.Type,
		Response:      response,
		Confidence:    intent.Confidence,
		Language:      language,
	}, nil
}

// Speak synthesizes text into audio.
func (s *Service) Speak(ctx context.Context, req dto.SpeakRequest) (*speech.Audio, error) {
	audio, err := s.speech.Synthesize(ctx, req.Text, req.VoiceID)
	if err != nil {
		return nil, fmt.Errorf("voice.Speak: %w", err)
	}
	return audio, nil
}

// Status reports provider readiness. Intent detection is always available.
func (s *Service) Status(context.Context) Status {
	enabled := s.speech.Enabled()
	return Status{
		Provider:     "elevenlabs",
		SpeechToText: enabled,
		TextToSpeech: enabled,
		IntentEngine: "keywords",
		Ready:        enabled,
	}
}
