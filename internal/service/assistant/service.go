// Package assistant manages the voice assistant of a business: its
// configuration, the prompts generated from it, and the platform sync.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

type assistantRepo interface {
	GetByBusiness(ctx context.Context, businessID uuid.UUID) (*domain.Assistant, error)
	Create(ctx context.Context, a *domain.Assistant) (*domain.Assistant, error)
	Update(ctx context.Context, a *domain.Assistant) (*domain.Assistant, error)
	GetConfig(ctx context.Context, businessID uuid.UUID) (*domain.AssistantConfiguration, error)
	CreateConfig(ctx context.Context, c *domain.AssistantConfiguration) (*domain.AssistantConfiguration, error)
	SaveConfig(ctx context.Context, c *domain.AssistantConfiguration) (*domain.AssistantConfiguration, error)
	SetSyncState(ctx context.Context, id uuid.UUID, status domain.SyncStatus, syncedAt *time.Time, syncErr *string) error
}

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type syncQueue interface {
	Submit(ctx context.Context, businessID uuid.UUID) error
}

// Defaults are the values a new assistant starts with.
type Defaults struct {
	VoiceProvider domain.VoiceProvider
	VoiceID       string
	ModelProvider domain.ModelProvider
	Model         string
}

// DefaultDefaults returns the stock assistant settings.
func DefaultDefaults(voiceID string) Defaults {
	return Defaults{
		VoiceProvider: domain.VoiceProviderElevenLabs,
		VoiceID:       voiceID,
		ModelProvider: domain.ModelProviderOpenAI,
		Model:         "gpt-4o-mini",
	}
}

// View is an assistant together with its configuration.
type View struct {
	Assistant *domain.Assistant
	Config    *domain.AssistantConfiguration
}

// Service implements assistant configuration use cases.
type Service struct {
	log        *slog.Logger
	assistants assistantRepo
	businesses businessRepo
	tx         txManager
	queue      syncQueue
	defaults   Defaults
}

// NewService creates a new assistant service.
func NewService(
	logger *slog.Logger,
	assistants assistantRepo,
	businesses businessRepo,
	tx txManager,
	queue syncQueue,
	defaults Defaults,
) *Service {
	return &Service{
		log:        logger.With("service", "assistant"),
		assistants: assistants,
		businesses: businesses,
		tx:         tx,
		queue:      queue,
		defaults:   defaults,
	}
}

// GetConfig returns the assistant of a business, creating it with default
// settings and generated prompts on first access.
func (s *Service) GetConfig(ctx context.Context, businessID uuid.UUID) (*View, error) {
	b, err := tenant.Business(ctx, s.businesses, businessID)
	if err != nil {
		return nil, err
	}
	return s.ensure(ctx, b)
}

func (s *Service) load(ctx context.Context, businessID uuid.UUID) (*View, error) {
	a, err := s.assistants.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.assistants.GetConfig(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &View{Assistant: a, Config: cfg}, nil
}

func (s *Service) ensure(ctx context.Context, b *domain.Business) (*View, error) {
	v, err := s.load(ctx, b.ID)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("assistant.load: %w", err)
	}

	v = &View{}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.assistants.GetByBusiness(ctx, b.ID)
		if errors.Is(err, domain.ErrNotFound) {
			a, err = s.assistants.Create(ctx, s.defaultAssistant(b))
		}
		if err != nil {
			return fmt.Errorf("assistant: %w", err)
		}
		v.Assistant = a

		behavior := domain.DefaultBehaviorConfig(b.Timezone)
		v.Config, err = s.assistants.CreateConfig(ctx, &domain.AssistantConfiguration{
			AssistantID: a.ID,
			BusinessID:  b.ID,
			Voice:       generated(VoicePrompt(b, a, behavior)),
			Chatbot:     generated(ChatbotPrompt(b, a, behavior)),
			Behavior:    behavior,
			SyncStatus:  domain.SyncStatusNever,
		})
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// A concurrent request created it first.
		return s.load(ctx, b.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("assistant.ensure: %w", err)
	}

	s.log.InfoContext(ctx, "assistant created", slog.String("business_id", b.ID.String()))
	return v, nil
}

func (s *Service) defaultAssistant(b *domain.Business) *domain.Assistant {
	return &domain.Assistant{
		BusinessID:    b.ID,
		Name:          "Recepcionista",
		VoiceProvider: s.defaults.VoiceProvider,
		VoiceID:       s.defaults.VoiceID,
		ModelProvider: s.defaults.ModelProvider,
		Model:         s.defaults.Model,
		FirstMessage:  fmt.Sprintf("Hola, gracias por llamar a %s. ¿En qué puedo ayudarte?", b.Name),
	}
}
