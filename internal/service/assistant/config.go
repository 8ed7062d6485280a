package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

// UpdateConfig applies assistant settings, behavior rules and prompt
// overrides. A given prompt becomes custom; a reset flag reverts it to the
// generated text. Generated prompts follow behavior changes, custom ones
// are kept as written.
func (s *Service) UpdateConfig(ctx context.Context, req dto.AssistantConfigRequest) (*View, error) {
	if errs := req.Check(); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	b, err := tenant.Business(ctx, s.businesses, req.BusinessUUID())
	if err != nil {
		return nil, err
	}
	v, err := s.ensure(ctx, b)
	if err != nil {
		return nil, err
	}

	a := *v.Assistant
	assistantChanged := applyAssistant(&a, req)

	cfg := *v.Config
	if req.BehaviorConfig != nil {
		cfg.Behavior = req.BehaviorConfig.Domain()
	}

	switch {
	case req.VoicePrompt != nil:
		cfg.Voice = custom(*req.VoicePrompt)
	case req.ResetVoicePrompt || !cfg.Voice.IsCustom:
		cfg.Voice = generated(VoicePrompt(b, &a, cfg.Behavior))
	}
	switch {
	case req.ChatbotPrompt != nil:
		cfg.Chatbot = custom(*req.ChatbotPrompt)
	case req.ResetChatbotPrompt || !cfg.Chatbot.IsCustom:
		cfg.Chatbot = generated(ChatbotPrompt(b, &a, cfg.Behavior))
	}

	out := &View{}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		out.Assistant = v.Assistant
		if assistantChanged {
			updated, err := s.assistants.Update(ctx, &a)
			if err != nil {
				return fmt.Errorf("update assistant: %w", err)
			}
			out.Assistant = updated
		}

		saved, err := s.assistants.SaveConfig(ctx, &cfg)
		if err != nil {
			return fmt.Errorf("save configuration: %w", err)
		}
		out.Config = saved
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assistant.UpdateConfig: %w", err)
	}

	s.log.InfoContext(ctx, "assistant configuration updated",
		slog.String("business_id", b.ID.String()),
		slog.Bool("voice_custom", out.Config.Voice.IsCustom),
		slog.Bool("chatbot_custom", out.Config.Chatbot.IsCustom))
	return out, nil
}

func applyAssistant(a *domain.Assistant, req dto.AssistantConfigRequest) bool {
	changed := false
	set := func(dst *string, v *string) {
		if v != nil && *v != *dst {
			*dst = *v
			changed = true
		}
	}
	set(&a.Name, req.AssistantName)
	set(&a.VoiceID, req.VoiceID)
	set(&a.Model, req.Model)
	set(&a.FirstMessage, req.FirstMessage)

	if req.VoiceProvider != nil && domain.VoiceProvider(*req.VoiceProvider) != a.VoiceProvider {
		a.VoiceProvider = domain.VoiceProvider(*req.VoiceProvider)
		changed = true
	}
	if req.ModelProvider != nil && domain.ModelProvider(*req.ModelProvider) != a.ModelProvider {
		a.ModelProvider = domain.ModelProvider(*req.ModelProvider)
		changed = true
	}
	return changed
}

// Generate rebuilds the generated prompts from the current behavior rules.
// Custom prompts are left untouched.
func (s *Service) Generate(ctx context.Context, req dto.BusinessRequest) (*View, error) {
	b, err := tenant.Business(ctx, s.businesses, req.BusinessUUID())
	if err != nil {
		return nil, err
	}
	v, err := s.ensure(ctx, b)
	if err != nil {
		return nil, err
	}

	cfg := *v.Config
	if !cfg.Voice.IsCustom {
		cfg.Voice = generated(VoicePrompt(b, v.Assistant, cfg.Behavior))
	}
	if !cfg.Chatbot.IsCustom {
		cfg.Chatbot = generated(ChatbotPrompt(b, v.Assistant, cfg.Behavior))
	}

	saved, err := s.assistants.SaveConfig(ctx, &cfg)
	if err != nil {
		return nil, fmt.Errorf("assistant.Generate: %w", err)
	}
	return &View{Assistant: v.Assistant, Config: saved}, nil
}

// Sync marks the configuration as pending and queues a push to the voice
// platform. The outcome is stored on the configuration by the worker.
func (s *Service) Sync(ctx context.Context, req dto.BusinessRequest) (*View, error) {
	b, err := tenant.Business(ctx, s.businesses, req.BusinessUUID())
	if err != nil {
		return nil, err
	}
	v, err := s.ensure(ctx, b)
	if err != nil {
		return nil, err
	}

	if err := s.assistants.SetSyncState(ctx, v.Config.ID, domain.SyncStatusPending, nil, nil); err != nil {
		return nil, fmt.Errorf("assistant.Sync mark pending: %w", err)
	}

	if err := s.queue.Submit(ctx, b.ID); err != nil {
		msg := "no se pudo encolar la sincronización"
		if stateErr := s.assistants.SetSyncState(ctx, v.Config.ID, domain.SyncStatusFailed, nil, &msg); stateErr != nil {
			s.log.ErrorContext(ctx, "record sync failure", slog.String("error", stateErr.Error()))
		}
		return nil, fmt.Errorf("assistant.Sync submit: %w", err)
	}

	cfg := *v.Config
	cfg.SyncStatus = domain.SyncStatusPending
	cfg.SyncError = nil
	return &View{Assistant: v.Assistant, Config: &cfg}, nil
}
