package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// AssistantConfigRequest is the body of PUT /assistant-configs. Nil fields are
// left unchanged. A non-nil prompt marks that prompt as custom; the matching
// Reset flag reverts it to the generated text.
type AssistantConfigRequest struct {
	BusinessID         string          `json:"business_id" validate:"required,uuid"`
	AssistantName      *string         `json:"assistant_name" validate:"omitempty,min=1,max=80"`
	VoiceProvider      *string         `json:"voice_provider" validate:"omitempty,oneof=11labs azure playht"`
	VoiceID            *string         `json:"voice_id" validate:"omitempty,max=100"`
	ModelProvider      *string         `json:"model_provider" validate:"omitempty,oneof=openai anthropic google"`
	Model              *string         `json:"model" validate:"omitempty,max=100"`
	FirstMessage       *string         `json:"first_message" validate:"omitempty,max=500"`
	VoicePrompt        *string         `json:"voice_prompt" validate:"omitempty,min=1,max=20000"`
	ChatbotPrompt      *string         `json:"chatbot_prompt" validate:"omitempty,min=1,max=20000"`
	ResetVoicePrompt   bool            `json:"reset_voice_prompt"`
	ResetChatbotPrompt bool            `json:"reset_chatbot_prompt"`
	BehaviorConfig     *BehaviorConfig `json:"behavior_config" validate:"omitempty"`
}

func (r AssistantConfigRequest) BusinessUUID() uuid.UUID { return parseID(r.BusinessID) }

// Check reports rules spanning several fields.
func (r AssistantConfigRequest) Check() []domain.FieldError {
	var errs []domain.FieldError
	if r.ResetVoicePrompt && r.VoicePrompt != nil {
		errs = append(errs, domain.FieldError{Field: "reset_voice_prompt", Message: "no puede combinarse con voice_prompt"})
	}
	if r.ResetChatbotPrompt && r.ChatbotPrompt != nil {
		errs = append(errs, domain.FieldError{Field: "reset_chatbot_prompt", Message: "no puede combinarse con chatbot_prompt"})
	}
	if r.BehaviorConfig != nil {
		errs = append(errs, r.BehaviorConfig.check("behavior_config")...)
	}
	return errs
}

// BehaviorConfig is the payload form of domain.BehaviorConfig.
type BehaviorConfig struct {
	Timezone            string               `json:"timezone" validate:"required,timezone"`
	Greeting            string               `json:"greeting" validate:"max=500"`
	Services            []string             `json:"services" validate:"omitempty,max=50,dive,min=1,max=80"`
	OperatingHours      []OperatingHours     `json:"operating_hours" validate:"required,min=1,max=14,dive"`
	ReactivationWindows []ReactivationWindow `json:"reactivation_windows" validate:"omitempty,max=10,dive"`
	FollowUpSchedule    []FollowUpStep       `json:"follow_up_schedule" validate:"omitempty,max=10,dive"`
}

type OperatingHours struct {
	Day   string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Open  string `json:"open" validate:"required,hhmm"`
	Close string `json:"close" validate:"required,hhmm"`
}

type ReactivationWindow struct {
	Name      string `json:"name" validate:"required,max=80"`
	AfterDays int    `json:"after_days" validate:"required,min=1,max=365"`
	Message   string `json:"message" validate:"required,max=500"`
}

type FollowUpStep struct {
	OffsetHours int    `json:"offset_hours" validate:"required,min=1,max=720"`
	Channel     string `json:"channel" validate:"required,oneof=sms whatsapp email call"`
	Message     string `json:"message" validate:"required,max=500"`
}

func (b BehaviorConfig) check(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	for i, h := range b.OperatingHours {
		// HH:MM compares correctly as a string once the format rule passed.
		if len(h.Open) == 5 && len(h.Close) == 5 && h.Close <= h.Open {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("%s.operating_hours[%d].close", prefix, i),
				Message: "debe ser posterior a open",
			})
		}
	}
	return errs
}

// Domain converts the payload, replacing nil slices with empty ones.
func (b BehaviorConfig) Domain() domain.BehaviorConfig {
	out := domain.BehaviorConfig{
		Timezone:            b.Timezone,
		Greeting:            b.Greeting,
		Services:            append([]string{}, b.Services...),
		OperatingHours:      make([]domain.OperatingHours, 0, len(b.OperatingHours)),
		ReactivationWindows: make([]domain.ReactivationWindow, 0, len(b.ReactivationWindows)),
		FollowUpSchedule:    make([]domain.FollowUpStep, 0, len(b.FollowUpSchedule)),
	}
	for _, h := range b.OperatingHours {
		out.OperatingHours = append(out.OperatingHours, domain.OperatingHours(h))
	}
	for _, w := range b.ReactivationWindows {
		out.ReactivationWindows = append(out.ReactivationWindows, domain.ReactivationWindow(w))
	}
	for _, s := range b.FollowUpSchedule {
		out.FollowUpSchedule = append(out.FollowUpSchedule, domain.FollowUpStep(s))
	}
	return out
}

// BusinessRequest is the body of POST /assistant-configs/generate and /sync.
type BusinessRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
}

func (r BusinessRequest) BusinessUUID() uuid.UUID { return parseID(r.BusinessID) }
