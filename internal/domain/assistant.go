package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assistant is the voice agent of a business (at most one per business).
type Assistant struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	Name          string
	VoiceProvider VoiceProvider
	VoiceID       string
	ModelProvider ModelProvider
	Model         string
	FirstMessage  string
	ExternalID    *string // assistant id on the voice platform, set after the first sync
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PromptInfo is one prompt variant plus its provenance.
type PromptInfo struct {
	Text     string
	IsCustom bool
	Tokens   int
	Source   PromptSource
}

// AssistantConfiguration holds the prompts and behavior rules of an assistant.
type AssistantConfiguration struct {
	ID          uuid.UUID
	AssistantID uuid.UUID
	BusinessID  uuid.UUID
	Voice       PromptInfo
	Chatbot     PromptInfo
	Behavior    BehaviorConfig
	SyncStatus  SyncStatus
	SyncedAt    *time.Time
	SyncError   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BehaviorConfig is the structured rule set prompts are generated from.
// It is stored as a JSON document.
type BehaviorConfig struct {
	Timezone            string               `json:"timezone"`
	Greeting            string               `json:"greeting,omitempty"`
	Services            []string             `json:"services,omitempty"`
	OperatingHours      []OperatingHours     `json:"operating_hours"`
	ReactivationWindows []ReactivationWindow `json:"reactivation_windows"`
	FollowUpSchedule    []FollowUpStep       `json:"follow_up_schedule"`
}

// OperatingHours is the open interval of one weekday, in HH:MM local time.
type OperatingHours struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ReactivationWindow targets contacts idle for at least AfterDays.
type ReactivationWindow struct {
	Name      string `json:"name"`
	AfterDays int    `json:"after_days"`
	Message   string `json:"message"`
}

// FollowUpStep is a message sent OffsetHours after an appointment.
type FollowUpStep struct {
	OffsetHours int    `json:"offset_hours"`
	Channel     string `json:"channel"`
	Message     string `json:"message"`
}

// DefaultBehaviorConfig returns the configuration a new assistant starts with.
func DefaultBehaviorConfig(timezone string) BehaviorConfig {
	if timezone == "" {
		timezone = "UTC"
	}
	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	hours := make([]OperatingHours, 0, len(weekdays))
	for _, d := range weekdays {
		hours = append(hours, OperatingHours{Day: d, Open: "09:00", Close: "18:00"})
	}
	return BehaviorConfig{
		Timezone:            timezone,
		OperatingHours:      hours,
		ReactivationWindows: []ReactivationWindow{},
		FollowUpSchedule:    []FollowUpStep{},
	}
}
