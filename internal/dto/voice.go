package dto

import "github.com/google/uuid"

// ProcessTextRequest is the body of POST /voice/process-text.
type ProcessTextRequest struct {
	BusinessID string  `json:"business_id" validate:"required,uuid"`
	Text       string  `json:"text" validate:"required,max=2000"`
	CallID     *string `json:"call_id" validate:"omitempty,max=120"`
	Language   string  `json:"language" validate:"omitempty,oneof=es en"`
}

func (r ProcessTextRequest) BusinessUUID() uuid.UUID { return parseID(r.BusinessID) }

// SpeakRequest is the body of POST /voice/speak.
type SpeakRequest struct {
	Text    string `json:"text" validate:"required,max=2500"`
	VoiceID string `json:"voice_id" validate:"omitempty,max=100"`
}
