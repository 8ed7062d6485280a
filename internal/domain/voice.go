package domain

import (
	"time"

	"github.com/google/uuid"
)

// VoiceInteraction records one processed utterance and what was answered.
type VoiceInteraction struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	AppointmentID *uuid.UUID
	CallID        *string
	Transcription string
	Intent        string
	IntentType    IntentType
	Response      string
	Confidence    float64
	CreatedAt     time.Time
}
