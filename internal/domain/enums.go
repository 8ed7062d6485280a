package domain

// UserRole represents the authorization level of a user.
// The set is extensible: guest was appended after the initial schema.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
	UserRoleGuest UserRole = "guest"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleGuest:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

func (r UserRole) IsGuest() bool { return r == UserRoleGuest }

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

func (s AppointmentStatus) String() string { return string(s) }

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled,
		AppointmentStatusCompleted, AppointmentStatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is allowed.
func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case AppointmentStatusCancelled, AppointmentStatusCompleted, AppointmentStatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo reports whether s may move to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() || s.IsTerminal() || s == next {
		return false
	}
	if s == AppointmentStatusConfirmed && next == AppointmentStatusPending {
		return false
	}
	return true
}

// IntentType classifies what a caller wanted during a voice interaction.
type IntentType string

const (
	IntentTypeSchedule     IntentType = "schedule_appointment"
	IntentTypeCancel       IntentType = "cancel_appointment"
	IntentTypeReschedule   IntentType = "reschedule_appointment"
	IntentTypeBusinessInfo IntentType = "business_info"
	IntentTypeGreeting     IntentType = "greeting"
	IntentTypeOther        IntentType = "other"
)

func (t IntentType) String() string { return string(t) }

func (t IntentType) IsValid() bool {
	switch t {
	case IntentTypeSchedule, IntentTypeCancel, IntentTypeReschedule,
		IntentTypeBusinessInfo, IntentTypeGreeting, IntentTypeOther:
		return true
	}
	return false
}

// VoiceProvider is the speech synthesis vendor configured for an assistant.
type VoiceProvider string

const (
	VoiceProviderElevenLabs VoiceProvider = "11labs"
	VoiceProviderAzure      VoiceProvider = "azure"
	VoiceProviderPlayHT     VoiceProvider = "playht"
)

func (p VoiceProvider) IsValid() bool {
	switch p {
	case VoiceProviderElevenLabs, VoiceProviderAzure, VoiceProviderPlayHT:
		return true
	}
	return false
}

// ModelProvider is the language model vendor configured for an assistant.
type ModelProvider string

const (
	ModelProviderOpenAI    ModelProvider = "openai"
	ModelProviderAnthropic ModelProvider = "anthropic"
	ModelProviderGoogle    ModelProvider = "google"
)

func (p ModelProvider) IsValid() bool {
	switch p {
	case ModelProviderOpenAI, ModelProviderAnthropic, ModelProviderGoogle:
		return true
	}
	return false
}

// SyncStatus tracks the state of the third-party assistant sync.
type SyncStatus string

const (
	SyncStatusNever   SyncStatus = "never"
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

// PromptSource records where a prompt's text came from.
type PromptSource string

const (
	PromptSourceGenerated PromptSource = "generated"
	PromptSourceCustom    PromptSource = "custom"
)
