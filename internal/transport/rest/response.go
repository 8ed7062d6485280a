package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/service/assistant"
)

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID.String(),
		Email: u.EmailOrEmpty(),
		Name:  u.Name,
		Role:  u.Role.String(),
	}
}

type businessResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

func toBusinessResponse(b *domain.Business) businessResponse {
	return businessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Timezone:  b.Timezone,
		CreatedAt: b.CreatedAt,
	}
}

type tagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func toTagResponse(t *domain.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name, Color: t.Color, CreatedAt: t.CreatedAt}
}

type appointmentSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceType string    `json:"service_type"`
	StartsAt    time.Time `json:"starts_at"`
	Status      string    `json:"status"`
}

func toSummary(s *domain.AppointmentSummary) *appointmentSummaryResponse {
	if s == nil {
		return nil
	}
	return &appointmentSummaryResponse{
		ID:          s.ID,
		ServiceType: s.ServiceType,
		StartsAt:    s.StartsAt,
		Status:      string(s.Status),
	}
}

type contactResponse struct {
	ID                uuid.UUID                   `json:"id"`
	BusinessID        uuid.UUID                   `json:"business_id"`
	Name              string                      `json:"name"`
	Phone             string                      `json:"phone"`
	Email             *string                     `json:"email"`
	Notes             *string                     `json:"notes"`
	InteractionsCount int                         `json:"interactions_count"`
	AppointmentsCount int                         `json:"appointments_count"`
	LastInteractionAt *time.Time                  `json:"last_interaction_at"`
	Tags              []tagResponse               `json:"tags"`
	LastAppointment   *appointmentSummaryResponse `json:"last_appointment"`
	NextAppointment   *appointmentSummaryResponse `json:"next_appointment"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:                c.ID,
		BusinessID:        c.BusinessID,
		Name:              c.Name,
		Phone:             c.Phone,
		Email:             c.Email,
		Notes:             c.Notes,
		InteractionsCount: c.InteractionsCount,
		AppointmentsCount: c.AppointmentsCount,
		LastInteractionAt: c.LastInteractionAt,
		Tags:              mapSlice(c.Tags, toTagResponse),
		LastAppointment:   toSummary(c.LastAppointment),
		NextAppointment:   toSummary(c.NextAppointment),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

type appointmentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	BusinessID         uuid.UUID  `json:"business_id"`
	ContactID          *uuid.UUID `json:"contact_id"`
	VoiceInteractionID *uuid.UUID `json:"voice_interaction_id"`
	ClientName         string     `json:"client_name"`
	ClientPhone        string     `json:"client_phone"`
	ClientEmail        *string    `json:"client_email"`
	ServiceType        string     `json:"service_type"`
	StartsAt           time.Time  `json:"starts_at"`
	EndsAt             time.Time  `json:"ends_at"`
	DurationMinutes    int        `json:"duration_minutes"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:                 a.ID,
		BusinessID:         a.BusinessID,
		ContactID:          a.ContactID,
		VoiceInteractionID: a.VoiceInteractionID,
		ClientName:         a.ClientName,
		ClientPhone:        a.ClientPhone,
		ClientEmail:        a.ClientEmail,
		ServiceType:        a.ServiceType,
		StartsAt:           a.StartsAt,
		EndsAt:             a.EndsAt(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt,
	}
}

type promptResponse struct {
	Text     string `json:"text"`
	IsCustom bool   `json:"is_custom"`
	Tokens   int    `json:"tokens"`
	Source   string `json:"source"`
}

func toPromptResponse(p domain.PromptInfo) promptResponse {
	return promptResponse{Text: p.Text, IsCustom: p.IsCustom, Tokens: p.Tokens, Source: string(p.Source)}
}

type assistantConfigResponse struct {
	AssistantID   uuid.UUID             `json:"assistant_id"`
	BusinessID    uuid.UUID             `json:"business_id"`
	Name          string                `json:"name"`
	VoiceProvider string                `json:"voice_provider"`
	VoiceID       string                `json:"voice_id"`
	ModelProvider string                `json:"model_provider"`
	Model         string                `json:"model"`
	FirstMessage  string                `json:"first_message"`
	ExternalID    *string               `json:"external_id"`
	VoicePrompt   promptResponse        `json:"voice_prompt"`
	ChatbotPrompt promptResponse        `json:"chatbot_prompt"`
	Behavior      domain.BehaviorConfig `json:"behavior_config"`
	SyncStatus    string                `json:"sync_status"`
	SyncedAt      *time.Time            `json:"synced_at"`
	SyncError     *string               `json:"sync_error"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func toAssistantConfigResponse(v *assistant.View) assistantConfigResponse {
	a, c := v.Assistant, v.Config
	return assistantConfigResponse{
		AssistantID:   a.ID,
		BusinessID:    a.BusinessID,
		Name:          a.Name,
		VoiceProvider: string(a.VoiceProvider),
		VoiceID:       a.VoiceID,
		ModelProvider: string(a.ModelProvider),
		Model:         a.Model,
		FirstMessage:  a.FirstMessage,
		ExternalID:    a.ExternalID,
		VoicePrompt:   toPromptResponse(c.Voice),
		ChatbotPrompt: toPromptResponse(c.Chatbot),
		Behavior:      c.Behavior,
		SyncStatus:    string(c.SyncStatus),
		SyncedAt:      c.SyncedAt,
		SyncError:     c.SyncError,
		UpdatedAt:     c.UpdatedAt,
	}
}
