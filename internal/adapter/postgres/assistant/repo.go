// Package assistant implements the Assistant and AssistantConfiguration
// repositories using PostgreSQL.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const assistantColumns = `id, business_id, name, voice_provider::text AS voice_provider, voice_id,
	model_provider::text AS model_provider, model, first_message, external_id, created_at, updated_at`

const configColumns = `id, assistant_id, business_id,
	voice_prompt, voice_prompt_is_custom, voice_prompt_tokens, voice_prompt_source,
	chatbot_prompt, chatbot_prompt_is_custom, chatbot_prompt_tokens, chatbot_prompt_source,
	behavior_config, sync_status, synced_at, sync_error, created_at, updated_at`

// Repo provides assistant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new assistant repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByBusiness returns the assistant of a business.
func (r *Repo) GetByBusiness(ctx context.Context, businessID uuid.UUID) (*domain.Assistant, error) {
	var a domain.Assistant
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a,
		`SELECT `+assistantColumns+` FROM assistants WHERE business_id = $1`, businessID)
	if err != nil {
		return nil, postgres.MapError(err, "assistant", businessID)
	}
	return &a, nil
}

// Create inserts an assistant. A second assistant for the same business is
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Assistant) (*domain.Assistant, error) {
	var out domain.Assistant
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`INSERT INTO assistants (business_id, name, voice_provider, voice_id, model_provider, model, first_message)
		 VALUES ($1, $2, $3::voice_provider, $4, $5::model_provider, $6, $7)
		 RETURNING `+assistantColumns,
		a.BusinessID, a.Name, string(a.VoiceProvider), a.VoiceID, string(a.ModelProvider), a.Model, a.FirstMessage)
	if err != nil {
		return nil, postgres.MapError(err, "assistant", a.BusinessID)
	}
	return &out, nil
}

// Update saves the editable assistant fields.
func (r *Repo) Update(ctx context.Context, a *domain.Assistant) (*domain.Assistant, error) {
	var out domain.Assistant
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`UPDATE assistants SET
			name = $2, voice_provider = $3::voice_provider, voice_id = $4,
			model_provider = $5::model_provider, model = $6, first_message = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING `+assistantColumns,
		a.ID, a.Name, string(a.VoiceProvider), a.VoiceID, string(a.ModelProvider), a.Model, a.FirstMessage)
	if err != nil {
		return nil, postgres.MapError(err, "assistant", a.ID)
	}
	return &out, nil
}

// SetExternalID stores the id the voice platform assigned to the assistant.
func (r *Repo) SetExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE assistants SET external_id = $2, updated_at = now() WHERE id = $1`, id, externalID)
	if err != nil {
		return postgres.MapError(err, "assistant", id)
	}
	return postgres.Exactly1(tag, "assistant", id)
}

// GetConfig returns the configuration of the assistant of a business.
func (r *Repo) GetConfig(ctx context.Context, businessID uuid.UUID) (*domain.AssistantConfiguration, error) {
	var row configRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+configColumns+` FROM assistant_configurations WHERE business_id = $1`, businessID)
	if err != nil {
		return nil, postgres.MapError(err, "assistant_configuration", businessID)
	}
	return row.toDomain()
}

// CreateConfig inserts the configuration of an assistant.
func (r *Repo) CreateConfig(ctx context.Context, c *domain.AssistantConfiguration) (*domain.AssistantConfiguration, error) {
	behavior, err := json.Marshal(c.Behavior)
	if err != nil {
		return nil, fmt.Errorf("marshal behavior config: %w", err)
	}

	var row configRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO assistant_configurations (
			assistant_id, business_id,
			voice_prompt, voice_prompt_is_custom, voice_prompt_tokens, voice_prompt_source,
			chatbot_prompt, chatbot_prompt_is_custom, chatbot_prompt_tokens, chatbot_prompt_source,
			behavior_config)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb)
		 RETURNING `+configColumns,
		c.AssistantID, c.BusinessID,
		c.Voice.Text, c.Voice.IsCustom, c.Voice.Tokens, string(c.Voice.Source),
		c.Chatbot.Text, c.Chatbot.IsCustom, c.Chatbot.Tokens, string(c.Chatbot.Source),
		string(behavior))
	if err != nil {
		return nil, postgres.MapError(err, "assistant_configuration", c.BusinessID)
	}
	return row.toDomain()
}

// SaveConfig stores prompts and behavior. Sync state is left untouched.
func (r *Repo) SaveConfig(ctx context.Context, c *domain.AssistantConfiguration) (*domain.AssistantConfiguration, error) {
	behavior, err := json.Marshal(c.Behavior)
	if err != nil {
		return nil, fmt.Errorf("marshal behavior config: %w", err)
	}

	var row configRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE assistant_configurations SET
			voice_prompt = $2, voice_prompt_is_custom = $3, voice_prompt_tokens = $4, voice_prompt_source = $5,
			chatbot_prompt = $6, chatbot_prompt_is_custom = $7, chatbot_prompt_tokens = $8, chatbot_prompt_source = $9,
			behavior_config = $10::jsonb, updated_at = now()
		 WHERE id = $1
		 RETURNING `+configColumns,
		c.ID,
		c.Voice.Text, c.Voice.IsCustom, c.Voice.Tokens, string(c.Voice.Source),
		c.Chatbot.Text, c.Chatbot.IsCustom, c.Chatbot.Tokens, string(c.Chatbot.Source),
		string(behavior))
	if err != nil {
		return nil, postgres.MapError(err, "assistant_configuration", c.ID)
	}
	return row.toDomain()
}

// SetSyncState records the outcome of a sync attempt.
func (r *Repo) SetSyncState(ctx context.Context, id uuid.UUID, status domain.SyncStatus, syncedAt *time.Time, syncErr *string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE assistant_configurations SET
			sync_status = $2, synced_at = COALESCE($3, synced_at), sync_error = $4, updated_at = now()
		 WHERE id = $1`,
		id, string(status), syncedAt, syncErr)
	if err != nil {
		return postgres.MapError(err, "assistant_configuration", id)
	}
	return postgres.Exactly1(tag, "assistant_configuration", id)
}

type configRow struct {
	ID                    uuid.UUID  `db:"id"`
	AssistantID           uuid.UUID  `db:"assistant_id"`
	BusinessID            uuid.UUID  `db:"business_id"`
	VoicePrompt           string     `db:"voice_prompt"`
	VoicePromptIsCustom   bool       `db:"voice_prompt_is_custom"`
	VoicePromptTokens     int        `db:"voice_prompt_tokens"`
	VoicePromptSource     string     `db:"voice_prompt_source"`
	ChatbotPrompt         string     `db:"chatbot_prompt"`
	ChatbotPromptIsCustom bool       `db:"chatbot_prompt_is_custom"`
	ChatbotPromptTokens   int        `db:"chatbot_prompt_tokens"`
	ChatbotPromptSource   string     `db:"chatbot_prompt_source"`
	BehaviorConfig        []byte     `db:"behavior_config"`
	SyncStatus            string     `db:"sync_status"`
	SyncedAt              *time.Time `db:"synced_at"`
	SyncError             *string    `db:"sync_error"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

func (row configRow) toDomain() (*domain.AssistantConfiguration, error) {
	var behavior domain.BehaviorConfig
	if len(row.BehaviorConfig) > 0 {
		if err := json.Unmarshal(row.BehaviorConfig, &behavior); err != nil {
			return nil, fmt.Errorf("assistant_configuration %s: decode behavior_config: %w", row.ID, err)
		}
	}

	return &domain.AssistantConfiguration{
		ID:          row.ID,
		AssistantID: row.AssistantID,
		BusinessID:  row.BusinessID,
		Voice: domain.PromptInfo{
			Text:     row.VoicePrompt,
			IsCustom: row.VoicePromptIsCustom,
			Tokens:   row.VoicePromptTokens,
			Source:   domain.PromptSource(row.VoicePromptSource),
		},
		Chatbot: domain.PromptInfo{
			Text:     row.ChatbotPrompt,
			IsCustom: row.ChatbotPromptIsCustom,
			Tokens:   row.ChatbotPromptTokens,
			Source:   domain.PromptSource(row.ChatbotPromptSource),
		},
		Behavior:   behavior,
		SyncStatus: domain.SyncStatus(row.SyncStatus),
		SyncedAt:   row.SyncedAt,
		SyncError:  row.SyncError,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}
