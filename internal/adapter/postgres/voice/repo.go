// Package voice implements the VoiceInteraction repository using PostgreSQL.
package voice

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const columns = `id, business_id, appointment_id, call_id, transcription, intent,
	intent_type::text AS intent_type, response, confidence, created_at`

// Repo provides voice interaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new voice interaction repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts an interaction.
func (r *Repo) Create(ctx context.Context, v *domain.VoiceInteraction) (*domain.VoiceInteraction, error) {
	var out domain.VoiceInteraction
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`INSERT INTO voice_interactions
			(business_id, appointment_id, call_id, transcription, intent, intent_type, response, confidence)
		 VALUES ($1, $2, $3, $4, $5, $6::intent_type, $7, $8)
		 RETURNING `+columns,
		v.BusinessID, v.AppointmentID, v.CallID, v.Transcription, v.Intent,
		string(v.IntentType), v.Response, v.Confidence)
	if err != nil {
		return nil, postgres.MapError(err, "voice_interaction", v.BusinessID)
	}
	return &out, nil
}

// ListByCall returns the interactions of one call in order.
func (r *Repo) ListByCall(ctx context.Context, businessID uuid.UUID, callID string) ([]domain.VoiceInteraction, error) {
	out := []domain.VoiceInteraction{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`SELECT `+columns+` FROM voice_interactions
		 WHERE business_id = $1 AND call_id = $2
		 ORDER BY created_at, id`,
		businessID, callID)
	if err != nil {
		return nil, postgres.MapError(err, "voice_interaction", callID)
	}
	return out, nil
}

// AttachAppointment links an interaction to the appointment it produced.
func (r *Repo) AttachAppointment(ctx context.Context, id, appointmentID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE voice_interactions SET appointment_id = $2 WHERE id = $1`, id, appointmentID)
	if err != nil {
		return postgres.MapError(err, "voice_interaction", id)
	}
	return postgres.Exactly1(tag, "voice_interaction", id)
}
