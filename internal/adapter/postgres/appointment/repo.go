// Package appointment implements the Appointment repository using PostgreSQL.
package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

var columns = []string{
	"id", "business_id", "contact_id", "voice_interaction_id", "client_name",
	"client_phone", "client_email", "service_type", "starts_at", "duration_minutes",
	"status::text AS status", "notes", "created_at", "updated_at",
}

// Repo provides appointment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new appointment repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns an appointment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	sql, args, err := postgres.Builder().Select(columns...).From("appointments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	var a domain.Appointment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a, sql, args...); err != nil {
		return nil, postgres.MapError(err, "appointment", id)
	}
	return &a, nil
}

// Create inserts an appointment.
func (r *Repo) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	status := a.Status
	if status == "" {
		status = domain.AppointmentStatusPending
	}

	sql, args, err := postgres.Builder().
		Insert("appointments").
		Columns("business_id", "contact_id", "voice_interaction_id", "client_name", "client_phone",
			"client_email", "service_type", "starts_at", "duration_minutes", "status", "notes").
		Values(a.BusinessID, a.ContactID, a.VoiceInteractionID, a.ClientName, a.ClientPhone,
			a.ClientEmail, a.ServiceType, a.StartsAt, a.DurationMinutes,
			squirrel.Expr("?::appointment_status", string(status)), a.Notes).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out domain.Appointment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "appointment", a.ClientPhone)
	}
	return &out, nil
}

// List returns one page of appointments ordered by start plus the total count.
func (r *Repo) List(ctx context.Context, f domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	where := squirrel.And{squirrel.Eq{"business_id": f.BusinessID}}
	if f.ContactID != nil {
		where = append(where, squirrel.Eq{"contact_id": *f.ContactID})
	}
	if f.Status != nil {
		where = append(where, squirrel.Expr("status = ?::appointment_status", string(*f.Status)))
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"starts_at": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.Lt{"starts_at": *f.To})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("COUNT(*)").From("appointments").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "appointment", f.BusinessID)
	}

	b := postgres.Builder().Select(columns...).From("appointments").Where(where).OrderBy("starts_at ASC", "id ASC")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, 0, err
	}

	out := []domain.Appointment{}
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "appointment", f.BusinessID)
	}
	return out, total, nil
}

// ListBooked returns the appointments of a business that still hold their
// slot (pending or confirmed) and start in [from, to).
func (r *Repo) ListBooked(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Appointment, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where("status IN ('pending', 'confirmed')").
		Where(squirrel.GtOrEq{"starts_at": from}).
		Where(squirrel.Lt{"starts_at": to}).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	out := []domain.Appointment{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "appointment", businessID)
	}
	return out, nil
}

// LockSchedule locks the business row until the surrounding transaction
// ends. Bookings take it before checking for overlaps, which serializes them
// per business. It must run inside RunInTx.
func (r *Repo) LockSchedule(ctx context.Context, businessID uuid.UUID) error {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT id FROM businesses WHERE id = $1 FOR NO KEY UPDATE`, businessID).
		Scan(&id)
	if err != nil {
		return postgres.MapError(err, "business", businessID)
	}
	return nil
}

// UpdateStatus sets the status only when the row still has expected, so two
// concurrent transitions cannot both win. A lost race is domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next domain.AppointmentStatus) (*domain.Appointment, error) {
	var out domain.Appointment
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`UPDATE appointments SET status = $3::appointment_status, updated_at = now()
		 WHERE id = $1 AND status = $2::appointment_status
		 RETURNING `+joinColumns(),
		id, string(expected), string(next))
	if pgxscan.NotFound(err) {
		return nil, fmt.Errorf("appointment %s is no longer %s: %w", id, expected, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "appointment", id)
	}
	return &out, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
