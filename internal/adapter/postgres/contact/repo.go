// Package contact implements the Contact repository using PostgreSQL.
package contact

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const columns = `id, business_id, name, phone, email, notes, interactions_count,
	appointments_count, last_interaction_at, created_at, updated_at`

var listColumns = []string{
	"c.id", "c.business_id", "c.name", "c.phone", "c.email", "c.notes",
	"c.interactions_count", "c.appointments_count", "c.last_interaction_at",
	"c.created_at", "c.updated_at",
	"la.id AS last_id", "la.service_type AS last_service_type",
	"la.starts_at AS last_starts_at", "la.status AS last_status",
	"na.id AS next_id", "na.service_type AS next_service_type",
	"na.starts_at AS next_starts_at", "na.status AS next_status",
}

// Most recent past appointment and earliest upcoming open one.
const (
	lastAppointmentJoin = `LATERAL (
		SELECT a.id, a.service_type, a.starts_at, a.status::text AS status
		FROM appointments a
		WHERE a.contact_id = c.id AND a.starts_at <= now()
		ORDER BY a.starts_at DESC LIMIT 1
	) la ON true`
	nextAppointmentJoin = `LATERAL (
		SELECT a.id, a.service_type, a.starts_at, a.status::text AS status
		FROM appointments a
		WHERE a.contact_id = c.id AND a.starts_at > now() AND a.status IN ('pending', 'confirmed')
		ORDER BY a.starts_at ASC LIMIT 1
	) na ON true`
)

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new contact repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a contact with its tags and appointment summaries.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	sql, args, err := postgres.Builder().
		Select(listColumns...).
		From("contacts c").
		LeftJoin(lastAppointmentJoin).
		LeftJoin(nextAppointmentJoin).
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}

	out := []domain.Contact{row.toDomain()}
	if err := r.attachTags(ctx, out); err != nil {
		return nil, err
	}
	return &out[0], nil
}

// GetByPhone returns the contact of a business with the given phone.
func (r *Repo) GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Contact, error) {
	var c domain.Contact
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c,
		`SELECT `+columns+` FROM contacts WHERE business_id = $1 AND phone = $2`, businessID, phone)
	if err != nil {
		return nil, postgres.MapError(err, "contact", phone)
	}
	return &c, nil
}

// List returns one page of contacts plus the total matching count.
func (r *Repo) List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error) {
	where := squirrel.And{squirrel.Eq{"c.business_id": f.BusinessID}}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.Like{"c.phone": pattern},
			squirrel.ILike{"c.email": pattern},
		})
	}
	if f.TagID != nil {
		where = append(where, squirrel.Expr(
			"EXISTS (SELECT 1 FROM contact_tags ct WHERE ct.contact_id = c.id AND ct.tag_id = ?)", *f.TagID))
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("COUNT(*)").From("contacts c").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "contact", f.BusinessID)
	}

	b := postgres.Builder().
		Select(listColumns...).
		From("contacts c").
		LeftJoin(lastAppointmentJoin).
		LeftJoin(nextAppointmentJoin).
		Where(where).
		OrderBy("c.name ASC", "c.id ASC")
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

	var rows []listRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "contact", f.BusinessID)
	}

	out := make([]domain.Contact, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	if err := r.attachTags(ctx, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Create inserts a contact. A duplicate phone in the business is
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	var out domain.Contact
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`INSERT INTO contacts (business_id, name, phone, email, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+columns,
		c.BusinessID, c.Name, c.Phone, c.Email, c.Notes)
	if err != nil {
		return nil, postgres.MapError(err, "contact", c.Phone)
	}
	out.Tags = []domain.Tag{}
	return &out, nil
}

// Update changes the non-nil fields of a contact.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, phone, email, notes *string) error {
	set := map[string]any{}
	if name != nil {
		set["name"] = *name
	}
	if phone != nil {
		set["phone"] = *phone
	}
	if email != nil {
		set["email"] = *email
	}
	if notes != nil {
		set["notes"] = *notes
	}
	set["updated_at"] = squirrel.Expr("now()")

	sql, args, err := postgres.Builder().Update("contacts").SetMap(set).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	return postgres.Exactly1(tag, "contact", id)
}

// Delete removes a contact. Its appointments stay with contact_id cleared.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	return postgres.Exactly1(tag, "contact", id)
}

// Upsert inserts a contact or updates the one with the same phone in the
// business. Email and notes are only overwritten when provided.
// Reports whether a row was inserted.
func (r *Repo) Upsert(ctx context.Context, c *domain.Contact) (bool, error) {
	var inserted bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO contacts (business_id, name, phone, email, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT ON CONSTRAINT uq_contacts_business_phone DO UPDATE SET
			name = EXCLUDED.name,
			email = COALESCE(EXCLUDED.email, contacts.email),
			notes = COALESCE(EXCLUDED.notes, contacts.notes),
			updated_at = now()
		 RETURNING (xmax = 0)`,
		c.BusinessID, c.Name, c.Phone, c.Email, c.Notes,
	).Scan(&inserted)
	if err != nil {
		return false, postgres.MapError(err, "contact", c.Phone)
	}
	return inserted, nil
}

// RecordInteraction bumps the interaction counter and, for bookings, the
// appointment counter.
func (r *Repo) RecordInteraction(ctx context.Context, id uuid.UUID, at time.Time, booked bool) error {
	appointments := 0
	if booked {
		appointments = 1
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE contacts SET
			interactions_count = interactions_count + 1,
			appointments_count = appointments_count + $2,
			last_interaction_at = GREATEST(COALESCE(last_interaction_at, $3), $3),
			updated_at = now()
		 WHERE id = $1`,
		id, appointments, at)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	return postgres.Exactly1(tag, "contact", id)
}

// AddTag links a tag to a contact. Linking twice is not an error.
func (r *Repo) AddTag(ctx context.Context, contactID, tagID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO contact_tags (contact_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		contactID, tagID)
	if err != nil {
		return postgres.MapError(err, "contact_tag", tagID)
	}
	return nil
}

// RemoveTag unlinks a tag. Returns domain.ErrNotFound when it was not linked.
func (r *Repo) RemoveTag(ctx context.Context, contactID, tagID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM contact_tags WHERE contact_id = $1 AND tag_id = $2`, contactID, tagID)
	if err != nil {
		return postgres.MapError(err, "contact_tag", tagID)
	}
	return postgres.Exactly1(tag, "contact_tag", tagID)
}

// attachTags loads the tags of all contacts in one query.
func (r *Repo) attachTags(ctx context.Context, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(contacts))
	index := make(map[uuid.UUID]int, len(contacts))
	for i := range contacts {
		ids[i] = contacts[i].ID
		index[contacts[i].ID] = i
		contacts[i].Tags = []domain.Tag{}
	}

	var rows []tagRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT ct.contact_id, t.id, t.business_id, t.name, t.color, t.created_at
		 FROM contact_tags ct
		 JOIN tags t ON t.id = ct.tag_id
		 WHERE ct.contact_id = ANY($1)
		 ORDER BY t.name`,
		ids)
	if err != nil {
		return postgres.MapError(err, "contact_tag", "list")
	}

	for _, row := range rows {
		i := index[row.ContactID]
		contacts[i].Tags = append(contacts[i].Tags, row.Tag)
	}
	return nil
}

type tagRow struct {
	ContactID uuid.UUID `db:"contact_id"`
	domain.Tag
}

type listRow struct {
	domain.Contact

	LastID          *uuid.UUID `db:"last_id"`
	LastServiceType *string    `db:"last_service_type"`
	LastStartsAt    *time.Time `db:"last_starts_at"`
	LastStatus      *string    `db:"last_status"`
	NextID          *uuid.UUID `db:"next_id"`
	NextServiceType *string    `db:"next_service_type"`
	NextStartsAt    *time.Time `db:"next_starts_at"`
	NextStatus      *string    `db:"next_status"`
}

func (row listRow) toDomain() domain.Contact {
	c := row.Contact
	c.LastAppointment = summary(row.LastID, row.LastServiceType, row.LastStartsAt, row.LastStatus)
	c.NextAppointment = summary(row.NextID, row.NextServiceType, row.NextStartsAt, row.NextStatus)
	return c
}

func summary(id *uuid.UUID, service *string, startsAt *time.Time, status *string) *domain.AppointmentSummary {
	if id == nil || service == nil || startsAt == nil || status == nil {
		return nil
	}
	return &domain.AppointmentSummary{
		ID:          *id,
		ServiceType: *service,
		StartsAt:    *startsAt,
		Status:      domain.AppointmentStatus(*status),
	}
}
