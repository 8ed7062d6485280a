package dto

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ContactListQuery is the query of GET /contacts.
type ContactListQuery struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	Search     string `json:"search" validate:"max=100"`
	TagID      string `json:"tag_id" validate:"omitempty,uuid"`
	Limit      int    `json:"limit" validate:"min=0,max=200"`
	Offset     int    `json:"offset" validate:"min=0"`
}

// ParseContactListQuery reads and validates the listing query.
func ParseContactListQuery(q url.Values) (ContactListQuery, error) {
	var fields []domain.FieldError
	out := ContactListQuery{
		BusinessID: q.Get("business_id"),
		Search:     q.Get("search"),
		TagID:      q.Get("tag_id"),
		Limit:      intParam(q, "limit", &fields),
		Offset:     intParam(q, "offset", &fields),
	}
	return out, finish(&out, fields)
}

// Filter converts the query, applying the default page size.
func (q ContactListQuery) Filter() domain.ContactFilter {
	return domain.ContactFilter{
		BusinessID: parseID(q.BusinessID),
		Search:     q.Search,
		TagID:      parseOptionalID(&q.TagID),
		Limit:      pageSize(q.Limit),
		Offset:     q.Offset,
	}
}

// AppointmentListQuery is the query of GET /appointments.
type AppointmentListQuery struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	ContactID  string `json:"contact_id" validate:"omitempty,uuid"`
	Status     string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed no_show"`
	From       string `json:"from" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To         string `json:"to" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Limit      int    `json:"limit" validate:"min=0,max=200"`
	Offset     int    `json:"offset" validate:"min=0"`
}

// ParseAppointmentListQuery reads and validates the listing query.
func ParseAppointmentListQuery(q url.Values) (AppointmentListQuery, error) {
	var fields []domain.FieldError
	out := AppointmentListQuery{
		BusinessID: q.Get("business_id"),
		ContactID:  q.Get("contact_id"),
		Status:     q.Get("status"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Limit:      intParam(q, "limit", &fields),
		Offset:     intParam(q, "offset", &fields),
	}
	return out, finish(&out, fields)
}

// Check rejects an inverted date range.
func (q AppointmentListQuery) Check() []domain.FieldError {
	from, to := parseTime(q.From), parseTime(q.To)
	if from != nil && to != nil && !to.After(*from) {
		return []domain.FieldError{{Field: "to", Message: "debe ser posterior a from"}}
	}
	return nil
}

func (q AppointmentListQuery) Filter() domain.AppointmentFilter {
	f := domain.AppointmentFilter{
		BusinessID: parseID(q.BusinessID),
		ContactID:  parseOptionalID(&q.ContactID),
		From:       parseTime(q.From),
		To:         parseTime(q.To),
		Limit:      pageSize(q.Limit),
		Offset:     q.Offset,
	}
	if q.Status != "" {
		s := domain.AppointmentStatus(q.Status)
		f.Status = &s
	}
	return f
}

// BusinessQuery is a query carrying only business_id.
type BusinessQuery struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
}

func ParseBusinessQuery(q url.Values) (BusinessQuery, error) {
	out := BusinessQuery{BusinessID: q.Get("business_id")}
	return out, finish(&out, nil)
}

func (q BusinessQuery) BusinessUUID() uuid.UUID { return parseID(q.BusinessID) }

// AvailabilityQuery is the day asked about in a check_availability call.
type AvailabilityQuery struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func intParam(q url.Values, name string, fields *[]domain.FieldError) int {
	raw := q.Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*fields = append(*fields, domain.FieldError{Field: name, Message: "debe ser un número entero"})
		return 0
	}
	return n
}

func finish(v any, parseErrs []domain.FieldError) error {
	err := Validate(v)
	if len(parseErrs) == 0 {
		return err
	}
	return domain.NewValidationErrors(append(parseErrs, domain.Fields(err)...))
}

func pageSize(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// PageQuery is a bare limit/offset query.
type PageQuery struct {
	Limit  int `json:"limit" validate:"min=0,max=200"`
	Offset int `json:"offset" validate:"min=0"`
}

func ParsePageQuery(q url.Values) (PageQuery, error) {
	var fields []domain.FieldError
	out := PageQuery{
		Limit:  intParam(q, "limit", &fields),
		Offset: intParam(q, "offset", &fields),
	}
	return out, finish(&out, fields)
}

// Size returns the limit with the default page size applied.
func (q PageQuery) Size() int { return pageSize(q.Limit) }
