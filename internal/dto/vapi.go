package dto

import (
	"fmt"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

// Webhook message types accepted from the voice platform.
const (
	VapiEventCallStarted  = "call-started"
	VapiEventCallEnded    = "call-ended"
	VapiEventTranscript   = "transcript"
	VapiEventFunctionCall = "function-call"
)

// VapiEvent is the envelope the voice platform posts to its server URL.
type VapiEvent struct {
	Message *VapiMessage `json:"message" validate:"required"`
}

type VapiMessage struct {
	Type           string            `json:"type" validate:"required,oneof=call-started call-ended transcript function-call"`
	Call           *VapiCall         `json:"call"`
	Role           string            `json:"role,omitempty"`
	Transcript     string            `json:"transcript,omitempty" validate:"required_if=Type transcript"`
	TranscriptType string            `json:"transcriptType,omitempty"`
	EndedReason    string            `json:"endedReason,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	FunctionCall   *VapiFunctionCall `json:"functionCall,omitempty" validate:"required_if=Type function-call"`
}

type VapiCall struct {
	ID       string        `json:"id"`
	Customer *VapiCustomer `json:"customer,omitempty"`
}

type VapiCustomer struct {
	Number string `json:"number"`
	Name   string `json:"name,omitempty"`
}

type VapiFunctionCall struct {
	Name       string         `json:"name" validate:"required"`
	Parameters map[string]any `json:"parameters"`
}

// CallID returns the call id or "" when the event carries none.
func (m *VapiMessage) CallID() string {
	if m == nil || m.Call == nil {
		return ""
	}
	return m.Call.ID
}

// CallerNumber returns the caller's number or "".
func (m *VapiMessage) CallerNumber() string {
	if m == nil || m.Call == nil || m.Call.Customer == nil {
		return ""
	}
	return m.Call.Customer.Number
}

// StringParam returns a string function-call parameter or "".
func (f *VapiFunctionCall) StringParam(name string) string {
	if f == nil {
		return ""
	}
	if s, ok := f.Parameters[name].(string); ok {
		return s
	}
	return ""
}

// IntParam returns a numeric function-call parameter or def.
func (f *VapiFunctionCall) IntParam(name string, def int) int {
	if f == nil {
		return def
	}
	switch v := f.Parameters[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Functions the assistant may call during a conversation.
const (
	FunctionBookAppointment   = "book_appointment"
	FunctionCheckAvailability = "check_availability"
)

// BookingParams are the arguments of a book_appointment call.
type BookingParams struct {
	Name            string  `json:"name" validate:"required,max=120"`
	Phone           string  `json:"phone" validate:"required,phone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Service         string  `json:"service" validate:"required,max=120"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string  `json:"time" validate:"required,hhmm"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
}

// BookingParams extracts booking arguments. The caller's number fills in a
// missing phone.
func (f *VapiFunctionCall) BookingParams(callerNumber string) BookingParams {
	p := BookingParams{
		Name:            f.StringParam("name"),
		Phone:           f.StringParam("phone"),
		Service:         f.StringParam("service"),
		Date:            f.StringParam("date"),
		Time:            f.StringParam("time"),
		DurationMinutes: f.IntParam("duration_minutes", 0),
	}
	if p.Phone == "" {
		p.Phone = callerNumber
	}
	if v := f.StringParam("email"); v != "" {
		p.Email = &v
	}
	if v := f.StringParam("notes"); v != "" {
		p.Notes = &v
	}
	return p
}

func (p BookingParams) NormalizedPhone() string { return validate.NormalizePhone(p.Phone) }

// Duration returns the requested duration or the default.
func (p BookingParams) Duration() int {
	if p.DurationMinutes == 0 {
		return DefaultDurationMinutes
	}
	return p.DurationMinutes
}

// StartsAt interprets date and time as wall clock time in loc.
func (p BookingParams) StartsAt(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", p.Date+" "+p.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse booking start: %w", err)
	}
	return t, nil
}

// AvailabilityParams extracts the day of a check_availability call.
func (f *VapiFunctionCall) AvailabilityParams() AvailabilityQuery {
	return AvailabilityQuery{Date: f.StringParam("date")}
}

// Day returns the queried calendar day.
func (q AvailabilityQuery) Day() time.Time {
	t, _ := time.Parse("2006-01-02", q.Date)
	return t
}
