// Package rest serves the backend HTTP API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/adapter/speech"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// retryAfterSeconds is sent with 503 answers for transient overload.
const retryAfterSeconds = "5"

// errorBody is the JSON shape of every error response. Fields is set only
// for validation failures.
type errorBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// handleError maps a service error onto a status code. Anything unmapped
// is logged and answered with a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		fields := domain.Fields(err)
		writeJSON(w, http.StatusBadRequest, errorBody{Error: summarize(fields, err), Fields: fields})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "no autorizado")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "permiso denegado")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "no encontrado")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ya existe")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflicto con el estado actual")
	case errors.Is(err, domain.ErrUnavailable):
		w.Header().Set("Retry-After", retryAfterSeconds)
		writeError(w, http.StatusServiceUnavailable, "servicio ocupado, intente más tarde")
	case errors.Is(err, speech.ErrDisabled):
		writeError(w, http.StatusServiceUnavailable, "servicio de voz no configurado")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

// GuardError renders a failure of the route guard.
func GuardError(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		handleError(log, w, r, err)
	}
}

// summarize joins the field errors into one line, e.g.
// "business_id es requerido".
func summarize(fields []domain.FieldError, err error) string {
	if len(fields) == 0 {
		return err.Error()
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + " " + f.Message
	}
	return strings.Join(parts, "; ")
}

// pathID reads a UUID path value.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "debe ser un UUID")
	}
	return id, nil
}

// page is the envelope of paginated listings.
type page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newPage[T any](items []T, total int) page[T] {
	if items == nil {
		items = []T{}
	}
	return page[T]{Items: items, Total: total}
}

func mapSlice[S, T any](in []S, f func(*S) T) []T {
	out := make([]T, len(in))
	for i := range in {
		out[i] = f(&in[i])
	}
	return out
}
