// Package dto holds the request payloads accepted by the backend and the
// strict decoder that turns a request body into a validated payload.
package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

// MaxBodyBytes bounds JSON request bodies.
const MaxBodyBytes = 1 << 20

// checker is implemented by payloads with rules that struct tags cannot express.
type checker interface {
	Check() []domain.FieldError
}

// normalizer is implemented by payloads that clean their fields (trimming,
// case folding) before the tag rules see them.
type normalizer interface {
	Normalize()
}

// Decode strictly decodes a JSON body into T and validates it. Unknown
// fields, malformed JSON and type mismatches are reported as validation
// errors so callers map them to 400 the same way as rule violations.
func Decode[T any](r io.Reader) (T, error) {
	var v T

	dec := json.NewDecoder(io.LimitReader(r, MaxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		return v, decodeError(err)
	}
	if dec.More() {
		return v, domain.NewValidationError("body", "debe contener un único objeto JSON")
	}

	if err := Validate(&v); err != nil {
		return v, err
	}
	return v, nil
}

// DecodeLenient is Decode without the unknown-field rule, for payloads
// owned by third parties that add fields over time.
func DecodeLenient[T any](r io.Reader) (T, error) {
	var v T

	if err := json.NewDecoder(io.LimitReader(r, MaxBodyBytes)).Decode(&v); err != nil {
		return v, decodeError(err)
	}
	if err := Validate(&v); err != nil {
		return v, err
	}
	return v, nil
}

// Validate normalizes v when it knows how, then runs tag rules and the
// payload's own checks. All failures are returned together.
func Validate(v any) error {
	if n, ok := v.(normalizer); ok {
		n.Normalize()
	}

	var fields []domain.FieldError

	if err := validate.Struct(v); err != nil {
		fe := domain.Fields(err)
		if fe == nil {
			return err
		}
		fields = append(fields, fe...)
	}
	if c, ok := v.(checker); ok {
		fields = append(fields, c.Check()...)
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "es requerido")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("body", "JSON inválido")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, fmt.Sprintf("debe ser de tipo %s", typeErr.Type.String()))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return domain.NewValidationError("body", fmt.Sprintf("campo no permitido: %s", name))
	default:
		return domain.NewValidationError("body", "JSON inválido")
	}
}
