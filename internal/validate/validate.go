// Package validate checks tagged structs and reports every failing field.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

var (
	instance *validator.Validate
	once     sync.Once

	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)
	hhmmRe  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Get returns the shared validator instance. Field names in errors are the
// JSON names of the struct fields.
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = fld.Tag.Get("form")
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(NormalizePhone(fl.Field().String()))
		})
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return hhmmRe.MatchString(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// Struct validates s. It returns nil, a *domain.ValidationError listing every
// failing field, or an error for non-struct input.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, domain.FieldError{Field: fieldPath(e), Message: Message(e)})
	}
	return domain.NewValidationErrors(fields)
}

// NormalizePhone strips the separators people type into phone numbers.
func NormalizePhone(s string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fieldPath drops the root struct name from the namespace:
// "CreateContactRequest.tag_ids[1]" becomes "tag_ids[1]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// Message returns the client-facing message for a failed rule.
func Message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if", "required_without":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "min", "max", "len":
		return lengthMessage(e)
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", e.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", e.Param())
	case "gtfield":
		return fmt.Sprintf("debe ser posterior a %s", e.Param())
	case "phone":
		return "debe ser un teléfono válido en formato internacional"
	case "numeric":
		return "debe contener solo dígitos"
	case "uuid", "uuid4":
		return "debe ser un UUID válido"
	case "datetime":
		return fmt.Sprintf("debe tener el formato %s", e.Param())
	case "hhmm":
		return "debe tener el formato HH:MM"
	case "timezone":
		return "debe ser una zona horaria IANA válida"
	case "url", "http_url":
		return "debe ser una URL válida"
	case "hexcolor":
		return "debe ser un color hexadecimal"
	default:
		return fmt.Sprintf("no es válido (%s)", e.Tag())
	}
}

func lengthMessage(e validator.FieldError) string {
	var bound string
	switch e.Tag() {
	case "min":
		bound = "al menos"
	case "max":
		bound = "como máximo"
	default:
		bound = "exactamente"
	}

	switch e.Kind() {
	case reflect.String:
		return fmt.Sprintf("debe tener %s %s caracteres", bound, e.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("debe tener %s %s elementos", bound, e.Param())
	default:
		switch e.Tag() {
		case "min":
			return fmt.Sprintf("debe ser mayor o igual a %s", e.Param())
		case "max":
			return fmt.Sprintf("debe ser menor o igual a %s", e.Param())
		}
		return fmt.Sprintf("debe ser igual a %s", e.Param())
	}
}
