// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"fmt"
	"strings"

	domainerrors "journal/internal/domain/errors"
	"journal/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator runs the declarative per-field constraints bound to a
// request DTO. All constraints are evaluated regardless of earlier failures,
// so a client sees every problem in one round trip.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Any failure is aggregated into exactly
// one VALIDATION_ERROR carrying the complete ordered list of field failures.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Non-constraint failure (e.g. an invalid target type) is a
		// programming error, not client input.
		return errors.Wrap(err, "validation could not run")
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:         fieldName(fieldErr),
			Message:       fieldMessage(fieldErr),
			RejectedValue: rejectedValue(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func fieldName(fieldErr validator.FieldError) string {
	name := fieldErr.Field()

	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed the %s constraint", fieldErr.Tag())
	}
}

// rejectedValue echoes the offending input back, except for credential
// fields which must never appear in a response or a log.
func rejectedValue(fieldErr validator.FieldError) any {
	if strings.Contains(strings.ToLower(fieldErr.Field()), "password") {
		return nil
	}
	if strings.Contains(strings.ToLower(fieldErr.Field()), "token") {
		return nil
	}

	return fieldErr.Value()
}
