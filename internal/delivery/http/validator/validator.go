// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	domainerrors "booking/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists the failing fields of one request body by their JSON names.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

// Unwrap lets errors.Is match domainerrors.ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return domainerrors.ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return domainerrors.ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return domainerrors.ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Invalid input data. " + e.Details()
}

// Details joins the field messages in a stable order.
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}

	return strings.Join(parts, "; ")
}

// Validator wraps a go-playground validator that reports fields by their JSON tag.
type Validator struct {
	validate *validator.Validate
}

// New creates the validator installed on the echo server.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Field failures come back as *ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = message(fe)
	}

	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "eqfield":
		return "Passwords are not the same!"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
