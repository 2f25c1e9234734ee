package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError reports which fields of an entity failed validation.
// Each key is a lowercased field name, each value a message suitable for
// rendering next to the offending form input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newValidationError converts validator field errors into a ValidationError.
func newValidationError(err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[field] = fmt.Sprintf("The %s field is required.", field)
		case "max":
			fields[field] = fmt.Sprintf("The %s field may not be longer than %s characters.", field, fe.Param())
		default:
			fields[field] = fmt.Sprintf("The %s field is invalid.", field)
		}
	}
	return &ValidationError{Fields: fields}
}
