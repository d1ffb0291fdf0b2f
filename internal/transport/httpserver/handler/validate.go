package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs the struct tags and returns one entry per
// violated field, so callers see all failures at once.
func validateRequest(payload interface{}) []fieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return []fieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]fieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, fieldError{
			Field:   violation.Field(),
			Message: fieldMessage(violation),
		})
	}
	return fields
}

func fieldMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", violation.Field())
	case "min":
		return fmt.Sprintf("%s is required and must be at least %s characters", violation.Field(), violation.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", violation.Field())
	default:
		return fmt.Sprintf("%s is invalid", violation.Field())
	}
}
