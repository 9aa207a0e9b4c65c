package models

import (
	"fmt"
	"strings"
)

// ValidateDrawValue checks that a value lies within the inclusive generation range
func ValidateDrawValue(value int) error {
	if value < MinValue || value > MaxValue {
		return &ValidationError{
			Field:   "value",
			Message: fmt.Sprintf("value must be between %d and %d", MinValue, MaxValue),
			Value:   value,
		}
	}
	return nil
}

// ValidateDrawSource checks that a source is one of the known transports
func ValidateDrawSource(source DrawSource) error {
	allowed := []DrawSource{DrawSourceLambda, DrawSourceHTTP, DrawSourceCLI}
	for _, a := range allowed {
		if source == a {
			return nil
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}

	return &ValidationError{
		Field:   "source",
		Message: fmt.Sprintf("source must be one of: %s", strings.Join(names, ", ")),
		Value:   string(source),
	}
}

// ValidateRequired checks if a required string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fieldName + " is required",
			Value:   value,
		}
	}
	return nil
}
