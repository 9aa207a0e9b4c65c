package models

import (
	"time"
)

// Common constants
const (
	// Inclusive bounds of the generated range
	MinValue = 0
	MaxValue = 100

	// Number of distinct values in the range
	RangeSize = MaxValue - MinValue + 1

	// Prefix of the response message
	MessagePrefix = "Random number: "
)

// HealthCheck represents system health status
type HealthCheck struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Mode      string    `json:"mode"`
}

// ValidationError represents a validation error with field-specific details
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}
