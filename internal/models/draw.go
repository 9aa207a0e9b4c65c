package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DrawSource represents the transport that requested a draw
type DrawSource string

const (
	DrawSourceLambda DrawSource = "lambda"
	DrawSourceHTTP   DrawSource = "http"
	DrawSourceCLI    DrawSource = "cli"
)

// Draw represents one generated random number
type Draw struct {
	ID          string     `json:"id" validate:"required,uuid"`
	Value       int        `json:"value" validate:"gte=0,lte=100"`
	Source      DrawSource `json:"source" validate:"required,oneof=lambda http cli"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// NewDraw creates a new draw with generated ID and timestamp
func NewDraw(value int, source DrawSource) *Draw {
	return &Draw{
		ID:          uuid.New().String(),
		Value:       value,
		Source:      source,
		GeneratedAt: time.Now(),
	}
}

// Message returns the human-readable message for the draw
func (d *Draw) Message() string {
	return fmt.Sprintf("%s%d", MessagePrefix, d.Value)
}

// Validate validates the draw data
func (d *Draw) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("draw ID is required")
	}

	if d.Value < MinValue || d.Value > MaxValue {
		return fmt.Errorf("draw value %d outside range [%d, %d]", d.Value, MinValue, MaxValue)
	}

	if d.Source != DrawSourceLambda && d.Source != DrawSourceHTTP && d.Source != DrawSourceCLI {
		return fmt.Errorf("invalid draw source: %s", d.Source)
	}

	if d.GeneratedAt.IsZero() {
		return fmt.Errorf("draw timestamp is required")
	}

	return nil
}

// IsBoundary returns true if the draw landed on a range endpoint
func (d *Draw) IsBoundary() bool {
	return d.Value == MinValue || d.Value == MaxValue
}
