package services

import (
	"context"

	"random-number-api/internal/models"
)

// RandomService defines the interface for random number business logic operations
type RandomService interface {
	// Draw generates one uniformly distributed number in the inclusive range
	Draw(ctx context.Context, req *DrawRequest) (*models.Draw, error)

	// Sample generates many draws and summarizes their distribution
	Sample(ctx context.Context, req *SampleRequest) (*SampleResult, error)
}

// Request and response types for service operations

type DrawRequest struct {
	Source models.DrawSource `json:"source" validate:"required,oneof=lambda http cli"`
}

type SampleRequest struct {
	Count  int               `json:"count" validate:"required,min=1"`
	Source models.DrawSource `json:"source" validate:"required,oneof=lambda http cli"`
}

type SampleResult struct {
	Count          int     `json:"count"`
	Frequencies    []int   `json:"frequencies"`
	DistinctValues int     `json:"distinct_values"`
	MinObserved    int     `json:"min_observed"`
	MaxObserved    int     `json:"max_observed"`
	Mean           float64 `json:"mean"`
}
