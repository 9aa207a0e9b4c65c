package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"

	"random-number-api/internal/models"
)

// randomService implements the RandomService interface
type randomService struct {
	maxSampleCount int
	validator      *validator.Validate
}

// NewRandomService creates a new random service instance
func NewRandomService(config *ServiceConfig) RandomService {
	maxSampleCount := DefaultMaxSampleCount
	if config != nil && config.MaxSampleCount > 0 {
		maxSampleCount = config.MaxSampleCount
	}

	return &randomService{
		maxSampleCount: maxSampleCount,
		validator:      validator.New(),
	}
}

// Draw generates one uniformly distributed number in [MinValue, MaxValue]
func (s *randomService) Draw(ctx context.Context, req *DrawRequest) (*models.Draw, error) {
	if req == nil {
		return nil, fmt.Errorf("draw request cannot be nil")
	}

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	value := drawValue()
	draw := models.NewDraw(value, req.Source)

	return draw, nil
}

// Sample generates req.Count draws and summarizes their distribution
func (s *randomService) Sample(ctx context.Context, req *SampleRequest) (*SampleResult, error) {
	if req == nil {
		return nil, fmt.Errorf("sample request cannot be nil")
	}

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Count > s.maxSampleCount {
		return nil, fmt.Errorf("sample count %d exceeds maximum %d", req.Count, s.maxSampleCount)
	}

	frequencies := make([]int, models.RangeSize)
	sum := 0
	minObserved := models.MaxValue
	maxObserved := models.MinValue

	for i := 0; i < req.Count; i++ {
		value := drawValue()
		frequencies[value-models.MinValue]++
		sum += value

		if value < minObserved {
			minObserved = value
		}
		if value > maxObserved {
			maxObserved = value
		}
	}

	distinct := 0
	for _, freq := range frequencies {
		if freq > 0 {
			distinct++
		}
	}

	return &SampleResult{
		Count:          req.Count,
		Frequencies:    frequencies,
		DistinctValues: distinct,
		MinObserved:    minObserved,
		MaxObserved:    maxObserved,
		Mean:           float64(sum) / float64(req.Count),
	}, nil
}

// drawValue picks one value from the inclusive range using the shared source,
// which is safe for concurrent use
func drawValue() int {
	return rand.Intn(models.RangeSize) + models.MinValue
}
