package services

import (
	"context"
	"strings"
	"testing"

	"random-number-api/internal/models"
)

func TestDraw(t *testing.T) {
	service := NewRandomService(nil)
	ctx := context.Background()

	draw, err := service.Draw(ctx, &DrawRequest{Source: models.DrawSourceLambda})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if draw == nil {
		t.Fatal("Draw is nil")
	}

	if draw.Value < models.MinValue || draw.Value > models.MaxValue {
		t.Errorf("Expected value in [%d, %d], got %d", models.MinValue, models.MaxValue, draw.Value)
	}

	if draw.Source != models.DrawSourceLambda {
		t.Errorf("Expected source '%s', got '%s'", models.DrawSourceLambda, draw.Source)
	}

	if draw.ID == "" {
		t.Error("Expected draw ID to be generated")
	}

	if !strings.HasPrefix(draw.Message(), models.MessagePrefix) {
		t.Errorf("Expected message to start with '%s', got '%s'", models.MessagePrefix, draw.Message())
	}

	if err := draw.Validate(); err != nil {
		t.Errorf("Draw validation failed: %v", err)
	}
}

func TestDrawBounds(t *testing.T) {
	service := NewRandomService(nil)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		draw, err := service.Draw(ctx, &DrawRequest{Source: models.DrawSourceHTTP})
		if err != nil {
			t.Fatalf("Unexpected error on draw %d: %v", i, err)
		}

		if draw.Value < models.MinValue || draw.Value > models.MaxValue {
			t.Fatalf("Draw %d out of range: %d", i, draw.Value)
		}
	}
}

func TestDrawRequestValidation(t *testing.T) {
	service := NewRandomService(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *DrawRequest
		wantErr bool
	}{
		{"nil request", nil, true},
		{"missing source", &DrawRequest{}, true},
		{"unknown source", &DrawRequest{Source: "telegraph"}, true},
		{"lambda source", &DrawRequest{Source: models.DrawSourceLambda}, false},
		{"http source", &DrawRequest{Source: models.DrawSourceHTTP}, false},
		{"cli source", &DrawRequest{Source: models.DrawSourceCLI}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Draw(ctx, tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Draw() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSampleUniformity(t *testing.T) {
	service := NewRandomService(nil)
	ctx := context.Background()

	const count = 10000

	result, err := service.Sample(ctx, &SampleRequest{Count: count, Source: models.DrawSourceCLI})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Count != count {
		t.Errorf("Expected count %d, got %d", count, result.Count)
	}

	if len(result.Frequencies) != models.RangeSize {
		t.Fatalf("Expected %d frequency buckets, got %d", models.RangeSize, len(result.Frequencies))
	}

	// Every value in the range should appear in a sample this large
	if result.DistinctValues != models.RangeSize {
		t.Errorf("Expected all %d values observed, got %d", models.RangeSize, result.DistinctValues)
	}

	if result.MinObserved != models.MinValue {
		t.Errorf("Expected minimum observed %d, got %d", models.MinValue, result.MinObserved)
	}

	if result.MaxObserved != models.MaxValue {
		t.Errorf("Expected maximum observed %d, got %d", models.MaxValue, result.MaxObserved)
	}

	// Expected frequency is count/101 ~ 99; allow a wide band around it so the
	// test only fails on structural bias, not sampling variance
	total := 0
	for value, freq := range result.Frequencies {
		total += freq
		if freq < 30 || freq > 250 {
			t.Errorf("Value %d frequency %d outside plausible band [30, 250]", value, freq)
		}
	}

	if total != count {
		t.Errorf("Expected frequencies to sum to %d, got %d", count, total)
	}

	// Sample mean should sit near the midpoint of the range
	if result.Mean < 45 || result.Mean > 55 {
		t.Errorf("Expected mean near 50, got %.2f", result.Mean)
	}
}

func TestSampleRequestValidation(t *testing.T) {
	service := NewRandomService(&ServiceConfig{MaxSampleCount: 100})
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *SampleRequest
		wantErr bool
	}{
		{"nil request", nil, true},
		{"zero count", &SampleRequest{Count: 0, Source: models.DrawSourceCLI}, true},
		{"negative count", &SampleRequest{Count: -5, Source: models.DrawSourceCLI}, true},
		{"missing source", &SampleRequest{Count: 10}, true},
		{"count above cap", &SampleRequest{Count: 101, Source: models.DrawSourceCLI}, true},
		{"count at cap", &SampleRequest{Count: 100, Source: models.DrawSourceCLI}, false},
		{"single draw", &SampleRequest{Count: 1, Source: models.DrawSourceCLI}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Sample(ctx, tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Sample() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSampleSingleDraw(t *testing.T) {
	service := NewRandomService(nil)
	ctx := context.Background()

	result, err := service.Sample(ctx, &SampleRequest{Count: 1, Source: models.DrawSourceCLI})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.DistinctValues != 1 {
		t.Errorf("Expected 1 distinct value, got %d", result.DistinctValues)
	}

	if result.MinObserved != result.MaxObserved {
		t.Errorf("Expected min and max to match for single draw, got %d and %d", result.MinObserved, result.MaxObserved)
	}

	if result.Mean != float64(result.MinObserved) {
		t.Errorf("Expected mean %d for single draw, got %.2f", result.MinObserved, result.Mean)
	}
}
