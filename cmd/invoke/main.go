package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"random-number-api/internal/config"
	"random-number-api/internal/handlers"
	"random-number-api/internal/models"
	"random-number-api/internal/services"
	"random-number-api/pkg/lambda"
	"random-number-api/pkg/server"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		count     = flag.Int("count", 1, "Number of draws; values above 1 print a distribution summary")
		eventPath = flag.String("event", "", "Path to a JSON event file for a single invocation")
		pretty    = flag.Bool("pretty", false, "Pretty-print the response record")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Setup logger
	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	event, err := loadEvent(*eventPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load event")
	}

	logger.WithFields(logrus.Fields{
		"count": *count,
		"event": *eventPath,
	}).Debug("Starting local invocation")

	randomHandler := handlers.NewRandomHandler(container.RandomService)

	switch {
	case *count <= 0:
		logger.WithField("count", *count).Fatal("Count must be positive")
	case *count == 1:
		if err := runSingle(randomHandler.HandleInvocation, event, *pretty); err != nil {
			logger.WithError(err).Fatal("Invocation failed")
		}
	default:
		if err := runSample(container.RandomService, *count); err != nil {
			logger.WithError(err).Fatal("Sample run failed")
		}
	}
}

func loadEvent(path string) (lambda.Event, error) {
	if path == "" {
		return lambda.NewEvent(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return lambda.Event{}, fmt.Errorf("failed to read event file: %w", err)
	}

	if !json.Valid(data) {
		return lambda.Event{}, fmt.Errorf("event file %s does not contain valid JSON", path)
	}

	return lambda.NewEvent(data), nil
}

// runSingle drives one invocation through the same handler path the
// Lambda entry point uses and prints the response record
func runSingle(handle lambda.HandlerFunc, event lambda.Event, pretty bool) error {
	resp, err := handle(context.Background(), lambda.NewRequest("", event))
	if err != nil {
		return fmt.Errorf("handler returned error: %w", err)
	}

	var output []byte
	if pretty {
		output, err = json.MarshalIndent(resp, "", "  ")
	} else {
		output, err = json.Marshal(resp)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	fmt.Println(string(output))
	return nil
}

func runSample(randomService services.RandomService, count int) error {
	result, err := randomService.Sample(context.Background(), &services.SampleRequest{
		Count:  count,
		Source: models.DrawSourceCLI,
	})
	if err != nil {
		return fmt.Errorf("failed to sample distribution: %w", err)
	}

	fmt.Printf("Sample summary:\n")
	fmt.Printf("  Draws: %d\n", result.Count)
	fmt.Printf("  Distinct values: %d of %d\n", result.DistinctValues, models.RangeSize)
	fmt.Printf("  Observed range: [%d, %d]\n", result.MinObserved, result.MaxObserved)
	fmt.Printf("  Mean: %.2f\n", result.Mean)

	return nil
}
