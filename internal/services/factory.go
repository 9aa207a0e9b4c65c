package services

import (
	"fmt"
)

// DefaultMaxSampleCount caps how many draws a single sample request may ask for
const DefaultMaxSampleCount = 1000000

// ServiceContainer holds all service instances
type ServiceContainer struct {
	RandomService RandomService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	MaxSampleCount int
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(config *ServiceConfig) (*ServiceContainer, error) {
	if config == nil {
		config = &ServiceConfig{
			MaxSampleCount: DefaultMaxSampleCount,
		}
	}

	// Create random service
	randomService := NewRandomService(config)

	return &ServiceContainer{
		RandomService: randomService,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.RandomService == nil {
		return fmt.Errorf("random service is nil")
	}

	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	// Services don't currently need cleanup, but this provides
	// a hook for future cleanup operations
	return nil
}
