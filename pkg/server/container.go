package server

import (
	"fmt"

	"random-number-api/internal/config"
	"random-number-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	RandomService services.RandomService

	// Internal dependencies
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Create service configuration
	serviceConfig := &services.ServiceConfig{
		MaxSampleCount: services.DefaultMaxSampleCount,
	}

	// Initialize services
	serviceContainer, err := services.NewServiceContainer(serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("service container validation failed: %w", err)
	}

	container := &Container{
		Config:        cfg,
		RandomService: serviceContainer.RandomService,
		services:      serviceContainer,
	}

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	return nil
}
