package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"random-number-api/internal/config"
	"random-number-api/pkg/server"
)

// ContainerManager reuses the initialized service container across warm
// invocations of a Lambda function
type ContainerManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	initOnce    sync.Once
	config      *config.Config
}

var (
	globalContainerManager *ContainerManager
	containerManagerOnce   sync.Once
)

// GetContainerManager returns the global container manager instance
func GetContainerManager() *ContainerManager {
	containerManagerOnce.Do(func() {
		globalContainerManager = &ContainerManager{}
	})
	return globalContainerManager
}

// Initialize initializes the container manager with configuration
func (cm *ContainerManager) Initialize(cfg *config.Config) error {
	var initErr error
	cm.initOnce.Do(func() {
		cm.mu.Lock()
		defer cm.mu.Unlock()

		cm.config = cfg
		container, err := server.NewContainer(cfg)
		if err != nil {
			initErr = err
			return
		}

		cm.container = container
		cm.lastUsed = time.Now()
		cm.initialized = true
	})

	return initErr
}

// GetContainer returns the service container, initializing if necessary
func (cm *ContainerManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	if cm.initialized && cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cm.mu.Unlock()

	// Need to initialize
	if cm.config == nil {
		cfg, err := config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
		if err := cm.Initialize(cfg); err != nil {
			return nil, err
		}
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if cm.container == nil {
		return nil, fmt.Errorf("container is not initialized")
	}
	return cm.container, nil
}

// IdleTime returns how long ago the container last served an invocation
func (cm *ContainerManager) IdleTime() time.Duration {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.lastUsed.IsZero() {
		return 0
	}
	return time.Since(cm.lastUsed)
}

// IsHealthy checks if the container manager is ready to serve invocations
func (cm *ContainerManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return cm.initialized && cm.container != nil
}

// Cleanup performs cleanup operations
func (cm *ContainerManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}
