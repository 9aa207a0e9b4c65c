package config

import (
	"context"
	"os"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda        bool
	FunctionName    string
	FunctionVersion string
	Region          string
	MemoryLimitMB   int
	Stage           string
}

// Global serverless configuration
var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:        isRunningInLambda(),
			FunctionName:    os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			FunctionVersion: os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
			Region:          os.Getenv("AWS_REGION"),
			MemoryLimitMB:   GetEnvAsInt("AWS_LAMBDA_FUNCTION_MEMORY_SIZE", 0),
			Stage:           GetEnv("STAGE", "dev"),
		}
	})
	return serverlessConfig
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment
func AdaptConfigForServerless(ctx context.Context, config *Config) *Config {
	return adaptConfig(config, GetServerlessConfig())
}

// adaptConfig applies serverless adaptations from the given runtime facts
func adaptConfig(config *Config, sc *ServerlessConfig) *Config {
	if !sc.IsLambda {
		return config
	}

	// Structured JSON logs for CloudWatch
	if config.Log.Format == "text" {
		config.Log.Format = "json"
	}

	// Function metadata comes from the runtime environment
	if sc.FunctionName != "" {
		config.Function.Name = sc.FunctionName
	}
	if sc.FunctionVersion != "" {
		config.Function.Version = sc.FunctionVersion
	}
	if sc.Region != "" {
		config.Function.Region = sc.Region
	}
	config.Function.MemoryLimitMB = sc.MemoryLimitMB

	return config
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	// Apply serverless adaptations if needed
	config = AdaptConfigForServerless(context.Background(), config)

	return config, nil
}
