package main

import (
	"context"

	"random-number-api/internal/config"
	"random-number-api/internal/handlers"
	"random-number-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

var coldStart = true

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	configureLogging(cfg)

	if err := lambda.GetContainerManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func configureLogging(cfg *config.Config) {
	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}
}

func handler(ctx context.Context, event lambda.Event) (lambda.Response, error) {
	requestID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	manager := lambda.GetContainerManager()
	req := lambda.NewRequest(requestID, event)
	trigger := event.Trigger()

	fields := logrus.Fields{
		"request_id": req.ID,
		"trigger":    string(trigger.Type),
		"cold_start": coldStart,
	}
	if trigger.Method != "" {
		fields["http_method"] = trigger.Method
		fields["http_path"] = trigger.Path
	}
	if !coldStart {
		fields["idle_time_ms"] = manager.IdleTime().Milliseconds()
	}
	coldStart = false

	logrus.WithFields(fields).Info("Invocation received")

	container, err := manager.GetContainer(ctx)
	if err != nil {
		logrus.WithField("request_id", req.ID).WithError(err).Error("Container unavailable")
		return lambda.Response{
			StatusCode: 500,
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	randomHandler := handlers.NewRandomHandler(container.RandomService)

	resp, err := randomHandler.HandleInvocation(ctx, req)
	if err != nil {
		logrus.WithField("request_id", req.ID).WithError(err).Error("Invocation failed")
		return lambda.Response{
			StatusCode: 500,
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	logrus.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"status_code": resp.StatusCode,
	}).Info("Invocation completed")

	return *resp, nil
}

func main() {
	awslambda.Start(handler)
}
