// Simulate Lambda entry point
package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"

	"loan-approval-simulator/internal/config"
	"loan-approval-simulator/internal/handlers"
	"loan-approval-simulator/internal/metrics"
	"loan-approval-simulator/internal/services/simulator"
	"loan-approval-simulator/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	svc := simulator.NewService(utils.Logger, metrics.NewRecorder(prometheus.DefaultRegisterer))

	lambda.Start(handlers.NewSimulateHandler(svc, cfg).Handle)
}
