// Health Check Lambda entry point
package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"loan-approval-simulator/internal/config"
	"loan-approval-simulator/internal/handlers"
	"loan-approval-simulator/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	lambda.Start(handlers.NewHealthHandler(cfg).Handle)
}
