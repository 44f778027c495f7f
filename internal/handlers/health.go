// Package handlers provides HTTP and Lambda handlers for the loan approval simulator.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"loan-approval-simulator/internal/config"
)

const serviceName = "loan-approval-simulator"

// HealthHandler handles health check requests on Lambda.
type HealthHandler struct {
	config *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{config: cfg}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Stage     string `json:"stage"`
	Uptime    string `json:"uptime,omitempty"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   h.config.ServiceVersion,
		Stage:     h.config.Stage,
	}

	body, _ := json.Marshal(response)

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(h.config),
		Body:       string(body),
	}, nil
}

// corsHeaders returns the headers attached to every Lambda response.
func corsHeaders(cfg *config.Config) map[string]string {
	origin := "*"
	if len(cfg.CORSAllowedOrigins) > 0 {
		origin = cfg.CORSAllowedOrigins[0]
	}
	return map[string]string{
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Headers": "Content-Type,X-Request-ID",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
		"Content-Type":                 "application/json",
	}
}
