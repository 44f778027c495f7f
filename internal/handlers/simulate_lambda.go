// Package handlers provides HTTP and Lambda handlers for the loan approval simulator.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"loan-approval-simulator/internal/config"
	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/services/simulator"
	"loan-approval-simulator/internal/utils"
)

// SimulateHandler serves the simulation API through API Gateway.
type SimulateHandler struct {
	simulator *simulator.Service
	config    *config.Config
}

// NewSimulateHandler creates a new simulate handler.
func NewSimulateHandler(svc *simulator.Service, cfg *config.Config) *SimulateHandler {
	return &SimulateHandler{simulator: svc, config: cfg}
}

// Handle routes POST /simulate, POST /reset and GET /credit-guide.
func (h *SimulateHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()
	headers := corsHeaders(h.config)

	// Handle CORS preflight
	if request.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Headers: headers}, nil
	}

	requestID := request.RequestContext.RequestID
	if id := headerValue(request.Headers, RequestIDHeader); id != "" {
		requestID = id
	}
	if requestID != "" {
		ctx = simulator.WithRequestID(ctx, requestID)
	}

	logger.Debug("Handling request",
		utils.String("method", request.HTTPMethod),
		utils.String("path", request.Path),
		utils.String("request_id", requestID),
	)

	path := strings.TrimSuffix(request.Path, "/")
	switch {
	case strings.HasSuffix(path, "/credit-guide") && request.HTTPMethod == http.MethodGet:
		return apiResponse(headers, http.StatusOK, Response{
			Success: true,
			Message: "Credit Score ranges between 300 and 850",
			Data:    models.CreditBands(),
		})

	case strings.HasSuffix(path, "/reset") && request.HTTPMethod == http.MethodPost:
		return apiResponse(headers, http.StatusOK, Response{
			Success: true,
			Message: "Form cleared",
			Data:    h.simulator.Reset(ctx),
		})

	case request.HTTPMethod == http.MethodPost:
		raw, err := DecodeRawInput([]byte(request.Body))
		if err != nil {
			logger.Debug("Rejected simulate request", utils.Error(err))
			return apiResponse(headers, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		}
		status, resp := submissionResponse(h.simulator.Submit(ctx, raw))
		return apiResponse(headers, status, resp)

	default:
		return apiResponse(headers, http.StatusMethodNotAllowed, Response{Success: false, Error: "Method not allowed"})
	}
}

// headerValue looks a header up by name regardless of case. API Gateway passes
// header names through as the client sent them.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func apiResponse(headers map[string]string, status int, resp Response) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(resp)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}, nil
}
