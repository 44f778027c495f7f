// Package handlers provides HTTP and Lambda handlers for the loan approval simulator.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-approval-simulator/internal/config"
	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/services/simulator"
)

const maxBodyBytes = 1 << 16

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server holds the HTTP dependencies.
type Server struct {
	simulator *simulator.Service
	config    *config.Config
	logger    *zap.Logger
	started   time.Time
}

// NewServer creates the HTTP server handlers.
func NewServer(svc *simulator.Service, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		simulator: svc,
		config:    cfg,
		logger:    logger,
		started:   time.Now(),
	}
}

// Routes builds the request mux. metrics may be nil.
func (s *Server) Routes(metrics http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/api/health", s.healthHandler)
	mux.HandleFunc("/api/simulate", s.simulateHandler)
	mux.HandleFunc("/api/reset", s.resetHandler)
	mux.HandleFunc("/api/credit-guide", s.creditGuideHandler)
	mux.HandleFunc("/reset", s.formResetHandler)
	mux.HandleFunc("/", s.formHandler)

	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}

	return s.withRequestID(mux)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(simulator.WithRequestID(r.Context(), id)))
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Loan Approval Simulator is running",
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   serviceName,
			Version:   s.config.ServiceVersion,
			Stage:     s.config.Stage,
			Uptime:    time.Since(s.started).Round(time.Second).String(),
		},
	})
}

func (s *Server) simulateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Failed to read request body"})
		return
	}

	raw, err := DecodeRawInput(body)
	if err != nil {
		s.logger.Debug("Rejected simulate request", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	sub := s.simulator.Submit(r.Context(), raw)
	status, resp := submissionResponse(sub)
	writeJSON(w, status, resp)
}

func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Form cleared",
		Data:    s.simulator.Reset(r.Context()),
	})
}

func (s *Server) creditGuideHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Credit Score ranges between 300 and 850",
		Data:    models.CreditBands(),
	})
}

// submissionResponse maps a submission to its HTTP status and envelope.
func submissionResponse(sub *simulator.Submission) (int, Response) {
	if len(sub.Errors) > 0 {
		return http.StatusUnprocessableEntity, Response{
			Success: false,
			Error:   "Invalid input",
			Data:    sub,
		}
	}
	return http.StatusOK, Response{
		Success: true,
		Message: sub.ProgressLabel(),
		Data:    sub,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

