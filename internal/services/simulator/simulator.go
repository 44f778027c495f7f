// Package simulator runs one form submission through validation and scoring.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/services/scorer"
	"loan-approval-simulator/internal/services/validator"
)

// Recorder receives submission outcomes, typically for metrics.
type Recorder interface {
	ObserveScored(result models.ApprovalResult)
	ObserveRejected(errs models.FieldErrors)
}

// Submission is everything the presentation layer needs to render one
// submit action. Exactly one of Errors and Result is set, except for the
// empty submission produced by a reset.
type Submission struct {
	ID          string                 `json:"id" yaml:"id"`
	SubmittedAt time.Time              `json:"submitted_at" yaml:"submitted_at"`
	Input       models.RawInput        `json:"input" yaml:"input"`
	Errors      models.FieldErrors     `json:"errors,omitempty" yaml:"errors,omitempty"`
	Result      *models.ApprovalResult `json:"result,omitempty" yaml:"result,omitempty"`
	Chart       []Bar                  `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// Scored reports whether the submission produced an approval result.
func (s *Submission) Scored() bool {
	return s.Result != nil
}

// ProgressLabel is the text shown above the progress bar. Empty when nothing
// has been scored.
func (s *Submission) ProgressLabel() string {
	if s.Result == nil {
		return ""
	}
	return fmt.Sprintf("Predicted Loan Approval Probability: %.2f%%", s.Result.Percent)
}

// Progress is the progress bar value in [0, 100].
func (s *Submission) Progress() float64 {
	if s.Result == nil {
		return 0
	}
	return s.Result.Percent
}

// Service handles form submissions.
type Service struct {
	logger   *zap.Logger
	recorder Recorder
	now      func() time.Time
}

// NewService creates a new simulator service. recorder may be nil.
func NewService(logger *zap.Logger, recorder Recorder) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Submit validates the raw input and, if it is valid, scores it. Validation
// failure suppresses scoring entirely.
func (s *Service) Submit(ctx context.Context, raw models.RawInput) *Submission {
	sub := &Submission{
		ID:          RequestIDFromContext(ctx),
		SubmittedAt: s.now().UTC(),
		Input:       raw,
	}

	app, errs := validator.Validate(raw)
	if len(errs) > 0 {
		sub.Errors = errs
		s.logger.Info("Submission rejected",
			zap.String("request_id", sub.ID),
			zap.Strings("fields", errs.FieldNames()),
		)
		if s.recorder != nil {
			s.recorder.ObserveRejected(errs)
		}
		return sub
	}

	result := scorer.Score(*app)
	sub.Result = &result
	sub.Chart = FactorBars(result.Factors)

	s.logger.Info("Submission scored",
		zap.String("request_id", sub.ID),
		zap.Float64("approval_percent", result.Percent),
		zap.String("verdict", string(result.Verdict)),
	)
	if s.recorder != nil {
		s.recorder.ObserveScored(result)
	}

	return sub
}

// Reset returns the empty submission shown after the form is cleared.
func (s *Service) Reset(ctx context.Context) *Submission {
	id := RequestIDFromContext(ctx)
	s.logger.Debug("Form reset", zap.String("request_id", id))
	return &Submission{
		ID:          id,
		SubmittedAt: s.now().UTC(),
	}
}

type requestIDKey struct{}

// WithRequestID attaches a request id to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id on ctx, or a fresh one.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
