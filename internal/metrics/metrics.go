// Package metrics exposes Prometheus instrumentation for form submissions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"loan-approval-simulator/internal/models"
)

// Submission outcomes.
const (
	OutcomeScored   = "scored"
	OutcomeRejected = "rejected"
)

// Recorder holds the submission collectors.
type Recorder struct {
	Submissions    *prometheus.CounterVec
	Verdicts       *prometheus.CounterVec
	FieldErrors    *prometheus.CounterVec
	ApprovalScores prometheus.Histogram
}

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_simulator_submissions_total",
				Help: "Total number of form submissions by outcome",
			},
			[]string{"outcome"},
		),
		Verdicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_simulator_verdicts_total",
				Help: "Total number of scored submissions by verdict",
			},
			[]string{"verdict"},
		),
		FieldErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_simulator_field_errors_total",
				Help: "Total number of field validation errors",
			},
			[]string{"field", "kind"},
		),
		ApprovalScores: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "loan_simulator_approval_percent",
				Help:    "Distribution of approval percentages",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
	}
}

// ObserveScored records a submission that produced a result.
func (r *Recorder) ObserveScored(result models.ApprovalResult) {
	r.Submissions.WithLabelValues(OutcomeScored).Inc()
	r.Verdicts.WithLabelValues(string(result.Verdict)).Inc()
	r.ApprovalScores.Observe(result.Percent)
}

// ObserveRejected records a submission that failed validation.
func (r *Recorder) ObserveRejected(errs models.FieldErrors) {
	r.Submissions.WithLabelValues(OutcomeRejected).Inc()
	for field, err := range errs {
		r.FieldErrors.WithLabelValues(string(field), string(err.Kind)).Inc()
	}
}
