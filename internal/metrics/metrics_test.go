package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"loan-approval-simulator/internal/models"
)

func TestRecorder_ObserveScored(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	rec.ObserveScored(models.ApprovalResult{Percent: 73.71, Verdict: models.VerdictApproved})
	rec.ObserveScored(models.ApprovalResult{Percent: 60, Verdict: models.VerdictBorderline})

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Submissions.WithLabelValues(OutcomeScored)))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Submissions.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Verdicts.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Verdicts.WithLabelValues("borderline")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.ApprovalScores))
}

func TestRecorder_ObserveRejected(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	errs := models.FieldErrors{}
	errs.Add(models.NewParseError(models.FieldIncome))
	errs.Add(models.NewRangeError(models.FieldCredit, "must be between 300 and 850"))
	rec.ObserveRejected(errs)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Submissions.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.FieldErrors.WithLabelValues("income", "parse")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.FieldErrors.WithLabelValues("credit", "range")))
}
