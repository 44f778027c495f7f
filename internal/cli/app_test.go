package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/services/simulator"
)

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{in: strings.NewReader(in), out: &out}
	err := a.command().Run(context.Background(), append([]string{"loan-sim"}, args...))
	return out.String(), err
}

func TestSimulate_Text(t *testing.T) {
	out, err := run(t, "", "--no-color", "simulate",
		"--income", "60000", "--credit", "720", "--debt", "1000", "--loan", "200000")

	require.NoError(t, err)
	assert.Contains(t, out, "Predicted Loan Approval Probability: 73.71%")
	assert.Contains(t, out, "Verdict: Approved")
	assert.Contains(t, out, "Loan Approval Factors Contribution")
	assert.NotContains(t, out, "\033[")
}

func TestSimulate_InvalidInput(t *testing.T) {
	out, err := run(t, "", "--no-color", "calc",
		"--income", "abc", "--credit", "200", "--debt", "0", "--loan", "1")

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, out, "Invalid input:")
	assert.Contains(t, out, "Annual Income (SGD): not a number")
	assert.Contains(t, out, "Credit Score (300 - 850): must be between 300 and 850")
	assert.NotContains(t, out, "Predicted")
}

func TestSimulate_MissingFlagsAreValidationErrors(t *testing.T) {
	_, err := run(t, "", "--no-color", "simulate")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSimulate_JSON(t *testing.T) {
	out, err := run(t, "", "--format", "json", "simulate",
		"--income", "50000", "--credit", "575", "--debt", "0", "--loan", "200000")
	require.NoError(t, err)

	var sub simulator.Submission
	require.NoError(t, json.Unmarshal([]byte(out), &sub))
	require.NotNil(t, sub.Result)
	assert.Equal(t, 60.0, sub.Result.Percent)
	assert.Equal(t, models.VerdictBorderline, sub.Result.Verdict)
	assert.NotEmpty(t, sub.ID)
}

func TestSimulate_YAML(t *testing.T) {
	out, err := run(t, "", "--format", "yml", "simulate",
		"--income", "10000", "--credit", "300", "--debt", "4000", "--loan", "100000")
	require.NoError(t, err)

	var sub struct {
		Result models.ApprovalResult `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &sub))
	assert.Equal(t, 8.0, sub.Result.Percent)
	assert.Equal(t, models.VerdictNotApproved, sub.Result.Verdict)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := run(t, "", "--format", "xml", "guide")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
}

func TestGuide(t *testing.T) {
	out, err := run(t, "", "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "Credit Score ranges between 300 and 850")
	assert.Contains(t, out, "Very Good")

	out, err = run(t, "", "guide", "--score", "745")
	require.NoError(t, err)
	assert.Equal(t, "740-799  ****  Very Good - Good interest rates\n", out)
}

func TestGuide_JSON(t *testing.T) {
	out, err := run(t, "", "--format", "json", "guide", "--score", "300")
	require.NoError(t, err)

	var band models.CreditBand
	require.NoError(t, json.Unmarshal([]byte(out), &band))
	assert.Equal(t, "Very Poor", band.Rating)
}

func TestGuide_BadScore(t *testing.T) {
	_, err := run(t, "", "guide", "--score", "abc")
	assert.ErrorIs(t, err, models.ErrNotANumber)

	_, err = run(t, "", "guide", "--score", "900")
	assert.ErrorIs(t, err, models.ErrOutOfRange)
}

func TestInteractive_Scores(t *testing.T) {
	out, err := run(t, "60000\n720\n1000\n200000\nquit\n", "--no-color", "interactive")

	require.NoError(t, err)
	assert.Contains(t, out, "Annual Income (SGD): ")
	assert.Contains(t, out, "Predicted Loan Approval Probability: 73.71%")
	// The next pass offers the previous values.
	assert.Contains(t, out, "Annual Income (SGD) [60000]: ")
}

func TestInteractive_ErrorsShownOnNextPrompt(t *testing.T) {
	out, err := run(t, "abc\n720\n1000\n0\n\n", "--no-color", "form")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input:")
	assert.Contains(t, out, "Annual Income (SGD) [abc] (not a number): ")
	assert.NotContains(t, out, "Predicted")
}

func TestInteractive_ResetAndGuide(t *testing.T) {
	out, err := run(t, "60000\nguide\nreset\n1\nexit\n", "--no-color", "interactive")

	require.NoError(t, err)
	assert.Contains(t, out, "Credit Score ranges between 300 and 850")
	assert.Contains(t, out, "Form cleared.")
	assert.NotContains(t, out, "[60000]")
}

func TestInteractive_DashClearsOneField(t *testing.T) {
	// First pass leaves debt invalid; second pass clears income only.
	out, err := run(t, "60000\n720\nx\n200000\n-\n\n\n\nquit\n", "--no-color", "interactive")

	require.NoError(t, err)
	assert.Contains(t, out, "type '-' to clear it")
	assert.Contains(t, out, "Monthly Debt (SGD) [x] (not a number): ")
	assert.Contains(t, out, "Annual Income (SGD): not a number")
	assert.Contains(t, out, "Credit Score (300 - 850) [720]")
}
