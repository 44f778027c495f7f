// Package render draws submissions for terminals and browsers.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/services/simulator"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"

	barFull  = "█"
	barEmpty = "░"
)

// TextOptions controls terminal output.
type TextOptions struct {
	Color      bool
	BarWidth   int
	ChartWidth int
}

// DefaultTextOptions returns the options used by the CLI.
func DefaultTextOptions() TextOptions {
	return TextOptions{Color: true, BarWidth: 40, ChartWidth: 30}
}

// ProgressBar draws a determinate bar for a percentage in [0, 100].
func ProgressBar(percent float64, width int) string {
	filled := int(math.Round(clamp(percent/100) * float64(width)))
	return "[" + strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled) + "]"
}

// VerdictColor returns the ANSI color for a verdict tier.
func VerdictColor(v models.Verdict) string {
	switch v {
	case models.VerdictApproved:
		return colorGreen
	case models.VerdictBorderline:
		return colorYellow
	default:
		return colorRed
	}
}

// VerdictLine formats the verdict, colored by tier when color is set.
func VerdictLine(v models.Verdict, color bool) string {
	line := "Verdict: " + v.Title()
	if color {
		return VerdictColor(v) + line + colorReset
	}
	return line
}

// FactorChart draws the factor bars horizontally on a 0-1 scale with
// two-decimal labels.
func FactorChart(bars []simulator.Bar, width int) string {
	labelWidth := 0
	for _, b := range bars {
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	var sb strings.Builder
	sb.WriteString("Loan Approval Factors Contribution\n")
	for _, b := range bars {
		filled := int(math.Round(clamp(b.Value) * float64(width)))
		fmt.Fprintf(&sb, "  %-*s  %s%s  %.2f\n",
			labelWidth, b.Label,
			strings.Repeat(barFull, filled), strings.Repeat(barEmpty, width-filled),
			b.Value)
	}
	return sb.String()
}

// FieldErrors lists the failing fields in form order with their labels.
func FieldErrors(errs models.FieldErrors, color bool) string {
	var sb strings.Builder
	for _, field := range models.Fields() {
		err, ok := errs[field]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %s: %s", field.Label(), err.Message)
		if color {
			line = colorRed + line + colorReset
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// CreditGuide renders the credit score guide table.
func CreditGuide() string {
	var sb strings.Builder
	sb.WriteString("Credit Score ranges between 300 and 850:\n\n")
	for _, b := range models.CreditBands() {
		fmt.Fprintf(&sb, "  %d-%d  %-5s  %-9s  %s\n",
			b.Min, b.Max, strings.Repeat("*", b.Stars), b.Rating, b.Description)
	}
	return sb.String()
}

// Submission writes the full text rendering of a submission.
func Submission(w io.Writer, sub *simulator.Submission, opts TextOptions) error {
	var sb strings.Builder

	switch {
	case len(sub.Errors) > 0:
		sb.WriteString("Invalid input:\n")
		sb.WriteString(FieldErrors(sub.Errors, opts.Color))
	case sub.Scored():
		sb.WriteString(sub.ProgressLabel() + "\n")
		sb.WriteString(ProgressBar(sub.Progress(), opts.BarWidth) + "\n")
		sb.WriteString(VerdictLine(sub.Result.Verdict, opts.Color) + "\n\n")
		sb.WriteString(FactorChart(sub.Chart, opts.ChartWidth))
	default:
		sb.WriteString("Form cleared.\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
