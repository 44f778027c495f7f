// Package models defines the data structures for the loan approval simulator.
package models

// Field identifies one of the four form inputs.
type Field string

const (
	FieldIncome Field = "income"
	FieldCredit Field = "credit"
	FieldDebt   Field = "debt"
	FieldLoan   Field = "loan"
)

// Fields returns the form inputs in display order.
func Fields() []Field {
	return []Field{FieldIncome, FieldCredit, FieldDebt, FieldLoan}
}

// Label returns the human-readable form label for the field.
func (f Field) Label() string {
	switch f {
	case FieldIncome:
		return "Annual Income (SGD)"
	case FieldCredit:
		return "Credit Score (300 - 850)"
	case FieldDebt:
		return "Monthly Debt (SGD)"
	case FieldLoan:
		return "Loan Amount Requested (SGD)"
	default:
		return string(f)
	}
}

// IsValid checks if the field is one of the known form inputs.
func (f Field) IsValid() bool {
	for _, known := range Fields() {
		if f == known {
			return true
		}
	}
	return false
}

// Credit score bounds accepted by the validator.
const (
	MinCreditScore = 300.0
	MaxCreditScore = 850.0
)

// RawInput holds the free-text field values of a single form submission.
type RawInput struct {
	Income string `json:"income" yaml:"income"`
	Credit string `json:"credit" yaml:"credit"`
	Debt   string `json:"debt" yaml:"debt"`
	Loan   string `json:"loan" yaml:"loan"`
}

// Value returns the raw text for a field.
func (r RawInput) Value(f Field) string {
	switch f {
	case FieldIncome:
		return r.Income
	case FieldCredit:
		return r.Credit
	case FieldDebt:
		return r.Debt
	case FieldLoan:
		return r.Loan
	default:
		return ""
	}
}

// ValidatedApplication is an applicant record whose four values passed
// validation. Only the validator constructs it.
type ValidatedApplication struct {
	Income float64 `json:"income" yaml:"income"`
	Credit float64 `json:"credit" yaml:"credit"`
	Debt   float64 `json:"debt" yaml:"debt"`
	Loan   float64 `json:"loan" yaml:"loan"`
}

// FactorScores are the three normalized sub-scores feeding the weighted formula.
type FactorScores struct {
	Income float64 `json:"income_factor" yaml:"income_factor"`
	Credit float64 `json:"credit_factor" yaml:"credit_factor"`
	Debt   float64 `json:"debt_factor" yaml:"debt_factor"`
}

// Verdict is the approval tier derived from the approval percentage.
type Verdict string

const (
	VerdictApproved    Verdict = "approved"
	VerdictBorderline  Verdict = "borderline"
	VerdictNotApproved Verdict = "not_approved"
)

// Verdict thresholds on the rounded approval percentage. Both are inclusive.
const (
	ApprovedThreshold   = 70.0
	BorderlineThreshold = 50.0
)

// VerdictFor maps an approval percentage to its tier.
func VerdictFor(percent float64) Verdict {
	switch {
	case percent >= ApprovedThreshold:
		return VerdictApproved
	case percent >= BorderlineThreshold:
		return VerdictBorderline
	default:
		return VerdictNotApproved
	}
}

// Title returns the display text for the verdict.
func (v Verdict) Title() string {
	switch v {
	case VerdictApproved:
		return "Approved"
	case VerdictBorderline:
		return "Borderline"
	case VerdictNotApproved:
		return "Not Approved"
	default:
		return string(v)
	}
}

// ApprovalResult is the outcome of scoring a validated application.
type ApprovalResult struct {
	Factors FactorScores `json:"factors" yaml:"factors"`
	Percent float64      `json:"approval_percent" yaml:"approval_percent"`
	Verdict Verdict      `json:"verdict" yaml:"verdict"`
}
