package simulator

import "loan-approval-simulator/internal/models"

// Bar is one column of the factor contribution chart.
type Bar struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color" yaml:"color"`
}

// Chart labels and colors, in display order.
const (
	IncomeLabel = "Income Strength"
	CreditLabel = "Credit Score"
	DebtLabel   = "Debt Burden"

	IncomeColor = "#1abc9c"
	CreditColor = "#3498db"
	DebtColor   = "#f39c12"
)

// FactorBars lays out the three factors as chart bars.
func FactorBars(f models.FactorScores) []Bar {
	return []Bar{
		{Label: IncomeLabel, Value: f.Income, Color: IncomeColor},
		{Label: CreditLabel, Value: f.Credit, Color: CreditColor},
		{Label: DebtLabel, Value: f.Debt, Color: DebtColor},
	}
}
