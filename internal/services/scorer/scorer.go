// Package scorer computes the heuristic loan approval percentage.
package scorer

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"loan-approval-simulator/internal/models"
)

// Formula constants.
const (
	IncomeWeight = 0.4
	CreditWeight = 0.4
	DebtWeight   = 0.2

	// incomeFactor saturates once income covers half the loan.
	loanCoverageRatio = 0.5
	// debtFactor reaches zero once debt hits 40% of income.
	debtCapacityRatio = 0.4
)

// Factors computes the three normalized factors. The application must have
// come from the validator: income and loan are positive.
func Factors(app models.ValidatedApplication) models.FactorScores {
	return models.FactorScores{
		Income: math.Min(app.Income/(app.Loan*loanCoverageRatio), 1),
		Credit: (app.Credit - models.MinCreditScore) / (models.MaxCreditScore - models.MinCreditScore),
		Debt:   math.Max(1-app.Debt/(app.Income*debtCapacityRatio), 0),
	}
}

// Probability combines the factors with the fixed weights. The explicit
// conversions keep each product rounded so the sum is never fused.
func Probability(f models.FactorScores) float64 {
	return float64(IncomeWeight*f.Income) + float64(CreditWeight*f.Credit) + float64(DebtWeight*f.Debt)
}

// Percent converts a probability to a percentage rounded to two decimals.
func Percent(probability float64) float64 {
	return roundPlaces(probability*100, 2)
}

// roundPlaces rounds the exact binary value of v to places decimals, ties to
// even. A value printed as 49.995 but stored just below it rounds down.
func roundPlaces(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return exactDecimal(v).RoundBank(places).InexactFloat64()
}

// exactDecimal expands v = mant * 2^exp without loss.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(math.Ldexp(frac, 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// mant / 2^n == mant * 5^n / 10^n
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

// Score evaluates a validated application. It is pure and safe to call
// concurrently.
func Score(app models.ValidatedApplication) models.ApprovalResult {
	factors := Factors(app)
	percent := Percent(Probability(factors))

	return models.ApprovalResult{
		Factors: factors,
		Percent: percent,
		Verdict: models.VerdictFor(percent),
	}
}
