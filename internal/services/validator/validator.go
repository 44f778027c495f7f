// Package validator checks raw form input and builds validated applications.
package validator

import (
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"loan-approval-simulator/internal/models"
)

const (
	msgPositive    = "must be > 0"
	msgCreditRange = "must be between 300 and 850"
)

// rangeRules holds the domain constraints applied once a field parses.
// Required is listed because ozzo skips threshold rules for zero values.
var rangeRules = map[models.Field][]validation.Rule{
	models.FieldIncome: {
		validation.Required.Error(msgPositive),
		validation.Min(0.0).Exclusive().Error(msgPositive),
	},
	models.FieldCredit: {
		validation.Required.Error(msgCreditRange),
		validation.Min(models.MinCreditScore).Error(msgCreditRange),
		validation.Max(models.MaxCreditScore).Error(msgCreditRange),
	},
	// Debt only has to parse; negative values are accepted as observed.
	models.FieldDebt: nil,
	models.FieldLoan: {
		validation.Required.Error(msgPositive),
		validation.Min(0.0).Exclusive().Error(msgPositive),
	},
}

// Validate checks all four fields independently and returns either a
// ValidatedApplication or a non-empty FieldErrors, never both.
func Validate(raw models.RawInput) (*models.ValidatedApplication, models.FieldErrors) {
	errs := models.FieldErrors{}
	values := make(map[models.Field]float64, 4)
	ranges := validation.Errors{}

	for _, field := range models.Fields() {
		n, ok := ParseNumber(raw.Value(field))
		if !ok {
			errs.Add(models.NewParseError(field))
			continue
		}
		values[field] = n
		ranges[string(field)] = validation.Validate(n, rangeRules[field]...)
	}

	if err := ranges.Filter(); err != nil {
		for name, fieldErr := range err.(validation.Errors) {
			if field := models.Field(name); field.IsValid() {
				errs.Add(models.NewRangeError(field, fieldErr.Error()))
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.ValidatedApplication{
		Income: values[models.FieldIncome],
		Credit: values[models.FieldCredit],
		Debt:   values[models.FieldDebt],
		Loan:   values[models.FieldLoan],
	}, nil
}

// ParseNumber parses a free-text field as a finite real number. Surrounding
// whitespace is ignored.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || isHexLiteral(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// isHexLiteral reports whether s carries a 0x prefix after an optional sign.
// Hexadecimal floats are not accepted as form input.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
