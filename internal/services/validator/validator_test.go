package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-approval-simulator/internal/models"
)

func validInput() models.RawInput {
	return models.RawInput{Income: "60000", Credit: "720", Debt: "1000", Loan: "200000"}
}

func TestValidate_ValidInput(t *testing.T) {
	app, errs := Validate(validInput())

	require.Empty(t, errs)
	require.NotNil(t, app)
	assert.Equal(t, models.ValidatedApplication{Income: 60000, Credit: 720, Debt: 1000, Loan: 200000}, *app)
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	app, errs := Validate(models.RawInput{Income: " 60000 ", Credit: "\t720", Debt: "1e3", Loan: "200000\n"})

	require.Empty(t, errs)
	assert.Equal(t, 1000.0, app.Debt)
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		field   models.Field
		value   string
		kind    models.ErrorKind
		message string
	}{
		{"income not a number", models.FieldIncome, "abc", models.ErrorKindParse, "not a number"},
		{"income empty", models.FieldIncome, "", models.ErrorKindParse, "not a number"},
		{"income zero", models.FieldIncome, "0", models.ErrorKindRange, "must be > 0"},
		{"income negative", models.FieldIncome, "-5", models.ErrorKindRange, "must be > 0"},
		{"income NaN", models.FieldIncome, "NaN", models.ErrorKindParse, "not a number"},
		{"income Inf", models.FieldIncome, "Inf", models.ErrorKindParse, "not a number"},
		{"loan hex float", models.FieldLoan, "0x1p4", models.ErrorKindParse, "not a number"},
		{"credit below range", models.FieldCredit, "299.99", models.ErrorKindRange, "must be between 300 and 850"},
		{"credit above range", models.FieldCredit, "850.01", models.ErrorKindRange, "must be between 300 and 850"},
		{"credit zero", models.FieldCredit, "0", models.ErrorKindRange, "must be between 300 and 850"},
		{"credit not a number", models.FieldCredit, "good", models.ErrorKindParse, "not a number"},
		{"debt not a number", models.FieldDebt, "none", models.ErrorKindParse, "not a number"},
		{"loan zero", models.FieldLoan, "0", models.ErrorKindRange, "must be > 0"},
		{"loan negative", models.FieldLoan, "-100", models.ErrorKindRange, "must be > 0"},
		{"loan not a number", models.FieldLoan, "1,000", models.ErrorKindParse, "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validInput()
			switch tt.field {
			case models.FieldIncome:
				raw.Income = tt.value
			case models.FieldCredit:
				raw.Credit = tt.value
			case models.FieldDebt:
				raw.Debt = tt.value
			case models.FieldLoan:
				raw.Loan = tt.value
			}

			app, errs := Validate(raw)

			assert.Nil(t, app)
			require.Len(t, errs, 1)
			require.True(t, errs.Has(tt.field))
			assert.Equal(t, tt.kind, errs[tt.field].Kind)
			assert.Equal(t, tt.message, errs[tt.field].Message)
		})
	}
}

func TestValidate_CreditBoundsInclusive(t *testing.T) {
	for _, credit := range []string{"300", "850", "300.0", "575.5"} {
		raw := validInput()
		raw.Credit = credit

		app, errs := Validate(raw)
		assert.Empty(t, errs, "credit %s", credit)
		assert.NotNil(t, app, "credit %s", credit)
	}
}

func TestValidate_DebtHasNoRange(t *testing.T) {
	for _, debt := range []string{"0", "-250", "1000000000"} {
		raw := validInput()
		raw.Debt = debt

		_, errs := Validate(raw)
		assert.Empty(t, errs, "debt %s", debt)
	}
}

func TestValidate_ErrorsAreCumulative(t *testing.T) {
	app, errs := Validate(models.RawInput{Income: "abc", Credit: "900", Debt: "x", Loan: "-1"})

	assert.Nil(t, app)
	require.Len(t, errs, 4)
	assert.True(t, errors.Is(errs[models.FieldIncome], models.ErrNotANumber))
	assert.True(t, errors.Is(errs[models.FieldCredit], models.ErrOutOfRange))
	assert.True(t, errors.Is(errs[models.FieldDebt], models.ErrNotANumber))
	assert.True(t, errors.Is(errs[models.FieldLoan], models.ErrOutOfRange))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"42", 42, true},
		{"-3.5", -3.5, true},
		{" 1e2 ", 100, true},
		{"", 0, false},
		{"   ", 0, false},
		{"12abc", 0, false},
		{"nan", 0, false},
		{"-inf", 0, false},
		{"0x1p4", 0, false},
		{"-0X10", 0, false},
		{"+0x1.8p1", 0, false},
		{"0.5", 0.5, true},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.valid, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
