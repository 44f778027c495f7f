// Package handlers provides HTTP and Lambda handlers for the loan approval simulator.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"loan-approval-simulator/internal/models"
)

// ErrInvalidRequest is returned when a request body does not have the shape
// of a simulation request.
var ErrInvalidRequest = errors.New("invalid request body")

// simulateRequestSchema describes the JSON body of a simulation request.
// Values may be sent as strings or numbers; both are validated as text.
const simulateRequestSchema = `{
	"type": "object",
	"properties": {
		"income": {"type": ["string", "number"]},
		"credit": {"type": ["string", "number"]},
		"debt":   {"type": ["string", "number"]},
		"loan":   {"type": ["string", "number"]}
	},
	"required": ["income", "credit", "debt", "loan"],
	"additionalProperties": false
}`

var requestSchema = mustSchema(simulateRequestSchema)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic("invalid simulate request schema: " + err.Error())
	}
	return schema
}

// DecodeRawInput checks body against the request schema and converts it to
// a RawInput.
func DecodeRawInput(body []byte) (models.RawInput, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return models.RawInput{}, fmt.Errorf("%w: empty body", ErrInvalidRequest)
	}

	result, err := requestSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return models.RawInput{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return models.RawInput{}, fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var fields map[string]interface{}
	if err := decoder.Decode(&fields); err != nil {
		return models.RawInput{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return models.RawInput{
		Income: fieldText(fields[string(models.FieldIncome)]),
		Credit: fieldText(fields[string(models.FieldCredit)]),
		Debt:   fieldText(fields[string(models.FieldDebt)]),
		Loan:   fieldText(fields[string(models.FieldLoan)]),
	}, nil
}

func fieldText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
