// Package handlers provides HTTP and Lambda handlers for the loan approval simulator.
package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/presentation/render"
	"loan-approval-simulator/internal/services/simulator"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

type fieldView struct {
	Name  string
	Label string
	Value string
	Error string
}

type formView struct {
	Fields             []fieldView
	Submission         *simulator.Submission
	Chart              template.HTML
	CreditBands        []models.CreditBand
	ErrorDisplayMillis int64
}

func (s *Server) formHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.renderForm(w, http.StatusOK, models.RawInput{}, nil)
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		raw := models.RawInput{
			Income: r.PostFormValue(string(models.FieldIncome)),
			Credit: r.PostFormValue(string(models.FieldCredit)),
			Debt:   r.PostFormValue(string(models.FieldDebt)),
			Loan:   r.PostFormValue(string(models.FieldLoan)),
		}
		sub := s.simulator.Submit(r.Context(), raw)
		status := http.StatusOK
		if len(sub.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}
		s.renderForm(w, status, raw, sub)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) formResetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.renderForm(w, http.StatusOK, models.RawInput{}, s.simulator.Reset(r.Context()))
}

func (s *Server) renderForm(w http.ResponseWriter, status int, raw models.RawInput, sub *simulator.Submission) {
	view := formView{
		Submission:         sub,
		CreditBands:        models.CreditBands(),
		ErrorDisplayMillis: s.config.ErrorDisplayTimeout().Milliseconds(),
	}

	var messages map[string]string
	if sub != nil {
		messages = sub.Errors.Messages()
	}
	for _, field := range models.Fields() {
		view.Fields = append(view.Fields, fieldView{
			Name:  string(field),
			Label: field.Label(),
			Value: raw.Value(field),
			Error: messages[string(field)],
		})
	}

	if sub != nil && sub.Scored() {
		chart, err := render.FactorChartSVG(sub.Chart)
		if err != nil {
			s.logger.Error("Failed to render chart", zap.Error(err))
		} else {
			view.Chart = chart
		}
	}

	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, view); err != nil {
		s.logger.Error("Failed to render form", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
