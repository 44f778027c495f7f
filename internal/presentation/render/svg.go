package render

import (
	"bytes"
	"fmt"
	"html/template"

	"loan-approval-simulator/internal/services/simulator"
)

const (
	svgWidth   = 750
	svgHeight  = 400
	plotLeft   = 70
	plotRight  = 730
	plotTop    = 50
	plotBottom = 340
	barWidth   = 120
)

var chartTemplate = template.Must(template.New("chart").Parse(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 {{.Width}} {{.Height}}" role="img" aria-label="Loan Approval Factors Contribution">
  <text x="{{.TitleX}}" y="28" text-anchor="middle" font-size="16" font-weight="bold" fill="currentColor">Loan Approval Factors Contribution</text>
  {{- range .Grid}}
  <line x1="{{$.Left}}" y1="{{.Y}}" x2="{{$.Right}}" y2="{{.Y}}" stroke="currentColor" stroke-opacity="0.4" stroke-dasharray="4 4"/>
  <text x="{{$.TickX}}" y="{{.Y}}" text-anchor="end" dominant-baseline="middle" font-size="11" fill="currentColor">{{.Label}}</text>
  {{- end}}
  <text transform="translate(18 {{.AxisMidY}}) rotate(-90)" text-anchor="middle" font-size="12" fill="currentColor">Normalized Score (0-1)</text>
  {{- range .Bars}}
  <rect x="{{.X}}" y="{{.Y}}" width="{{.Width}}" height="{{.Height}}" fill="{{.Color}}"/>
  <text x="{{.CenterX}}" y="{{.ValueY}}" text-anchor="middle" font-size="12" fill="currentColor">{{.Value}}</text>
  <text x="{{.CenterX}}" y="{{.LabelY}}" text-anchor="middle" font-size="12" fill="currentColor">{{.Label}}</text>
  {{- end}}
</svg>`))

type gridLine struct {
	Y     float64
	Label string
}

type svgBar struct {
	X, Y, Width, Height float64
	CenterX             float64
	ValueY, LabelY      float64
	Color               string
	Label, Value        string
}

type chartView struct {
	Width, Height int
	Left, Right   int
	TitleX        int
	TickX         int
	AxisMidY      int
	Grid          []gridLine
	Bars          []svgBar
}

// FactorChartSVG draws the factor bars as an inline SVG bar chart with a
// fixed 0-1 y axis.
func FactorChartSVG(bars []simulator.Bar) (template.HTML, error) {
	plotHeight := float64(plotBottom - plotTop)
	view := chartView{
		Width:    svgWidth,
		Height:   svgHeight,
		Left:     plotLeft,
		Right:    plotRight,
		TitleX:   svgWidth / 2,
		TickX:    plotLeft - 8,
		AxisMidY: (plotTop + plotBottom) / 2,
	}

	for i := 0; i <= 5; i++ {
		v := float64(i) / 5
		view.Grid = append(view.Grid, gridLine{
			Y:     plotBottom - v*plotHeight,
			Label: fmt.Sprintf("%.1f", v),
		})
	}

	if len(bars) > 0 {
		slot := float64(plotRight-plotLeft) / float64(len(bars))
		for i, b := range bars {
			h := clamp(b.Value) * plotHeight
			center := plotLeft + slot*(float64(i)+0.5)
			view.Bars = append(view.Bars, svgBar{
				X:       center - barWidth/2,
				Y:       plotBottom - h,
				Width:   barWidth,
				Height:  h,
				CenterX: center,
				ValueY:  plotBottom - h - 6,
				LabelY:  plotBottom + 20,
				Color:   b.Color,
				Label:   b.Label,
				Value:   fmt.Sprintf("%.2f", b.Value),
			})
		}
	}

	var buf bytes.Buffer
	if err := chartTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}
