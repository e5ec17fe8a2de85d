package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a summary table and a
// per-scenario total assets chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
	"pct":    FormatPercentage,
	"add":    func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is one scenario's total assets per year index, as floats for the chart
type chartSeries struct {
	Name   string    `json:"name"`
	Totals []float64 `json:"totals"`
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	series := make([]chartSeries, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		s := chartSeries{Name: sc.Name, Totals: make([]float64, 0, len(sc.Projection))}
		for _, yr := range sc.Projection {
			s.Totals = append(s.Totals, yr.TotalAssets.Round(2).InexactFloat64())
		}
		series = append(series, s)
	}

	data := struct {
		*domain.ScenarioComparison
		Rows           []ScenarioRow
		Recommendation domain.Recommendation
		Assumptions    []string
		Series         []chartSeries
		HasTarget      bool
		Target         decimal.Decimal
	}{
		ScenarioComparison: results,
		Rows:               BuildScenarioRows(results),
		Recommendation:     AnalyzeScenarios(results),
		Assumptions:        assumptionsFor(results.Assumptions),
		Series:             series,
		HasTarget:          results.TargetAsset.IsPositive(),
		Target:             results.TargetAsset,
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
