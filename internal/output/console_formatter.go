package output

import (
	"bytes"
	"fmt"

	"github.com/wealthpath/networth-projector/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "NET WORTH SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Starting balance: %s over %d years\n", FormatAmount(results.StartingBalance, results.Unit), results.HorizonYears)
	fmt.Fprintln(&buf)
	for _, row := range BuildScenarioRows(results) {
		fmt.Fprintf(&buf, "%s (%s, %s/month): Total=%s Liquid=%s Fixed=%s\n",
			row.Name, row.ReturnRate, row.Monthly, row.FinalTotal, row.FinalLiquid, row.FinalFixed)
		if row.Probability != "" {
			fmt.Fprintf(&buf, "  Probability=%s Shortfall=%s/month Required=%s/month\n", row.Probability, row.Shortfall, row.Required)
		}
		if row.NegativeFromYear != "" {
			fmt.Fprintf(&buf, "  Liquid balance negative from year %s\n", row.NegativeFromYear)
		}
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s)\n", rec.ScenarioName, rec.Reason)
	}
	return buf.Bytes(), nil
}
