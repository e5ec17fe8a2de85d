package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wealthpath/networth-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
// Rows keep the comparison's scenario order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "AnnualReturnRate", "MonthlyContribution",
		"FinalLiquidBalance", "FinalFixedAssets", "FinalTotalAssets", "TotalLoanPayments",
		"TargetAsset", "Probability", "MonthlyShortfall", "RequiredMonthlyContribution",
		"FirstNegativeLiquidYear", "Recommended",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	rec := AnalyzeScenarios(results)
	for _, sc := range results.Scenarios {
		target, probability, shortfall := "", "", ""
		if sc.Goal != nil {
			target = sc.Goal.TargetAsset.StringFixed(2)
			probability = intToString(sc.Goal.Probability)
			shortfall = sc.Goal.MonthlyShortfallContribution.StringFixed(2)
		}
		row := []string{
			sc.Name,
			sc.AnnualReturnRate.String(),
			sc.MonthlyContribution.StringFixed(2),
			sc.FinalLiquidBalance.StringFixed(2),
			sc.FinalFixedAssets.StringFixed(2),
			sc.FinalTotalAssets.StringFixed(2),
			sc.TotalLoanPayments.StringFixed(2),
			target,
			probability,
			shortfall,
			sc.RequiredMonthlyContribution.StringFixed(2),
			optionalYear(sc.FirstNegativeLiquidYear),
			boolToString(sc.Name == rec.ScenarioName),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
