package output

import (
	"sort"

	"github.com/wealthpath/networth-projector/internal/domain"
)

// AnalyzeScenarios returns the comparison's recommendation. Comparisons decoded
// from elsewhere may lack one; the scenario with the highest final total
// assets is chosen then.
func AnalyzeScenarios(results *domain.ScenarioComparison) domain.Recommendation {
	if results.Recommendation.ScenarioName != "" || len(results.Scenarios) == 0 {
		return results.Recommendation
	}
	ranked := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalTotalAssets.GreaterThan(ranked[j].FinalTotalAssets)
	})
	best := ranked[0]
	rec := domain.Recommendation{
		ScenarioName:     best.Name,
		FinalTotalAssets: best.FinalTotalAssets,
		Reason:           "highest final total assets",
	}
	if best.Goal != nil {
		rec.Probability = best.Goal.Probability
	}
	return rec
}

// ScenarioRow is the flattened, display-ready view of one scenario
type ScenarioRow struct {
	Name             string
	ReturnRate       string
	Monthly          string
	FinalLiquid      string
	FinalFixed       string
	FinalTotal       string
	LoanPayments     string
	Probability      string
	Shortfall        string
	Required         string
	NegativeFromYear string
	Recommended      bool
}

// BuildScenarioRows formats every scenario in results for tabular output
func BuildScenarioRows(results *domain.ScenarioComparison) []ScenarioRow {
	unit := results.Unit
	rec := AnalyzeScenarios(results)
	rows := make([]ScenarioRow, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		row := ScenarioRow{
			Name:             sc.Name,
			ReturnRate:       FormatPercentage(sc.AnnualReturnRate),
			Monthly:          FormatAmount(sc.MonthlyContribution, unit),
			FinalLiquid:      FormatAmount(sc.FinalLiquidBalance, unit),
			FinalFixed:       FormatAmount(sc.FinalFixedAssets, unit),
			FinalTotal:       FormatAmount(sc.FinalTotalAssets, unit),
			LoanPayments:     FormatAmount(sc.TotalLoanPayments, unit),
			NegativeFromYear: optionalYear(sc.FirstNegativeLiquidYear),
			Recommended:      sc.Name == rec.ScenarioName,
		}
		if sc.Goal != nil {
			row.Probability = intToString(sc.Goal.Probability) + "%"
			row.Shortfall = FormatAmount(sc.Goal.MonthlyShortfallContribution, unit)
			row.Required = FormatAmount(sc.RequiredMonthlyContribution, unit)
		}
		rows = append(rows, row)
	}
	return rows
}
