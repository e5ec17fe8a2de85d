package calculation

import (
	"fmt"
	"sort"

	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/pkg/money"
)

// recommend picks the scenario with the highest goal probability, breaking
// ties by final total assets. Without a goal only final assets count.
func (ce *CalculationEngine) recommend(scenarios []domain.ScenarioSummary, hasGoal bool) domain.Recommendation {
	if len(scenarios) == 0 {
		return domain.Recommendation{}
	}

	ranked := append([]domain.ScenarioSummary(nil), scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if hasGoal && ranked[i].Goal != nil && ranked[j].Goal != nil &&
			ranked[i].Goal.Probability != ranked[j].Goal.Probability {
			return ranked[i].Goal.Probability > ranked[j].Goal.Probability
		}
		return ranked[i].FinalTotalAssets.GreaterThan(ranked[j].FinalTotalAssets)
	})

	best := ranked[0]
	rec := domain.Recommendation{
		ScenarioName:     best.Name,
		FinalTotalAssets: best.FinalTotalAssets,
	}
	switch {
	case best.Goal == nil:
		rec.Reason = "highest final total assets"
	case best.Goal.OnTrack:
		rec.Probability = best.Goal.Probability
		rec.Reason = "reaches the target asset"
	default:
		rec.Probability = best.Goal.Probability
		rec.Reason = fmt.Sprintf("closest to the target; %s more per month needed",
			best.RequiredMonthlyContribution.Sub(best.MonthlyContribution).Ceil())
	}
	if best.HasLiquidityShortfall() {
		rec.Reason += fmt.Sprintf(" (liquid balance negative from year %d)", *best.FirstNegativeLiquidYear)
	}
	return rec
}

// GenerateAssumptions creates the assumptions list rendered in reports from the configuration
func GenerateAssumptions(config *domain.Configuration) []string {
	unit := config.Unit()
	assumptions := []string{
		fmt.Sprintf("Horizon: %d years; year 0 already includes one year of returns and contributions", config.HorizonYears()),
		"Returns apply to the liquid balance only; fixed assets never grow",
		"Loans: fixed monthly annuity payment, deducted yearly from the purchase year for the full term",
		"Depreciation: percentage of the asset's current value each year, floored at zero",
	}
	for _, sc := range config.EffectiveScenarios() {
		assumptions = append(assumptions, fmt.Sprintf("Scenario %s: %s%% annual return, %s per month",
			sc.Name, sc.AnnualReturnRate.String(), money.Format(sc.ContributionFor(config.Household), unit)))
	}
	if config.Goal.HasTarget() {
		assumptions = append(assumptions, fmt.Sprintf("Target asset: %s", money.Format(config.Goal.TargetAsset, unit)))
	}
	return assumptions
}
