package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/pkg/money"
)

// AssessGoal derives the goal metrics from a projection's final year:
//
//	gap         = target − final total assets
//	probability = min(100, round(final / target × 100)), floored at 0
//	shortfall   = ceil(gap / (horizonYears × 12)) when gap > 0, else 0
//
// A zero horizon spreads the gap over a single month.
func AssessGoal(target decimal.Decimal, records []domain.YearRecord, horizonYears int) (domain.GoalAssessment, error) {
	if !target.IsPositive() {
		return domain.GoalAssessment{}, domain.InvalidInputf("target asset must be positive")
	}
	if len(records) == 0 {
		return domain.GoalAssessment{}, domain.InvalidInputf("projection has no years")
	}
	if horizonYears < 0 {
		return domain.GoalAssessment{}, domain.InvalidInputf("horizon years cannot be negative, got %d", horizonYears)
	}

	final := records[len(records)-1].TotalAssets
	gap := target.Sub(final)

	probability := money.Percent(final.Div(target)).Round(0).IntPart()
	if probability > 100 {
		probability = 100
	}
	if probability < 0 {
		probability = 0
	}

	shortfall := decimal.Zero
	if gap.IsPositive() {
		months := int64(horizonYears) * 12
		if months == 0 {
			months = 1
		}
		shortfall = gap.Div(decimal.NewFromInt(months)).Ceil()
	}

	return domain.GoalAssessment{
		TargetAsset:                  target,
		FinalTotalAssets:             final,
		Gap:                          gap,
		Probability:                  int(probability),
		MonthlyShortfallContribution: shortfall,
		OnTrack:                      !gap.IsPositive(),
	}, nil
}

// RequiredMonthlyContribution finds the monthly contribution that makes the
// projection's final total assets equal target, taking investment growth on
// the extra contributions into account. It returns zero when the input already
// reaches the target.
//
// The final total is affine in the contribution (contributions only ever feed
// the liquid balance), so two projections pin it down exactly instead of a search.
func RequiredMonthlyContribution(input domain.ProjectionInput, target decimal.Decimal) (decimal.Decimal, error) {
	if !target.IsPositive() {
		return decimal.Zero, domain.InvalidInputf("target asset must be positive")
	}

	current, err := finalTotal(input)
	if err != nil {
		return decimal.Zero, err
	}
	if current.GreaterThanOrEqual(target) {
		return decimal.Zero, nil
	}

	// Final total with no contribution and with one unit per year
	base := input
	base.AnnualContribution = decimal.Zero
	atZero, err := finalTotal(base)
	if err != nil {
		return decimal.Zero, err
	}
	base.AnnualContribution = decimal.NewFromInt(1)
	atOne, err := finalTotal(base)
	if err != nil {
		return decimal.Zero, err
	}

	perUnit := atOne.Sub(atZero)
	if !perUnit.IsPositive() {
		// Only reachable with returns of -200% or below
		return decimal.Zero, domain.InvalidInputf("contributions cannot raise final assets at a %s%% return", input.AnnualReturnRate)
	}
	annual := target.Sub(atZero).Div(perUnit)
	return money.Max(decimal.Zero, money.Monthly(annual)), nil
}

func finalTotal(input domain.ProjectionInput) (decimal.Decimal, error) {
	records, err := Project(input)
	if err != nil {
		return decimal.Zero, err
	}
	return records[len(records)-1].TotalAssets, nil
}
