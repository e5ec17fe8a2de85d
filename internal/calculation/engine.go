package calculation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/pkg/dateutil"
	"github.com/wealthpath/networth-projector/pkg/money"
	"golang.org/x/sync/errgroup"
)

// CalculationEngine orchestrates scenario projections for a configuration
type CalculationEngine struct {
	Debug       bool // Enable debug output for per-year breakdowns
	Concurrency int  // Maximum scenarios projected at once; <= 0 means GOMAXPROCS
	Logger      Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// BuildInput turns the household, a scenario and the configured life events
// into a projection input. Monthly figures are annualized; the start age comes
// from the birth date when one is given.
func (ce *CalculationEngine) BuildInput(config *domain.Configuration, scenario domain.Scenario) domain.ProjectionInput {
	asOf := nowFunc()
	if config.Household.AsOf != nil {
		asOf = *config.Household.AsOf
	}

	startAge := config.Household.StartAge
	if config.Household.BirthDate != nil {
		startAge = dateutil.Age(*config.Household.BirthDate, asOf)
	}

	return domain.ProjectionInput{
		StartingBalance:    config.Household.StartingBalance,
		AnnualContribution: money.Annual(scenario.ContributionFor(config.Household)),
		AnnualReturnRate:   scenario.AnnualReturnRate,
		HorizonYears:       config.HorizonYears(),
		StartAge:           startAge,
		StartYear:          dateutil.ProjectionYear(asOf, 0),
		Events:             config.LifeEvents,
	}
}

// RunScenario projects a single scenario and summarizes it
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input := ce.BuildInput(config, scenario)
	projection, err := Project(input)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	final := projection[len(projection)-1]
	summary := &domain.ScenarioSummary{
		Name:                scenario.Name,
		AnnualReturnRate:    scenario.AnnualReturnRate,
		MonthlyContribution: scenario.ContributionFor(config.Household),
		Projection:          projection,
		FinalLiquidBalance:  final.LiquidBalance,
		FinalFixedAssets:    final.FixedAssetsValue,
		FinalTotalAssets:    final.TotalAssets,
	}

	for _, yr := range projection {
		summary.TotalLoanPayments = summary.TotalLoanPayments.Add(yr.LoanPayments)
		if summary.FirstNegativeLiquidYear == nil && yr.LiquidBalance.IsNegative() {
			year := yr.YearIndex
			summary.FirstNegativeLiquidYear = &year
		}
	}

	if config.Goal.HasTarget() {
		goal, err := AssessGoal(config.Goal.TargetAsset, projection, input.HorizonYears)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		summary.Goal = &goal

		required, err := RequiredMonthlyContribution(input, config.Goal.TargetAsset)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		summary.RequiredMonthlyContribution = required
	}

	if summary.HasLiquidityShortfall() {
		ce.logger().Warnf("scenario %q: liquid balance goes negative in year %d", scenario.Name, *summary.FirstNegativeLiquidYear)
	}
	if ce.Debug {
		ce.logProjection(scenario.Name, projection, config.Unit())
	}

	return summary, nil
}

// RunScenarios runs all scenarios concurrently and returns a comparison.
// Scenario results keep the configuration's order.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := config.EffectiveScenarios()
	summaries := make([]domain.ScenarioSummary, len(scenarios))

	limit := ce.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, scenario := range scenarios {
		g.Go(func() error {
			summary, err := ce.RunScenario(gctx, config, scenario)
			if err != nil {
				return fmt.Errorf("RunScenario failed: %w", err)
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparison := &domain.ScenarioComparison{
		Household:       config.Household.Name,
		Unit:            config.Unit(),
		StartingBalance: config.Household.StartingBalance,
		TargetAsset:     config.Goal.TargetAsset,
		HorizonYears:    config.HorizonYears(),
		Scenarios:       summaries,
		Assumptions:     GenerateAssumptions(config),
	}
	comparison.Recommendation = ce.recommend(summaries, config.Goal.HasTarget())

	ce.logger().Infof("projected %d scenarios over %d years; recommended %q",
		len(summaries), comparison.HorizonYears, comparison.Recommendation.ScenarioName)
	return comparison, nil
}

func (ce *CalculationEngine) logProjection(name string, projection []domain.YearRecord, unit string) {
	l := ce.logger()
	l.Debugf("PROJECTION: %s", name)
	for _, yr := range projection {
		l.Debugf("  year %2d  return=%s contribution=%s events=%s loans=%s income=%s depreciation=%s",
			yr.YearIndex,
			money.Format(yr.InvestmentReturn, unit),
			money.Format(yr.Contribution, unit),
			money.Format(yr.EventCosts, unit),
			money.Format(yr.LoanPayments, unit),
			money.Format(yr.AssetIncome, unit),
			money.Format(yr.Depreciation, unit),
		)
		l.Debugf("           liquid=%s fixed=%s total=%s",
			money.Format(yr.LiquidBalance, unit),
			money.Format(yr.FixedAssetsValue, unit),
			money.Format(yr.TotalAssets, unit),
		)
	}
}

// ProjectSingle is the single-input entry point used by the CLI and API: it
// projects input and, when target is positive, assesses the goal.
func (ce *CalculationEngine) ProjectSingle(input domain.ProjectionInput, target decimal.Decimal) ([]domain.YearRecord, *domain.GoalAssessment, error) {
	projection, err := Project(input)
	if err != nil {
		return nil, nil, err
	}
	if ce.Debug {
		ce.logProjection("single", projection, "")
	}
	if !target.IsPositive() {
		return projection, nil, nil
	}
	goal, err := AssessGoal(target, projection, input.HorizonYears)
	if err != nil {
		return nil, nil, err
	}
	return projection, &goal, nil
}
