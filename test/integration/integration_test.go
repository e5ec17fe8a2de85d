package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
)

const exampleConfig = "../../internal/config/testdata/example_config.yaml"

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 3)

	engine := calculation.NewCalculationEngine()
	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 3)

	assert.Equal(t, "Sato household", results.Household)
	assert.NotEmpty(t, results.Recommendation.ScenarioName)
	assert.NotEmpty(t, results.Assumptions)

	for _, sc := range results.Scenarios {
		assert.Len(t, sc.Projection, cfg.HorizonYears()+1, sc.Name)
		assert.True(t, sc.TotalLoanPayments.IsPositive(), "%s: the home loan is repaid", sc.Name)
		require.NotNil(t, sc.Goal, sc.Name)
		assert.True(t, sc.Goal.Probability >= 0 && sc.Goal.Probability <= 100, sc.Name)

		for _, yr := range sc.Projection {
			assert.True(t, yr.TotalAssets.Equal(yr.LiquidBalance.Add(yr.FixedAssetsValue)),
				"%s year %d: total = liquid + fixed", sc.Name, yr.YearIndex)
			assert.False(t, yr.FixedAssetsValue.IsNegative())
		}
	}
}

func TestHigherReturnsNeverReduceWealth(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfig)
	require.NoError(t, err)

	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	// conservative and standard share contributions; only the rate differs
	conservative, standard := results.Scenarios[0], results.Scenarios[1]
	require.True(t, conservative.AnnualReturnRate.LessThan(standard.AnnualReturnRate))
	assert.True(t, conservative.FinalFixedAssets.Equal(standard.FinalFixedAssets))
	assert.True(t, conservative.TotalLoanPayments.Equal(standard.TotalLoanPayments))
}

func TestRequiredContributionReachesTarget(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfig)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	for _, scenario := range cfg.Scenarios {
		input := engine.BuildInput(cfg, scenario)
		required, err := calculation.RequiredMonthlyContribution(input, cfg.Goal.TargetAsset)
		require.NoError(t, err)

		input.AnnualContribution = required.Mul(decimal.NewFromInt(12))
		records, err := calculation.Project(input)
		require.NoError(t, err)
		final := records[len(records)-1].TotalAssets
		assert.True(t, final.Sub(cfg.Goal.TargetAsset).Abs().LessThan(decimal.RequireFromString("0.0001")),
			"%s: final %s", scenario.Name, final)
	}
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	example := parser.CreateExampleConfiguration()
	assert.NoError(t, parser.ValidateConfiguration(example))
}
