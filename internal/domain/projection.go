package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProjectionInput is everything the projection engine needs for one run.
// Rates are percentages (5 means 5%).
type ProjectionInput struct {
	StartingBalance    decimal.Decimal `json:"starting_balance"`
	AnnualContribution decimal.Decimal `json:"annual_contribution"`
	AnnualReturnRate   decimal.Decimal `json:"annual_return_rate"`
	HorizonYears       int             `json:"horizon_years"`
	StartAge           int             `json:"start_age,omitempty"`  // label: record age = StartAge + year index
	StartYear          int             `json:"start_year,omitempty"` // label: calendar year of year index 0
	Events             []LifeEvent     `json:"events,omitempty"`
}

// Validate checks the input before a projection starts
func (in ProjectionInput) Validate() error {
	if in.HorizonYears < 0 || in.HorizonYears > MaxHorizonYears {
		return InvalidInputf("horizon years must be between 0 and %d, got %d", MaxHorizonYears, in.HorizonYears)
	}
	for i, ev := range in.Events {
		if err := ev.Validate(in.HorizonYears); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev.Name, err)
		}
	}
	return nil
}

// YearRecord is the state of the household at the end of one projected year
type YearRecord struct {
	YearIndex        int             `json:"year_index"`
	Age              int             `json:"age,omitempty"`
	CalendarYear     int             `json:"calendar_year,omitempty"`
	LiquidBalance    decimal.Decimal `json:"liquid_balance"`
	FixedAssetsValue decimal.Decimal `json:"fixed_assets_value"`
	TotalAssets      decimal.Decimal `json:"total_assets"`

	// Flows applied during the year
	InvestmentReturn decimal.Decimal `json:"investment_return"`
	Contribution     decimal.Decimal `json:"contribution"`
	EventCosts       decimal.Decimal `json:"event_costs"` // lump sums and down payments
	LoanPayments     decimal.Decimal `json:"loan_payments"`
	AssetIncome      decimal.Decimal `json:"asset_income"`
	Depreciation     decimal.Decimal `json:"depreciation"`
}

// NetCashFlow returns everything that moved the liquid balance this year
func (yr YearRecord) NetCashFlow() decimal.Decimal {
	return yr.InvestmentReturn.Add(yr.Contribution).Add(yr.AssetIncome).
		Sub(yr.EventCosts).Sub(yr.LoanPayments)
}

// GoalAssessment compares a projection's final year with a target asset level
type GoalAssessment struct {
	TargetAsset                  decimal.Decimal `json:"target_asset"`
	FinalTotalAssets             decimal.Decimal `json:"final_total_assets"`
	Gap                          decimal.Decimal `json:"gap"`
	Probability                  int             `json:"probability"` // 0-100
	MonthlyShortfallContribution decimal.Decimal `json:"monthly_shortfall_contribution"`
	OnTrack                      bool            `json:"on_track"`
}

// LoanSummary describes the repayment of a single loan
type LoanSummary struct {
	Principal      decimal.Decimal `json:"principal"`
	TermYears      int             `json:"term_years"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	AnnualPayment  decimal.Decimal `json:"annual_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// AmortizationYear is one year of a loan's amortization schedule
type AmortizationYear struct {
	Year             int             `json:"year"`
	Payment          decimal.Decimal `json:"payment"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ScenarioSummary provides the projection and key metrics for one scenario
type ScenarioSummary struct {
	Name                string          `json:"name"`
	AnnualReturnRate    decimal.Decimal `json:"annual_return_rate"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	Projection          []YearRecord    `json:"projection"`

	FinalLiquidBalance decimal.Decimal `json:"final_liquid_balance"`
	FinalFixedAssets   decimal.Decimal `json:"final_fixed_assets"`
	FinalTotalAssets   decimal.Decimal `json:"final_total_assets"`
	TotalLoanPayments  decimal.Decimal `json:"total_loan_payments"`

	// FirstNegativeLiquidYear is the first year index whose liquid balance is below zero
	FirstNegativeLiquidYear *int `json:"first_negative_liquid_year,omitempty"`

	Goal                        *GoalAssessment `json:"goal,omitempty"`
	RequiredMonthlyContribution decimal.Decimal `json:"required_monthly_contribution"`
}

// HasLiquidityShortfall reports whether the liquid balance ever drops below zero
func (s ScenarioSummary) HasLiquidityShortfall() bool {
	return s.FirstNegativeLiquidYear != nil
}

// Recommendation names the scenario most likely to reach the goal
type Recommendation struct {
	ScenarioName     string          `json:"scenario_name"`
	Probability      int             `json:"probability"`
	FinalTotalAssets decimal.Decimal `json:"final_total_assets"`
	Reason           string          `json:"reason"`
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	Household       string            `json:"household"`
	Unit            string            `json:"unit"`
	StartingBalance decimal.Decimal   `json:"starting_balance"`
	TargetAsset     decimal.Decimal   `json:"target_asset"`
	HorizonYears    int               `json:"horizon_years"`
	Scenarios       []ScenarioSummary `json:"scenarios"`
	Recommendation  Recommendation    `json:"recommendation"`
	Assumptions     []string          `json:"assumptions"`
}
