package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultHorizonYears is the horizon used when a configuration omits one
	DefaultHorizonYears = 10
	// MaxHorizonYears bounds every projection horizon
	MaxHorizonYears = 100
	// MaxLoanTermYears bounds every loan term
	MaxLoanTermYears = 50
	// DefaultUnit is the display unit for amounts (ten-thousand yen)
	DefaultUnit = "万円"
)

// Configuration is the top-level input file: one household, its goal and the
// scenarios and life events to project.
type Configuration struct {
	Household   Household   `yaml:"household" json:"household"`
	Goal        Goal        `yaml:"goal" json:"goal"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	Scenarios   []Scenario  `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
	LifeEvents  []LifeEvent `yaml:"life_events,omitempty" json:"life_events,omitempty"`
}

// Household holds the current financial position
type Household struct {
	Name                string          `yaml:"name" json:"name"`
	StartingBalance     decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`

	// Age labelling: birth_date wins over start_age when both are given
	StartAge  int        `yaml:"start_age,omitempty" json:"start_age,omitempty"`
	BirthDate *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	// AsOf anchors year 0; defaults to today
	AsOf *time.Time `yaml:"as_of,omitempty" json:"as_of,omitempty"`
}

// Goal is the asset level the household wants to reach by the end of the horizon
type Goal struct {
	TargetAsset decimal.Decimal `yaml:"target_asset" json:"target_asset"`
}

// HasTarget reports whether a goal was configured
func (g Goal) HasTarget() bool { return g.TargetAsset.IsPositive() }

// Assumptions contains global parameters shared by every scenario
type Assumptions struct {
	HorizonYears int    `yaml:"horizon_years" json:"horizon_years"`
	Unit         string `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Scenario is one return-rate assumption, optionally with its own contribution level
type Scenario struct {
	Name                string           `yaml:"name" json:"name"`
	AnnualReturnRate    decimal.Decimal  `yaml:"annual_return_rate" json:"annual_return_rate"`
	MonthlyContribution *decimal.Decimal `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
}

// ContributionFor returns the scenario's monthly contribution, falling back to the household's
func (s Scenario) ContributionFor(h Household) decimal.Decimal {
	if s.MonthlyContribution != nil {
		return *s.MonthlyContribution
	}
	return h.MonthlyContribution
}

// DefaultScenarios are the conservative/standard/aggressive presets used when a
// configuration lists no scenarios.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "conservative", AnnualReturnRate: decimal.NewFromInt(3)},
		{Name: "standard", AnnualReturnRate: decimal.NewFromInt(5)},
		{Name: "aggressive", AnnualReturnRate: decimal.NewFromInt(7)},
	}
}

// EffectiveScenarios returns the configured scenarios or the presets
func (c *Configuration) EffectiveScenarios() []Scenario {
	if len(c.Scenarios) == 0 {
		return DefaultScenarios()
	}
	return c.Scenarios
}

// HorizonYears returns the configured horizon or the default
func (c *Configuration) HorizonYears() int {
	if c.Assumptions.HorizonYears == 0 {
		return DefaultHorizonYears
	}
	return c.Assumptions.HorizonYears
}

// Unit returns the display unit for amounts
func (c *Configuration) Unit() string {
	if c.Assumptions.Unit == "" {
		return DefaultUnit
	}
	return c.Assumptions.Unit
}
