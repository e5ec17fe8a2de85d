package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/internal/domain"
	"gopkg.in/yaml.v3"
)

const maxStartAge = 120

var (
	minReturnRate = decimal.NewFromInt(-100)
	maxReturnRate = decimal.NewFromInt(100)
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document. JSON is valid YAML,
// so both formats are accepted.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Every failure
// wraps domain.ErrInvalidInput.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}

	if config.Goal.TargetAsset.IsNegative() {
		return domain.InvalidInputf("goal target asset cannot be negative")
	}

	if config.Assumptions.HorizonYears < 0 || config.Assumptions.HorizonYears > domain.MaxHorizonYears {
		return domain.InvalidInputf("horizon years must be between 0 and %d", domain.MaxHorizonYears)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return domain.InvalidInputf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	horizon := config.HorizonYears()
	for i, event := range config.LifeEvents {
		if event.Name == "" {
			return domain.InvalidInputf("life event %d: name is required", i)
		}
		if err := event.Validate(horizon); err != nil {
			return fmt.Errorf("life event %d (%s) validation failed: %w", i, event.Name, err)
		}
	}

	return nil
}

// validateHousehold validates the household's current position
func (ip *InputParser) validateHousehold(household *domain.Household) error {
	if household.MonthlyContribution.IsNegative() {
		return domain.InvalidInputf("monthly contribution cannot be negative")
	}
	if household.StartAge < 0 || household.StartAge > maxStartAge {
		return domain.InvalidInputf("start age must be between 0 and %d", maxStartAge)
	}
	if household.BirthDate != nil && household.AsOf != nil && household.BirthDate.After(*household.AsOf) {
		return domain.InvalidInputf("birth date cannot be after the as-of date")
	}
	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return domain.InvalidInputf("scenario name is required")
	}
	if scenario.AnnualReturnRate.LessThan(minReturnRate) || scenario.AnnualReturnRate.GreaterThan(maxReturnRate) {
		return domain.InvalidInputf("annual return rate must be between -100%% and 100%%")
	}
	if scenario.MonthlyContribution != nil && scenario.MonthlyContribution.IsNegative() {
		return domain.InvalidInputf("monthly contribution cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	birthDate, _ := time.Parse("2006-01-02", "1990-06-15")
	aggressiveContribution := decimal.NewFromInt(8)

	return &domain.Configuration{
		Household: domain.Household{
			Name:                "Example household",
			StartingBalance:     decimal.NewFromInt(500),
			MonthlyContribution: decimal.NewFromInt(5),
			BirthDate:           &birthDate,
		},
		Goal: domain.Goal{
			TargetAsset: decimal.NewFromInt(2000),
		},
		Assumptions: domain.Assumptions{
			HorizonYears: domain.DefaultHorizonYears,
			Unit:         domain.DefaultUnit,
		},
		Scenarios: []domain.Scenario{
			{Name: "conservative", AnnualReturnRate: decimal.NewFromInt(3)},
			{Name: "standard", AnnualReturnRate: decimal.NewFromInt(5)},
			{Name: "aggressive", AnnualReturnRate: decimal.NewFromInt(7), MonthlyContribution: &aggressiveContribution},
		},
		LifeEvents: []domain.LifeEvent{
			{
				Name:        "Home purchase",
				Category:    "housing",
				YearOffset:  3,
				TotalAmount: decimal.NewFromInt(3000),
				Payment: domain.Loan{
					DownPayment:        decimal.NewFromInt(300),
					TermYears:          30,
					AnnualInterestRate: decimal.NewFromFloat(1.5),
				},
				Asset: &domain.FixedAsset{
					InitialValue: decimal.NewFromInt(3000),
					Depreciation: domain.Depreciation{Enabled: true, AnnualRatePercent: decimal.NewFromFloat(1.5)},
				},
			},
			{
				Name:        "Rental apartment",
				Category:    "investment",
				YearOffset:  6,
				TotalAmount: decimal.NewFromInt(800),
				Payment:     domain.LumpSum{},
				Asset: &domain.FixedAsset{
					InitialValue: decimal.NewFromInt(800),
					Depreciation: domain.Depreciation{Enabled: true, AnnualRatePercent: decimal.NewFromInt(2)},
					Income:       domain.AssetIncome{Enabled: true, AnnualAmount: decimal.NewFromInt(48)},
				},
			},
		},
	}
}
