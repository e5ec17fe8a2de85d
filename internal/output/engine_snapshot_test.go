package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
)

// TestEngineSnapshot produces a deterministic snapshot of core scenario metrics.
func TestEngineSnapshot(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	defer calculation.SetNowFunc(time.Now)

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../config/testdata/example_config.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	eng := calculation.NewCalculationEngine()
	res, err := eng.RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run scenarios: %v", err)
	}

	// Trim to stable summary fields only
	type scenario struct {
		Name         string   `json:"name"`
		FinalLiquid  string   `json:"final_liquid"`
		FinalFixed   string   `json:"final_fixed"`
		FinalTotal   string   `json:"final_total"`
		Probability  int      `json:"probability"`
		Shortfall    string   `json:"monthly_shortfall"`
		Required     string   `json:"required_monthly"`
		NegativeFrom *int     `json:"first_negative_liquid_year"`
		Totals       []string `json:"totals"`
	}
	var out struct {
		StartAge    int        `json:"start_age"`
		StartYear   int        `json:"start_year"`
		Recommended string     `json:"recommended"`
		Scenarios   []scenario `json:"scenarios"`
	}
	first := res.Scenarios[0].Projection[0]
	out.StartAge = first.Age
	out.StartYear = first.CalendarYear
	out.Recommended = res.Recommendation.ScenarioName
	for _, sc := range res.Scenarios {
		s := scenario{
			Name:         sc.Name,
			FinalLiquid:  sc.FinalLiquidBalance.StringFixed(2),
			FinalFixed:   sc.FinalFixedAssets.StringFixed(2),
			FinalTotal:   sc.FinalTotalAssets.StringFixed(2),
			Probability:  sc.Goal.Probability,
			Shortfall:    sc.Goal.MonthlyShortfallContribution.StringFixed(2),
			Required:     sc.RequiredMonthlyContribution.StringFixed(2),
			NegativeFrom: sc.FirstNegativeLiquidYear,
		}
		for _, yr := range sc.Projection {
			s.Totals = append(s.Totals, yr.TotalAssets.StringFixed(2))
		}
		out.Scenarios = append(out.Scenarios, s)
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
