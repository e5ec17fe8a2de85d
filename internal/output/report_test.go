package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	stddec "github.com/shopspring/decimal"

	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/internal/output"
)

func TestFormatters(t *testing.T) {
	if got := output.FormatAmount(stddec.NewFromFloat(123.456), "万円"); got != "123.46万円" {
		t.Fatalf("FormatAmount = %q", got)
	}
	if got := output.FormatPercentage(stddec.NewFromFloat(12.34)); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
}

func TestSaveConfiguration(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := output.SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	loaded, err := parser.LoadFromFile(path)
	if err != nil {
		t.Fatalf("reload saved configuration: %v", err)
	}
	if len(loaded.LifeEvents) != len(cfg.LifeEvents) {
		t.Fatalf("life events lost in round trip: %d != %d", len(loaded.LifeEvents), len(cfg.LifeEvents))
	}
}

func TestGenerateReport_WritesFiles(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) })
	defer calculation.SetNowFunc(time.Now)

	sc := &domain.ScenarioComparison{
		Unit: "万円",
		Scenarios: []domain.ScenarioSummary{
			{Name: "Baseline", FinalTotalAssets: stddec.NewFromInt(0)},
		},
	}
	dir := filepath.Join(t.TempDir(), "reports")

	files, err := output.GenerateReport(sc, "json", dir)
	if err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "networth_report_20250304_050607_json.json" {
		t.Fatalf("unexpected files: %v", files)
	}

	files, err = output.GenerateReport(sc, "csv-summary", dir)
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if !strings.HasSuffix(files[0], "_csv.csv") {
		t.Fatalf("unexpected csv file: %v", files)
	}
	if _, err := os.Stat(files[0]); err != nil {
		t.Fatalf("csv report missing: %v", err)
	}
}

func TestGenerateReport_All(t *testing.T) {
	sc := &domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{{Name: "Only"}}}

	files, err := output.GenerateReport(sc, "all", t.TempDir())
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("expected 4 reports, got %v", files)
	}
	exts := map[string]bool{}
	for _, f := range files {
		exts[filepath.Ext(f)] = true
	}
	for _, ext := range []string{".txt", ".json", ".csv", ".html"} {
		if !exts[ext] {
			t.Fatalf("missing %s report in %v", ext, files)
		}
	}
}
