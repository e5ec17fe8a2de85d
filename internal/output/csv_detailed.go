package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wealthpath/networth-projector/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "YearIndex", "CalendarYear", "Age",
		"InvestmentReturn", "Contribution", "EventCosts", "LoanPayments", "AssetIncome", "Depreciation",
		"NetCashFlow", "LiquidBalance", "FixedAssetsValue", "TotalAssets", "LiquidNegative",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, yr := range sc.Projection {
			row := []string{
				sc.Name,
				intToString(yr.YearIndex),
				intToString(yr.CalendarYear),
				intToString(yr.Age),
				yr.InvestmentReturn.StringFixed(2),
				yr.Contribution.StringFixed(2),
				yr.EventCosts.StringFixed(2),
				yr.LoanPayments.StringFixed(2),
				yr.AssetIncome.StringFixed(2),
				yr.Depreciation.StringFixed(2),
				yr.NetCashFlow().StringFixed(2),
				yr.LiquidBalance.StringFixed(2),
				yr.FixedAssetsValue.StringFixed(2),
				yr.TotalAssets.StringFixed(2),
				boolToString(yr.LiquidBalance.IsNegative()),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
