package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/wealthpath/networth-projector/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report: assumptions,
// a year-by-year table per scenario and the recommendation.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	unit := results.Unit

	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintln(&buf, "NET WORTH PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	if results.Household != "" {
		fmt.Fprintf(&buf, "Household:        %s\n", results.Household)
	}
	fmt.Fprintf(&buf, "Starting balance: %s\n", FormatAmount(results.StartingBalance, unit))
	fmt.Fprintf(&buf, "Horizon:          %d years\n", results.HorizonYears)
	if results.TargetAsset.IsPositive() {
		fmt.Fprintf(&buf, "Target asset:     %s\n", FormatAmount(results.TargetAsset, unit))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s (%s return, %s per month)\n", i+1, sc.Name,
			FormatPercentage(sc.AnnualReturnRate), FormatAmount(sc.MonthlyContribution, unit))
		fmt.Fprintln(&buf, strings.Repeat("-", 96))
		writeYearTable(&buf, sc.Projection, unit)
		fmt.Fprintln(&buf)
		writeScenarioOutcome(&buf, sc, unit)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("=", 14))
		fmt.Fprintf(&buf, "%s: %s\n", rec.ScenarioName, rec.Reason)
	}
	return buf.Bytes(), nil
}

func writeYearTable(w io.Writer, projection []domain.YearRecord, unit string) {
	fmt.Fprintf(w, "%-6s %-6s %-4s %14s %14s %14s %12s %12s %12s\n",
		"Year", "Cal.", "Age", "Liquid", "Fixed", "Total", "Events", "Loans", "Income")
	for _, yr := range projection {
		calendar := ""
		if yr.CalendarYear > 0 {
			calendar = intToString(yr.CalendarYear)
		}
		age := ""
		if yr.Age > 0 {
			age = intToString(yr.Age)
		}
		marker := ""
		if yr.LiquidBalance.IsNegative() {
			marker = " !"
		}
		fmt.Fprintf(w, "%-6d %-6s %-4s %14s %14s %14s %12s %12s %12s%s\n",
			yr.YearIndex, calendar, age,
			FormatAmount(yr.LiquidBalance, unit),
			FormatAmount(yr.FixedAssetsValue, unit),
			FormatAmount(yr.TotalAssets, unit),
			FormatAmount(yr.EventCosts, unit),
			FormatAmount(yr.LoanPayments, unit),
			FormatAmount(yr.AssetIncome, unit),
			marker,
		)
	}
}

func writeScenarioOutcome(w io.Writer, sc domain.ScenarioSummary, unit string) {
	fmt.Fprintf(w, "Final total assets:   %s (liquid %s, fixed %s)\n",
		FormatAmount(sc.FinalTotalAssets, unit),
		FormatAmount(sc.FinalLiquidBalance, unit),
		FormatAmount(sc.FinalFixedAssets, unit))
	if sc.TotalLoanPayments.IsPositive() {
		fmt.Fprintf(w, "Loan payments:        %s\n", FormatAmount(sc.TotalLoanPayments, unit))
	}
	if sc.Goal != nil {
		fmt.Fprintf(w, "Goal probability:     %d%%\n", sc.Goal.Probability)
		if sc.Goal.OnTrack {
			fmt.Fprintln(w, "Status:               on track")
		} else {
			fmt.Fprintf(w, "Gap to target:        %s\n", FormatAmount(sc.Goal.Gap, unit))
			fmt.Fprintf(w, "Monthly shortfall:    %s\n", FormatAmount(sc.Goal.MonthlyShortfallContribution, unit))
			fmt.Fprintf(w, "Required per month:   %s\n", FormatAmount(sc.RequiredMonthlyContribution, unit))
		}
	}
	if sc.HasLiquidityShortfall() {
		fmt.Fprintf(w, "WARNING: liquid balance is negative from year %d\n", *sc.FirstNegativeLiquidYear)
	}
}
