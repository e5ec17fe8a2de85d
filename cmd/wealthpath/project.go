package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/internal/output"
	"github.com/wealthpath/networth-projector/pkg/money"
)

type projectOptions struct {
	startingBalance     string
	monthlyContribution string
	returnRate          string
	target              string
	horizon             int
	startAge            int
	startYear           int
	unit                string
}

func newProjectCmd(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single balance without life events",
		Example: `  wealthpath project --balance 500 --monthly 5 --rate 5 --target 2000
  wealthpath project --balance 1000 --rate 3 --horizon 20 --start-age 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, target, err := opts.input()
			if err != nil {
				return err
			}
			engine := root.engine(cmd)
			records, goal, err := engine.ProjectSingle(input, target)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printRecords(w, records, opts.unit)
			if goal == nil {
				return nil
			}
			required, err := calculation.RequiredMonthlyContribution(input, target)
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Target asset:         %s\n", output.FormatAmount(goal.TargetAsset, opts.unit))
			fmt.Fprintf(w, "Probability:          %d%%\n", goal.Probability)
			fmt.Fprintf(w, "Monthly shortfall:    %s\n", output.FormatAmount(goal.MonthlyShortfallContribution, opts.unit))
			fmt.Fprintf(w, "Required per month:   %s\n", output.FormatAmount(required, opts.unit))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.startingBalance, "balance", "0", "starting liquid balance")
	f.StringVar(&opts.monthlyContribution, "monthly", "0", "monthly contribution")
	f.StringVar(&opts.returnRate, "rate", "0", "annual return rate in percent")
	f.StringVar(&opts.target, "target", "0", "target total assets; 0 skips the goal assessment")
	f.IntVar(&opts.horizon, "horizon", domain.DefaultHorizonYears, "projection horizon in years")
	f.IntVar(&opts.startAge, "start-age", 0, "age at year 0, used as a label")
	f.IntVar(&opts.startYear, "start-year", 0, "calendar year of year 0, used as a label")
	f.StringVar(&opts.unit, "unit", "", "currency unit appended to amounts")
	return cmd
}

func (o *projectOptions) input() (domain.ProjectionInput, decimal.Decimal, error) {
	balance, err := parseAmount("balance", o.startingBalance)
	if err != nil {
		return domain.ProjectionInput{}, decimal.Zero, err
	}
	monthly, err := parseAmount("monthly", o.monthlyContribution)
	if err != nil {
		return domain.ProjectionInput{}, decimal.Zero, err
	}
	rate, err := parseAmount("rate", o.returnRate)
	if err != nil {
		return domain.ProjectionInput{}, decimal.Zero, err
	}
	target, err := parseAmount("target", o.target)
	if err != nil {
		return domain.ProjectionInput{}, decimal.Zero, err
	}
	if monthly.IsNegative() {
		return domain.ProjectionInput{}, decimal.Zero, domain.InvalidInputf("--monthly cannot be negative")
	}
	if target.IsNegative() {
		return domain.ProjectionInput{}, decimal.Zero, domain.InvalidInputf("--target cannot be negative")
	}
	return domain.ProjectionInput{
		StartingBalance:    balance,
		AnnualContribution: money.Annual(monthly),
		AnnualReturnRate:   rate,
		HorizonYears:       o.horizon,
		StartAge:           o.startAge,
		StartYear:          o.startYear,
	}, target, nil
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domain.InvalidInputf("--%s: %q is not a number", flag, value)
	}
	return d, nil
}

func printRecords(w io.Writer, records []domain.YearRecord, unit string) {
	fmt.Fprintf(w, "%-6s %-6s %-6s %16s %16s %16s\n", "Year", "Age", "Cal", "Liquid", "Fixed", "Total")
	for _, yr := range records {
		fmt.Fprintf(w, "%-6d %-6s %-6s %16s %16s %16s\n",
			yr.YearIndex, label(yr.Age), label(yr.CalendarYear),
			output.FormatAmount(yr.LiquidBalance, unit),
			output.FormatAmount(yr.FixedAssetsValue, unit),
			output.FormatAmount(yr.TotalAssets, unit))
	}
}

func label(v int) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}
