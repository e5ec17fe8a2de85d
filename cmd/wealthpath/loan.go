package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/internal/output"
)

func newLoanCmd() *cobra.Command {
	var (
		total, down, rate, unit string
		term                    int
		schedule                bool
	)
	cmd := &cobra.Command{
		Use:     "loan",
		Short:   "Show the repayment of a loan-financed purchase",
		Example: `  wealthpath loan --total 3000 --down 300 --term 30 --rate 1.5 --schedule`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totalAmount, err := parseAmount("total", total)
			if err != nil {
				return err
			}
			downPayment, err := parseAmount("down", down)
			if err != nil {
				return err
			}
			interest, err := parseAmount("rate", rate)
			if err != nil {
				return err
			}
			loan := domain.Loan{DownPayment: downPayment, TermYears: term, AnnualInterestRate: interest}
			event := domain.LifeEvent{Name: "loan", TotalAmount: totalAmount, Payment: loan}
			if err := event.Validate(0); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			summary := calculation.SummarizeLoan(loan, totalAmount)
			fmt.Fprintf(w, "Principal:        %s\n", output.FormatAmount(summary.Principal, unit))
			fmt.Fprintf(w, "Term:             %d years\n", summary.TermYears)
			fmt.Fprintf(w, "Monthly payment:  %s\n", output.FormatAmount(summary.MonthlyPayment, unit))
			fmt.Fprintf(w, "Annual payment:   %s\n", output.FormatAmount(summary.AnnualPayment, unit))
			fmt.Fprintf(w, "Total payment:    %s\n", output.FormatAmount(summary.TotalPayment, unit))
			fmt.Fprintf(w, "Total interest:   %s\n", output.FormatAmount(summary.TotalInterest, unit))
			if !schedule {
				return nil
			}

			fmt.Fprintln(w)
			fmt.Fprintf(w, "%-6s %16s %16s %16s\n", "Year", "Interest", "Principal", "Balance")
			for _, yr := range calculation.AmortizationSchedule(summary.Principal, interest, term) {
				fmt.Fprintf(w, "%-6d %16s %16s %16s\n", yr.Year,
					output.FormatAmount(yr.Interest, unit),
					output.FormatAmount(yr.Principal, unit),
					output.FormatAmount(yr.RemainingBalance, unit))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&total, "total", "0", "total purchase amount")
	f.StringVar(&down, "down", "0", "down payment")
	f.StringVar(&rate, "rate", "0", "annual interest rate in percent")
	f.IntVar(&term, "term", 0, "loan term in years")
	f.StringVar(&unit, "unit", "", "currency unit appended to amounts")
	f.BoolVar(&schedule, "schedule", false, "print the yearly amortization schedule")
	return cmd
}
