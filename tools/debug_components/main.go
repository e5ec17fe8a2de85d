package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
)

// debug_components prints every scenario's yearly cash flow components side by
// side, one row per year index, for eyeballing where scenarios diverge.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_components <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calculation.NewCalculationEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Every scenario shares the horizon, but guard against hand-built inputs
	minLen := -1
	for _, s := range res.Scenarios {
		if minLen == -1 || len(s.Projection) < minLen {
			minLen = len(s.Projection)
		}
	}
	if minLen <= 0 {
		fmt.Println("no projection data")
		return
	}

	header := "Index,Year,Age"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Return,S%d_Events,S%d_Loans,S%d_Income,S%d_Liquid,S%d_Fixed", i+1, i+1, i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	for idx := 0; idx < minLen; idx++ {
		first := res.Scenarios[0].Projection[idx]
		row := fmt.Sprintf("%d,%d,%d", idx, first.CalendarYear, first.Age)
		for sidx := range res.Scenarios {
			yr := res.Scenarios[sidx].Projection[idx]
			row += fmt.Sprintf(",%s,%s,%s,%s,%s,%s", yr.InvestmentReturn.StringFixed(2), yr.EventCosts.StringFixed(2),
				yr.LoanPayments.StringFixed(2), yr.AssetIncome.StringFixed(2), yr.LiquidBalance.StringFixed(2), yr.FixedAssetsValue.StringFixed(2))
		}
		fmt.Println(row)
	}

	fmt.Println()
	for i, s := range res.Scenarios {
		neg := "never"
		if s.FirstNegativeLiquidYear != nil {
			neg = fmt.Sprintf("year %d", *s.FirstNegativeLiquidYear)
		}
		fmt.Printf("S%d=%s: final total %s, loans %s, liquid negative %s\n", i+1, s.Name,
			s.FinalTotalAssets.StringFixed(2), s.TotalLoanPayments.StringFixed(2), neg)
	}
}
