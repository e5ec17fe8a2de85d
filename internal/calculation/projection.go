package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/pkg/money"
)

// scheduledLoan is a loan event with its yearly deduction precomputed
type scheduledLoan struct {
	startYear     int
	loan          domain.Loan
	annualPayment decimal.Decimal
}

// trackedAsset is a fixed asset registered by a capital event
type trackedAsset struct {
	asset domain.FixedAsset
	value decimal.Decimal
}

// Project runs the year-by-year net worth projection for a single input.
//
// It returns HorizonYears+1 records (year indexes 0..HorizonYears). Within a
// year the order is fixed: investment return, contribution, then event
// effects (lump sums and down payments, loan payments, depreciation and asset
// income). Year 0 already includes one year of growth and contribution.
//
// Project is pure: it keeps all state local, so concurrent calls never
// interfere. It fails only with domain.ErrInvalidInput.
func Project(input domain.ProjectionInput) ([]domain.YearRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	returnRate := money.Rate(input.AnnualReturnRate)

	var loans []scheduledLoan
	for _, ev := range input.Events {
		if loan, ok := ev.Loan(); ok {
			loans = append(loans, scheduledLoan{
				startYear:     ev.YearOffset,
				loan:          loan,
				annualPayment: AnnualPayment(loan.Principal(ev.TotalAmount), loan.AnnualInterestRate, loan.TermYears),
			})
		}
	}

	liquid := input.StartingBalance
	var assets []trackedAsset
	records := make([]domain.YearRecord, 0, input.HorizonYears+1)

	for year := 0; year <= input.HorizonYears; year++ {
		rec := domain.YearRecord{YearIndex: year, Age: input.StartAge + year}
		if input.StartYear > 0 {
			rec.CalendarYear = input.StartYear + year
		}

		// Growth and contribution come first
		rec.InvestmentReturn = liquid.Mul(returnRate)
		liquid = liquid.Add(rec.InvestmentReturn)
		rec.Contribution = input.AnnualContribution
		liquid = liquid.Add(rec.Contribution)

		// Events starting this year
		for _, ev := range input.Events {
			if ev.YearOffset != year {
				continue
			}
			switch p := ev.Payment.(type) {
			case domain.LumpSum:
				rec.EventCosts = rec.EventCosts.Add(ev.TotalAmount)
			case domain.Loan:
				rec.EventCosts = rec.EventCosts.Add(p.DownPayment)
			}
			if ev.Asset != nil {
				assets = append(assets, trackedAsset{asset: *ev.Asset, value: ev.Asset.InitialValue})
			}
		}
		liquid = liquid.Sub(rec.EventCosts)

		// Loan repayments, including the origination year
		for _, l := range loans {
			if l.loan.ActiveIn(l.startYear, year) {
				rec.LoanPayments = rec.LoanPayments.Add(l.annualPayment)
			}
		}
		liquid = liquid.Sub(rec.LoanPayments)

		// Fixed assets: every registered asset has started by now
		fixed := decimal.Zero
		for i := range assets {
			a := &assets[i]
			if a.asset.Depreciation.Enabled {
				before := a.value
				a.value = money.Max(decimal.Zero, a.value.Sub(a.value.Mul(money.Rate(a.asset.Depreciation.AnnualRatePercent))))
				rec.Depreciation = rec.Depreciation.Add(before.Sub(a.value))
			}
			if a.asset.Income.Enabled {
				rec.AssetIncome = rec.AssetIncome.Add(a.asset.Income.AnnualAmount)
			}
			fixed = fixed.Add(a.value)
		}
		liquid = liquid.Add(rec.AssetIncome)

		rec.LiquidBalance = liquid
		rec.FixedAssetsValue = fixed
		rec.TotalAssets = liquid.Add(fixed)
		records = append(records, rec)
	}

	return records, nil
}
