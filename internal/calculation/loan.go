package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/pkg/money"
)

var monthsPerYear = decimal.NewFromInt(12)

// interestPrecision bounds the scale of monthly interest so long schedules
// do not accumulate ever-growing decimal expansions.
const interestPrecision = 10

// monthlyRate converts an annual percentage rate to a monthly fraction
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return money.Rate(annualRatePercent).Div(monthsPerYear)
}

// MonthlyPayment calculates the fixed monthly annuity payment that repays
// principal over termYears at annualRatePercent:
//
//	P × r × (1+r)^n / ((1+r)^n − 1), r = rate/100/12, n = termYears×12
//
// With a zero rate the payment is P / n. A non-positive term or principal yields zero.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	if termYears <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termYears) * 12)
	r := monthlyRate(annualRatePercent)
	if r.IsZero() {
		return principal.Div(n)
	}
	growth := decimal.NewFromInt(1).Add(r).Pow(n)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// AnnualPayment is the yearly deduction for a loan: twelve monthly payments
func AnnualPayment(principal, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	return money.Annual(MonthlyPayment(principal, annualRatePercent, termYears))
}

// SummarizeLoan calculates the repayment totals for an event costing total financed with loan
func SummarizeLoan(loan domain.Loan, total decimal.Decimal) domain.LoanSummary {
	principal := loan.Principal(total)
	monthly := MonthlyPayment(principal, loan.AnnualInterestRate, loan.TermYears)
	annual := money.Annual(monthly)
	totalPayment := annual.Mul(decimal.NewFromInt(int64(loan.TermYears)))

	return domain.LoanSummary{
		Principal:      principal,
		TermYears:      loan.TermYears,
		MonthlyPayment: monthly,
		AnnualPayment:  annual,
		TotalPayment:   totalPayment,
		TotalInterest:  money.Max(decimal.Zero, totalPayment.Sub(principal)),
	}
}

// AmortizationSchedule simulates the loan month by month and aggregates it per year.
// Each month's interest is charged on the remaining balance; the final month
// retires whatever balance is left, so the principal portions sum to principal.
func AmortizationSchedule(principal, annualRatePercent decimal.Decimal, termYears int) []domain.AmortizationYear {
	if termYears <= 0 || !principal.IsPositive() {
		return nil
	}

	payment := MonthlyPayment(principal, annualRatePercent, termYears)
	r := monthlyRate(annualRatePercent)
	totalMonths := termYears * 12
	balance := principal
	schedule := make([]domain.AmortizationYear, 0, termYears)

	for year := 0; year < termYears; year++ {
		row := domain.AmortizationYear{Year: year}
		for m := 0; m < 12; m++ {
			interest := balance.Mul(r).Round(interestPrecision)
			principalPart := payment.Sub(interest)
			if year*12+m == totalMonths-1 || principalPart.GreaterThan(balance) {
				principalPart = balance
			}
			balance = balance.Sub(principalPart)
			row.Interest = row.Interest.Add(interest)
			row.Principal = row.Principal.Add(principalPart)
			row.Payment = row.Payment.Add(interest.Add(principalPart))
		}
		row.RemainingBalance = balance
		schedule = append(schedule, row)
	}
	return schedule
}
