package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/networth-projector/internal/domain"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		term      int
		want      string
		tolerance string
	}{
		{"home loan example", "2700", "1.5", 30, "9.3182", "0.0001"},
		{"zero interest", "1200", "0", 10, "10", "0"},
		{"short high rate", "100", "12", 1, "8.8849", "0.0001"},
		{"zero principal", "0", "3", 10, "0", "0"},
		{"zero term", "1000", "3", 0, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(d(tt.principal), d(tt.rate), tt.term)
			assertNear(t, d(tt.want), got, d(tt.tolerance), "monthly payment")
		})
	}
}

func TestAnnualPayment_HomeLoan(t *testing.T) {
	annual := AnnualPayment(d("2700"), d("1.5"), 30)
	assertNear(t, d("111.8"), annual, d("0.05"), "annual payment")
	assert.True(t, annual.Equal(MonthlyPayment(d("2700"), d("1.5"), 30).Mul(decimal.NewFromInt(12))))
}

func TestMonthlyPayment_ZeroInterestRepaysPrincipal(t *testing.T) {
	for _, term := range []int{1, 3, 7, 35} {
		monthly := MonthlyPayment(d("1000"), decimal.Zero, term)
		total := monthly.Mul(decimal.NewFromInt(int64(term * 12)))
		assertNear(t, d("1000"), total, d("0.000001"), "total repaid")
	}
}

func TestSummarizeLoan(t *testing.T) {
	loan := domain.Loan{DownPayment: d("300"), TermYears: 30, AnnualInterestRate: d("1.5")}
	summary := SummarizeLoan(loan, d("3000"))

	assertDecimal(t, "2700", summary.Principal)
	assert.Equal(t, 30, summary.TermYears)
	assertNear(t, d("9.3182"), summary.MonthlyPayment, d("0.0001"), "monthly")
	assertNear(t, d("3354.57"), summary.TotalPayment, d("0.01"), "total")
	assertNear(t, d("654.57"), summary.TotalInterest, d("0.01"), "interest")
}

func TestSummarizeLoan_DownPaymentCoversCost(t *testing.T) {
	loan := domain.Loan{DownPayment: d("500"), TermYears: 10, AnnualInterestRate: d("2")}
	summary := SummarizeLoan(loan, d("400"))

	assert.True(t, summary.Principal.IsZero())
	assert.True(t, summary.MonthlyPayment.IsZero())
	assert.True(t, summary.TotalInterest.IsZero())
}

func TestAmortizationSchedule(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		term      int
	}{
		{"home loan", "2700", "1.5", 30},
		{"zero rate", "1000", "0", 5},
		{"high rate", "500", "9.5", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := AmortizationSchedule(d(tt.principal), d(tt.rate), tt.term)
			require.Len(t, schedule, tt.term)

			repaid := decimal.Zero
			previous := d(tt.principal)
			for i, row := range schedule {
				assert.Equal(t, i, row.Year)
				assert.True(t, row.RemainingBalance.LessThan(previous), "year %d balance did not fall", i)
				assert.False(t, row.Interest.IsNegative())
				repaid = repaid.Add(row.Principal)
				previous = row.RemainingBalance
			}
			assertDecimal(t, tt.principal, repaid, "principal portions must sum to the principal")
			assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero())
		})
	}
}

func TestAmortizationSchedule_PaymentsMatchAnnuity(t *testing.T) {
	schedule := AmortizationSchedule(d("2700"), d("1.5"), 30)
	annual := AnnualPayment(d("2700"), d("1.5"), 30)

	// Every full year pays twelve annuity payments; the last absorbs rounding
	for _, row := range schedule[:len(schedule)-1] {
		assertNear(t, annual, row.Payment, d("0.000001"), "yearly payment")
	}
	assertNear(t, annual, schedule[len(schedule)-1].Payment, d("0.001"), "final year payment")
}

func TestAmortizationSchedule_Degenerate(t *testing.T) {
	assert.Nil(t, AmortizationSchedule(decimal.Zero, d("2"), 10))
	assert.Nil(t, AmortizationSchedule(d("100"), d("2"), 0))
}
