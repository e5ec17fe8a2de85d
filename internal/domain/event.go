package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/networth-projector/pkg/money"
	"gopkg.in/yaml.v3"
)

// PaymentKind names a payment mode on the wire
type PaymentKind string

const (
	PaymentLumpSum PaymentKind = "lump_sum"
	PaymentLoan    PaymentKind = "loan"
)

// PaymentMode describes how a life event's cost leaves the liquid balance.
// It is either LumpSum or Loan.
type PaymentMode interface {
	Kind() PaymentKind
	isPaymentMode()
}

// LumpSum pays the event's total amount in the event year.
type LumpSum struct{}

func (LumpSum) Kind() PaymentKind { return PaymentLumpSum }
func (LumpSum) isPaymentMode()    {}

// Loan pays a down payment in the event year and finances the rest with an
// amortized loan repaid yearly for TermYears, starting in the event year.
type Loan struct {
	DownPayment        decimal.Decimal
	TermYears          int
	AnnualInterestRate decimal.Decimal // percent, e.g. 1.5
}

func (Loan) Kind() PaymentKind { return PaymentLoan }
func (Loan) isPaymentMode()    {}

// Principal returns the financed amount for an event costing total, floored at zero.
func (l Loan) Principal(total decimal.Decimal) decimal.Decimal {
	return money.Max(decimal.Zero, total.Sub(l.DownPayment))
}

// ActiveIn reports whether a loan originated in startYear is being repaid in year.
func (l Loan) ActiveIn(startYear, year int) bool {
	return year >= startYear && year < startYear+l.TermYears
}

// Depreciation reduces a fixed asset's value by a percentage of its current value each year
type Depreciation struct {
	Enabled           bool
	AnnualRatePercent decimal.Decimal
}

// AssetIncome adds a fixed amount (e.g. rent) to the liquid balance each year
type AssetIncome struct {
	Enabled      bool
	AnnualAmount decimal.Decimal
}

// FixedAsset is a non-cash asset created by a capital life event.
// It is tracked outside the liquid balance and never grows with returns.
type FixedAsset struct {
	InitialValue decimal.Decimal
	Depreciation Depreciation
	Income       AssetIncome
}

// LifeEvent is a one-time cash event anchored to a year offset from year 0.
type LifeEvent struct {
	Name        string
	Category    string
	YearOffset  int
	TotalAmount decimal.Decimal
	Payment     PaymentMode
	Asset       *FixedAsset // nil unless the event creates a capital asset
}

// IsCapitalAsset reports whether the event registers a fixed asset
func (e LifeEvent) IsCapitalAsset() bool { return e.Asset != nil }

// Loan returns the event's loan terms when it is loan-financed
func (e LifeEvent) Loan() (Loan, bool) {
	l, ok := e.Payment.(Loan)
	return l, ok
}

// Validate checks the event against a projection horizon.
func (e LifeEvent) Validate(horizonYears int) error {
	if e.Payment == nil {
		return InvalidInputf("payment mode is required")
	}
	if e.YearOffset < 0 || e.YearOffset > horizonYears {
		return InvalidInputf("year offset %d outside projection horizon 0..%d", e.YearOffset, horizonYears)
	}

	if loan, ok := e.Loan(); ok {
		if loan.TermYears <= 0 || loan.TermYears > MaxLoanTermYears {
			return InvalidInputf("loan term must be between 1 and %d years, got %d", MaxLoanTermYears, loan.TermYears)
		}
		if loan.AnnualInterestRate.IsNegative() {
			return InvalidInputf("loan interest rate cannot be negative")
		}
		if loan.DownPayment.IsNegative() {
			return InvalidInputf("down payment cannot be negative")
		}
	}

	if e.Asset != nil {
		if e.Asset.InitialValue.IsNegative() {
			return InvalidInputf("asset initial value cannot be negative")
		}
		if e.Asset.Depreciation.AnnualRatePercent.IsNegative() {
			return InvalidInputf("depreciation rate cannot be negative")
		}
	}
	return nil
}

// lifeEventDoc is the flat YAML/JSON shape of a LifeEvent.
type lifeEventDoc struct {
	Name        string          `yaml:"name" json:"name"`
	Category    string          `yaml:"category,omitempty" json:"category,omitempty"`
	YearOffset  int             `yaml:"year_offset" json:"year_offset"`
	TotalAmount decimal.Decimal `yaml:"total_amount" json:"total_amount"`
	PaymentMode PaymentKind     `yaml:"payment_mode" json:"payment_mode"`
	Loan        *loanDoc        `yaml:"loan,omitempty" json:"loan,omitempty"`
	Asset       *fixedAssetDoc  `yaml:"asset,omitempty" json:"asset,omitempty"`
}

type loanDoc struct {
	DownPayment        decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	TermYears          int             `yaml:"term_years" json:"term_years"`
	AnnualInterestRate decimal.Decimal `yaml:"annual_interest_rate" json:"annual_interest_rate"`
}

type fixedAssetDoc struct {
	InitialValue *decimal.Decimal `yaml:"initial_value,omitempty" json:"initial_value,omitempty"` // nil means total_amount
	Depreciation depreciationDoc  `yaml:"depreciation" json:"depreciation"`
	Income       incomeDoc        `yaml:"income" json:"income"`
}

type depreciationDoc struct {
	Enabled           bool            `yaml:"enabled" json:"enabled"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
}

// incomeDoc carries a monthly amount; the domain keeps the annual figure
type incomeDoc struct {
	Enabled       bool            `yaml:"enabled" json:"enabled"`
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
}

func (d lifeEventDoc) toEvent() (LifeEvent, error) {
	ev := LifeEvent{
		Name:        d.Name,
		Category:    d.Category,
		YearOffset:  d.YearOffset,
		TotalAmount: d.TotalAmount,
	}

	mode := d.PaymentMode
	if mode == "" {
		mode = PaymentLumpSum
		if d.Loan != nil {
			mode = PaymentLoan
		}
	}
	switch mode {
	case PaymentLumpSum:
		if d.Loan != nil {
			return LifeEvent{}, InvalidInputf("event %q: loan terms given for a lump_sum payment", d.Name)
		}
		ev.Payment = LumpSum{}
	case PaymentLoan:
		if d.Loan == nil {
			return LifeEvent{}, InvalidInputf("event %q: loan payment requires loan terms", d.Name)
		}
		ev.Payment = Loan{
			DownPayment:        d.Loan.DownPayment,
			TermYears:          d.Loan.TermYears,
			AnnualInterestRate: d.Loan.AnnualInterestRate,
		}
	default:
		return LifeEvent{}, InvalidInputf("event %q: unknown payment mode %q (want lump_sum or loan)", d.Name, d.PaymentMode)
	}

	if d.Asset != nil {
		initial := d.TotalAmount
		if d.Asset.InitialValue != nil {
			initial = *d.Asset.InitialValue
		}
		ev.Asset = &FixedAsset{
			InitialValue: initial,
			Depreciation: Depreciation{
				Enabled:           d.Asset.Depreciation.Enabled,
				AnnualRatePercent: d.Asset.Depreciation.AnnualRatePercent,
			},
			Income: AssetIncome{
				Enabled:      d.Asset.Income.Enabled,
				AnnualAmount: money.Annual(d.Asset.Income.MonthlyAmount),
			},
		}
	}
	return ev, nil
}

func (e LifeEvent) toDoc() lifeEventDoc {
	d := lifeEventDoc{
		Name:        e.Name,
		Category:    e.Category,
		YearOffset:  e.YearOffset,
		TotalAmount: e.TotalAmount,
	}
	if e.Payment != nil {
		d.PaymentMode = e.Payment.Kind()
	}
	if loan, ok := e.Loan(); ok {
		d.Loan = &loanDoc{
			DownPayment:        loan.DownPayment,
			TermYears:          loan.TermYears,
			AnnualInterestRate: loan.AnnualInterestRate,
		}
	}
	if e.Asset != nil {
		initial := e.Asset.InitialValue
		d.Asset = &fixedAssetDoc{
			InitialValue: &initial,
			Depreciation: depreciationDoc{
				Enabled:           e.Asset.Depreciation.Enabled,
				AnnualRatePercent: e.Asset.Depreciation.AnnualRatePercent,
			},
			Income: incomeDoc{
				Enabled:       e.Asset.Income.Enabled,
				MonthlyAmount: money.Monthly(e.Asset.Income.AnnualAmount),
			},
		}
	}
	return d
}

// UnmarshalYAML implements custom YAML unmarshaling for LifeEvent
func (e *LifeEvent) UnmarshalYAML(value *yaml.Node) error {
	var doc lifeEventDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	ev, err := doc.toEvent()
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

// MarshalYAML implements custom YAML marshaling for LifeEvent
func (e LifeEvent) MarshalYAML() (interface{}, error) {
	return e.toDoc(), nil
}

// UnmarshalJSON implements custom JSON unmarshaling for LifeEvent
func (e *LifeEvent) UnmarshalJSON(data []byte) error {
	var doc lifeEventDoc
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return InvalidInputf("life event: %v", err)
	}
	ev, err := doc.toEvent()
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

// MarshalJSON implements custom JSON marshaling for LifeEvent
func (e LifeEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toDoc())
}
