package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when a comparison carries none of its own.
var DefaultAssumptions = []string{
	"Year 0 already includes one year of returns and contributions",
	"Returns apply to the liquid balance only; fixed assets never grow",
	"Loans: fixed monthly annuity payment, deducted yearly from the purchase year for the full term",
	"Depreciation: percentage of the asset's current value each year, floored at zero",
}

func assumptionsFor(assumptions []string) []string {
	if len(assumptions) == 0 {
		return DefaultAssumptions
	}
	return assumptions
}
