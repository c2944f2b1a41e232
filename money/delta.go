package money

import "github.com/shopspring/decimal"

// =============================================================================
// PERIOD-OVER-PERIOD CHANGE
// =============================================================================

// Change describes period-over-period movement of an amount.
type Change struct {
	Change           int64   // current - previous, signed
	ChangePercentage float64 // signed, 0 when previous is 0
	IsIncrease       bool
	FormattedChange  string // "+Rp..." or "-Rp..."
}

// Delta computes the change from previous to current.
//
// A zero base yields 0% even when an absolute change exists. Dashboards
// render the percentage next to the absolute figure; "infinite growth"
// would only ever surface as a division-by-zero artifact there.
func Delta(previous, current int64) Change {
	change := current - previous

	var pct float64
	if previous != 0 {
		pct = decimal.NewFromInt(change).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(previous)).
			Round(2).
			InexactFloat64()
	}

	sign := "+"
	if change < 0 {
		sign = "-"
	}
	abs := change
	if abs < 0 {
		abs = -abs
	}

	return Change{
		Change:           change,
		ChangePercentage: pct,
		IsIncrease:       change > 0,
		FormattedChange:  sign + Format(float64(abs)),
	}
}
