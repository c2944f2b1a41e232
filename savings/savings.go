// Package savings computes tier-based mandatory monthly savings
// (simpanan wajib) amounts.
package savings

import (
	"github.com/shopspring/decimal"

	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/money"
)

// DefaultBase is the cooperative's standard base contribution in Rupiah.
const DefaultBase int64 = 25_000

// Result is the mandatory monthly amount for one member.
type Result struct {
	Monthly   int64
	Formatted string
}

// MandatoryMonthly returns the mandatory monthly savings for a tier using
// the default base amount.
func MandatoryMonthly(t member.Type) Result {
	return MandatoryMonthlyWithBase(t, DefaultBase)
}

// MandatoryMonthlyWithBase computes base scaled by the tier multiplier
// (regular 1x, premium 1.5x, investor 2x), rounded to whole Rupiah.
func MandatoryMonthlyWithBase(t member.Type, base int64) Result {
	monthly := decimal.NewFromInt(base).
		Mul(t.Multiplier()).
		Round(0).
		IntPart()

	return Result{
		Monthly:   monthly,
		Formatted: money.Format(float64(monthly)),
	}
}
