/*
Package interest computes compound interest schedules for savings accounts.

PURPOSE:
  Given a principal, an annual rate and a compounding frequency, produce the
  final balance, the interest earned and a month-by-month balance breakdown.

ALGORITHM:
  Standard compound growth: A = P * (1 + r/n)^(n*t), with n the number of
  compounding periods per year and t the term in years. Rounding to whole
  Rupiah happens once on each output figure, never per period, so the
  aggregate carries no accumulated rounding drift.

  The monthly breakdown evaluates the same formula at t = month/12, which
  keeps it self-consistent: the last entry always equals the final amount.

NO ERROR PATHS:
  A zero rate or any valid term produces a valid (possibly zero-growth)
  result. Business validation such as minimum deposits belongs to callers.

USAGE:
  result := interest.Calculate(interest.Config{
      Principal:         1_000_000,
      AnnualRatePercent: 6,
      Frequency:         interest.Monthly,
      TermMonths:        12,
  })

SEE ALSO:
  - money/codec.go: display formatting of the result figures
*/
package interest

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/koperasi/finance-engine/money"
)

// =============================================================================
// COMPOUNDING FREQUENCY
// =============================================================================

// Frequency is how often interest is compounded within a year.
type Frequency string

const (
	Daily     Frequency = "daily"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// PeriodsPerYear maps the frequency to its fixed period count.
// Unknown frequencies compound monthly, the cooperative's default product.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Daily:
		return 365
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		return 12
	}
}

// =============================================================================
// CONFIG / RESULT
// =============================================================================

// Config is the immutable input for one calculation.
type Config struct {
	Principal         int64 // whole Rupiah
	AnnualRatePercent float64
	Frequency         Frequency
	TermMonths        int
}

// MonthBalance is the account balance at a month boundary.
type MonthBalance struct {
	Month   int // 1-based
	Balance int64
}

// Result is created fresh per call; nothing in it is shared.
type Result struct {
	Principal        int64
	InterestEarned   int64
	FinalAmount      int64
	MonthlyBreakdown []MonthBalance

	FormattedPrincipal string
	FormattedInterest  string
	FormattedFinal     string
}

// =============================================================================
// CALCULATION
// =============================================================================

// Calculate computes the compound interest schedule for cfg.
func Calculate(cfg Config) Result {
	breakdown := make([]MonthBalance, 0, cfg.TermMonths)
	for m := 1; m <= cfg.TermMonths; m++ {
		breakdown = append(breakdown, MonthBalance{
			Month:   m,
			Balance: balanceAt(cfg, m),
		})
	}

	final := cfg.Principal
	if cfg.TermMonths > 0 {
		final = breakdown[cfg.TermMonths-1].Balance
	}
	earned := final - cfg.Principal

	return Result{
		Principal:        cfg.Principal,
		InterestEarned:   earned,
		FinalAmount:      final,
		MonthlyBreakdown: breakdown,

		FormattedPrincipal: money.Format(float64(cfg.Principal)),
		FormattedInterest:  money.Format(float64(earned)),
		FormattedFinal:     money.Format(float64(final)),
	}
}

// balanceAt evaluates P * (1 + r/n)^(n * month/12) rounded to whole Rupiah.
// The fractional exponent forces math.Pow; the growth factor re-enters
// decimal before the principal multiplication so rounding stays exact.
func balanceAt(cfg Config, month int) int64 {
	n := float64(cfg.Frequency.PeriodsPerYear())
	r := cfg.AnnualRatePercent / 100
	t := float64(month) / 12

	factor := math.Pow(1+r/n, n*t)

	return decimal.NewFromInt(cfg.Principal).
		Mul(decimal.NewFromFloat(factor)).
		Round(0).
		IntPart()
}
