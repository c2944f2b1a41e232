/*
Package loan computes fixed-payment loan schedules (anuitas).

ALGORITHM:
  Standard amortization with monthly rate r = annualRatePercent/12/100:

    payment = P * r * (1+r)^n / ((1+r)^n - 1)

  A zero rate degenerates to exact division P/n. Arithmetic runs at full
  precision; each aggregate figure is rounded to whole Rupiah once at the
  output boundary. TotalInterest is derived from the rounded TotalPayment
  so that TotalPayment - TotalInterest always equals the principal exactly.

USAGE:
  result := loan.Calculate(10_000_000, 12, 36)
*/
package loan

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/koperasi/finance-engine/money"
)

// Result carries the aggregate figures of a fixed-payment schedule.
type Result struct {
	Principal      int64
	MonthlyPayment int64
	TotalPayment   int64
	TotalInterest  int64

	FormattedMonthly  string
	FormattedTotal    string
	FormattedInterest string
}

// Calculate computes the fixed monthly payment and aggregate totals for a
// loan of principal Rupiah at annualRatePercent over termMonths months.
func Calculate(principal int64, annualRatePercent float64, termMonths int) Result {
	p := decimal.NewFromInt(principal)
	n := decimal.NewFromInt(int64(termMonths))

	var payment decimal.Decimal
	if annualRatePercent == 0 {
		payment = p.Div(n)
	} else {
		r := annualRatePercent / 12 / 100
		growth := math.Pow(1+r, float64(termMonths))
		// P * r * (1+r)^n / ((1+r)^n - 1), factor computed in float,
		// applied to the principal in decimal.
		factor := r * growth / (growth - 1)
		payment = p.Mul(decimal.NewFromFloat(factor))
	}

	total := payment.Mul(n).Round(0).IntPart()

	return Result{
		Principal:      principal,
		MonthlyPayment: payment.Round(0).IntPart(),
		TotalPayment:   total,
		TotalInterest:  total - principal,

		FormattedMonthly:  money.Format(float64(payment.Round(0).IntPart())),
		FormattedTotal:    money.Format(float64(total)),
		FormattedInterest: money.Format(float64(total - principal)),
	}
}
