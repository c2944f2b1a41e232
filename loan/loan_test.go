package loan_test

import (
	"testing"

	"github.com/koperasi/finance-engine/loan"
)

func TestCalculate_ZeroRateIsExactDivision(t *testing.T) {
	// GIVEN: 12.000.000 over 12 months at 0%
	// THEN: Payment is exactly 1.000.000 with no interest

	r := loan.Calculate(12_000_000, 0, 12)

	if r.MonthlyPayment != 1_000_000 {
		t.Errorf("MonthlyPayment = %d, want 1000000", r.MonthlyPayment)
	}
	if r.TotalPayment != 12_000_000 {
		t.Errorf("TotalPayment = %d, want 12000000", r.TotalPayment)
	}
	if r.TotalInterest != 0 {
		t.Errorf("TotalInterest = %d, want 0", r.TotalInterest)
	}
}

func TestCalculate_StandardAmortization(t *testing.T) {
	// GIVEN: 10.000.000 at 12% APR over 36 months
	// THEN: Payment exceeds the interest-free installment and interest
	//       accrues; the anuitas figure is ~332.143/month

	r := loan.Calculate(10_000_000, 12, 36)

	if r.MonthlyPayment <= 300_000 {
		t.Errorf("MonthlyPayment = %d, want > 300000", r.MonthlyPayment)
	}
	if r.TotalInterest <= 0 {
		t.Errorf("TotalInterest = %d, want > 0", r.TotalInterest)
	}
	if r.MonthlyPayment < 330_000 || r.MonthlyPayment > 335_000 {
		t.Errorf("MonthlyPayment = %d, outside expected anuitas band", r.MonthlyPayment)
	}
}

func TestCalculate_AggregatesReconcile(t *testing.T) {
	// THEN: TotalInterest + principal always equals TotalPayment exactly

	cases := []struct {
		principal int64
		rate      float64
		term      int
	}{
		{10_000_000, 12, 36},
		{5_000_000, 8.5, 24},
		{25_000_000, 15, 60},
		{1_000_000, 0, 10},
	}

	for _, c := range cases {
		r := loan.Calculate(c.principal, c.rate, c.term)
		if r.TotalPayment != r.TotalInterest+c.principal {
			t.Errorf("Calculate(%d, %v, %d): total %d != interest %d + principal",
				c.principal, c.rate, c.term, r.TotalPayment, r.TotalInterest)
		}
	}
}

func TestCalculate_FormattedFields(t *testing.T) {
	r := loan.Calculate(12_000_000, 0, 12)

	if r.FormattedMonthly != "Rp1.000.000" {
		t.Errorf("FormattedMonthly = %q", r.FormattedMonthly)
	}
	if r.FormattedTotal != "Rp12.000.000" {
		t.Errorf("FormattedTotal = %q", r.FormattedTotal)
	}
	if r.FormattedInterest != "Rp0" {
		t.Errorf("FormattedInterest = %q", r.FormattedInterest)
	}
}
