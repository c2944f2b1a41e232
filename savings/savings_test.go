package savings_test

import (
	"testing"

	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/savings"
)

func TestMandatoryMonthly_DefaultBase(t *testing.T) {
	cases := []struct {
		tier member.Type
		want int64
	}{
		{member.TypeRegular, 25_000},
		{member.TypePremium, 37_500},
		{member.TypeInvestor, 50_000},
	}

	for _, c := range cases {
		got := savings.MandatoryMonthly(c.tier)
		if got.Monthly != c.want {
			t.Errorf("MandatoryMonthly(%s) = %d, want %d", c.tier, got.Monthly, c.want)
		}
	}
}

func TestMandatoryMonthly_CustomBase(t *testing.T) {
	got := savings.MandatoryMonthlyWithBase(member.TypePremium, 30_000)
	if got.Monthly != 45_000 {
		t.Errorf("premium with base 30000 = %d, want 45000", got.Monthly)
	}
}

func TestMandatoryMonthly_UnknownTierFallsBackToRegular(t *testing.T) {
	got := savings.MandatoryMonthly(member.Type("platinum"))
	if got.Monthly != 25_000 {
		t.Errorf("unknown tier = %d, want regular amount 25000", got.Monthly)
	}
}

func TestMandatoryMonthly_Formatted(t *testing.T) {
	got := savings.MandatoryMonthly(member.TypeInvestor)
	if got.Formatted != "Rp50.000" {
		t.Errorf("Formatted = %q, want Rp50.000", got.Formatted)
	}
}
