package factory_test

import (
	"strings"
	"testing"

	"github.com/koperasi/finance-engine/factory"
	"github.com/koperasi/finance-engine/interest"
	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/shu"
)

const sampleScheme = `{
  "id": "shu-2026",
  "name": "SHU Tahun Buku 2026",
  "total_shu": 10000000,
  "rules": {"savings": 40, "transaction": 30, "equal": 20, "membership_bonus": 10},
  "members": [
    {"id": "m-001", "name": "Budi", "savings_balance": 5000000,
     "transaction_volume": 2000000, "duration_months": 24, "membership_type": "premium"},
    {"id": "m-002", "name": "Siti", "savings_balance": 1000000,
     "transaction_volume": 500000, "duration_months": 12}
  ]
}`

func TestParseDistributionScheme(t *testing.T) {
	cfg, err := factory.ParseDistributionScheme([]byte(sampleScheme))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TotalSHU != 10_000_000 {
		t.Errorf("TotalSHU = %d", cfg.TotalSHU)
	}
	if len(cfg.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(cfg.Members))
	}
	if cfg.Members[0].Membership != member.TypePremium {
		t.Errorf("member 0 tier = %s, want premium", cfg.Members[0].Membership)
	}
	// Omitted membership type defaults to regular.
	if cfg.Members[1].Membership != member.TypeRegular {
		t.Errorf("member 1 tier = %s, want regular", cfg.Members[1].Membership)
	}

	// The parsed config feeds straight into the distributor.
	if _, err := shu.Distribute(cfg); err != nil {
		t.Errorf("Distribute on parsed config: %v", err)
	}
}

func TestParseDistributionScheme_RejectsUnknownFields(t *testing.T) {
	// GIVEN: A typo'd rule key
	// THEN: Parsing fails instead of silently defaulting the rule to 0

	bad := strings.Replace(sampleScheme, `"transaction"`, `"transactions"`, 1)
	if _, err := factory.ParseDistributionScheme([]byte(bad)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseDistributionScheme_RejectsUnknownTier(t *testing.T) {
	bad := strings.Replace(sampleScheme, `"premium"`, `"platinum"`, 1)
	_, err := factory.ParseDistributionScheme([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "platinum") {
		t.Fatalf("expected unknown-tier error, got %v", err)
	}
}

func TestParseInterestPlan(t *testing.T) {
	cfg, err := factory.ParseInterestPlan([]byte(`{
		"principal": 1000000, "annual_rate_percent": 6, "term_months": 12
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frequency != interest.Monthly {
		t.Errorf("default frequency = %s, want monthly", cfg.Frequency)
	}

	if _, err := factory.ParseInterestPlan([]byte(`{
		"principal": 1000000, "annual_rate_percent": 6,
		"frequency": "hourly", "term_months": 12
	}`)); err == nil {
		t.Error("expected error for unknown frequency")
	}

	if _, err := factory.ParseInterestPlan([]byte(`{
		"principal": 1000000, "annual_rate_percent": 6, "term_months": 0
	}`)); err == nil {
		t.Error("expected error for zero term")
	}
}
