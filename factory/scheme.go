/*
Package factory converts JSON scheme definitions into engine configurations.

PURPOSE:
  Cooperative administrators define distribution and savings schemes as
  JSON (stored in the database, posted through the admin API, or passed to
  the CLI). The factory turns those documents into the typed configs the
  calculation packages consume, applying defaults and rejecting malformed
  input before any calculation runs.

WHY JSON?
  - Non-developers can tune a scheme without a deploy
  - Schemes are versionable and storable alongside calculation history
  - The admin UI and the CLI share one definition format

JSON SCHEMA (distribution scheme):
  {
    "id": "shu-2026",
    "name": "SHU Tahun Buku 2026",
    "total_shu": 10000000,
    "rules": {
      "savings": 40,
      "transaction": 30,
      "equal": 20,
      "membership_bonus": 10
    },
    "members": [
      {"id": "m-001", "name": "Budi", "savings_balance": 5000000,
       "transaction_volume": 2000000, "duration_months": 24,
       "membership_type": "regular"}
    ]
  }

STRICTNESS:
  Decoding rejects unknown fields. A typo like "transactions" silently
  defaulting to 0 would shift real money between members.

USAGE:
  cfg, err := factory.ParseDistributionScheme(data)
  result, err := shu.Distribute(cfg)

SEE ALSO:
  - shu/distribute.go: consumes the parsed config
  - interest/interest.go: consumes InterestPlanJSON
*/
package factory

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/koperasi/finance-engine/interest"
	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/shu"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// DistributionSchemeJSON is the JSON representation of an SHU distribution run.
type DistributionSchemeJSON struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	TotalSHU int64        `json:"total_shu"`
	Rules    RulesJSON    `json:"rules"`
	Members  []MemberJSON `json:"members"`
}

// RulesJSON holds the four distribution percentages.
type RulesJSON struct {
	Savings         float64 `json:"savings"`
	Transaction     float64 `json:"transaction"`
	Equal           float64 `json:"equal"`
	MembershipBonus float64 `json:"membership_bonus"`
}

// MemberJSON is one member's contribution profile.
type MemberJSON struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	SavingsBalance    int64  `json:"savings_balance"`
	TransactionVolume int64  `json:"transaction_volume"`
	DurationMonths    int    `json:"duration_months"`
	MembershipType    string `json:"membership_type"`
}

// InterestPlanJSON is the JSON representation of a savings interest plan.
type InterestPlanJSON struct {
	Principal         int64   `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Frequency         string  `json:"frequency,omitempty"` // daily, monthly, quarterly, yearly
	TermMonths        int     `json:"term_months"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseDistributionScheme decodes data into an shu.Config. Unknown fields
// and malformed members are rejected; rule-sum validation is left to
// shu.Distribute so the error surfaces identically on every path.
func ParseDistributionScheme(data []byte) (shu.Config, error) {
	var sj DistributionSchemeJSON
	if err := decodeStrict(data, &sj); err != nil {
		return shu.Config{}, fmt.Errorf("failed to parse distribution scheme: %w", err)
	}

	members := make([]member.Contribution, 0, len(sj.Members))
	for i, mj := range sj.Members {
		tier := member.Type(mj.MembershipType)
		if mj.MembershipType != "" && !tier.Valid() {
			return shu.Config{}, fmt.Errorf("member %d (%s): unknown membership type %q",
				i, mj.ID, mj.MembershipType)
		}
		if mj.MembershipType == "" {
			tier = member.TypeRegular
		}
		members = append(members, member.Contribution{
			MemberID:          mj.ID,
			MemberName:        mj.Name,
			SavingsBalance:    mj.SavingsBalance,
			TransactionVolume: mj.TransactionVolume,
			DurationMonths:    mj.DurationMonths,
			Membership:        tier,
		})
	}

	return shu.Config{
		TotalSHU: sj.TotalSHU,
		Rules: shu.Rules{
			SavingsPercent:         sj.Rules.Savings,
			TransactionPercent:     sj.Rules.Transaction,
			EqualPercent:           sj.Rules.Equal,
			MembershipBonusPercent: sj.Rules.MembershipBonus,
		},
		Members: members,
	}, nil
}

// ParseInterestPlan decodes data into an interest.Config. An omitted
// frequency defaults to monthly compounding.
func ParseInterestPlan(data []byte) (interest.Config, error) {
	var pj InterestPlanJSON
	if err := decodeStrict(data, &pj); err != nil {
		return interest.Config{}, fmt.Errorf("failed to parse interest plan: %w", err)
	}
	if pj.TermMonths <= 0 {
		return interest.Config{}, fmt.Errorf("interest plan: term_months must be positive, got %d", pj.TermMonths)
	}

	freq := interest.Frequency(pj.Frequency)
	switch freq {
	case "", interest.Monthly:
		freq = interest.Monthly
	case interest.Daily, interest.Quarterly, interest.Yearly:
	default:
		return interest.Config{}, fmt.Errorf("interest plan: unknown frequency %q", pj.Frequency)
	}

	return interest.Config{
		Principal:         pj.Principal,
		AnnualRatePercent: pj.AnnualRatePercent,
		Frequency:         freq,
		TermMonths:        pj.TermMonths,
	}, nil
}

// decodeStrict unmarshals with unknown fields disallowed.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
