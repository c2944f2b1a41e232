// Package member defines cooperative membership tiers and the contribution
// profile used by SHU distribution and mandatory-savings policies.
package member

import "github.com/shopspring/decimal"

// =============================================================================
// MEMBERSHIP TIERS
// =============================================================================

// Type is a cooperative membership tier.
type Type string

const (
	TypeRegular  Type = "regular"
	TypePremium  Type = "premium"
	TypeInvestor Type = "investor"
)

var multipliers = map[Type]decimal.Decimal{
	TypeRegular:  decimal.NewFromInt(1),
	TypePremium:  decimal.RequireFromString("1.5"),
	TypeInvestor: decimal.NewFromInt(2),
}

// Multiplier returns the tier multiplier applied to mandatory savings and
// SHU membership-bonus weighting. Unknown tiers fall back to regular.
func (t Type) Multiplier() decimal.Decimal {
	if m, ok := multipliers[t]; ok {
		return m
	}
	return multipliers[TypeRegular]
}

// Valid reports whether t is a known tier.
func (t Type) Valid() bool {
	_, ok := multipliers[t]
	return ok
}

// =============================================================================
// CONTRIBUTION PROFILE
// =============================================================================

// Contribution captures one member's standing for a distribution period.
// Amounts are whole Rupiah.
type Contribution struct {
	MemberID          string
	MemberName        string
	SavingsBalance    int64
	TransactionVolume int64
	DurationMonths    int
	Membership        Type
}

// BonusWeight is the membership-bonus weight: tenure in months scaled by
// the tier multiplier. Longer tenure and higher tier both increase it.
func (c Contribution) BonusWeight() decimal.Decimal {
	return decimal.NewFromInt(int64(c.DurationMonths)).Mul(c.Membership.Multiplier())
}
