/*
Package shu allocates a cooperative's annual profit-sharing pool (Sisa
Hasil Usaha) across its members.

PURPOSE:
  Splits a pool into four weighted components per member:
  - savings share:     proportional to the member's savings balance
  - transaction share: proportional to the member's transaction volume
  - equal share:       identical for every member
  - membership bonus:  proportional to tenure scaled by tier multiplier
                       (regular 1x, premium 1.5x, investor 2x)

INVARIANTS:
  1. The four rule percentages must sum to exactly 100. Anything else is
     rejected with a RulesError before any money moves.
  2. A zero denominator (no savings anywhere, no transactions anywhere,
     zero total bonus weight) zeroes that component for every member.
  3. The sum of member totals reconciles to the pool within one Rupiah per
     member; each member's total is rounded independently.
  4. A member who is strictly better on savings and transaction volume and
     no worse elsewhere receives a strictly larger total.

ARITHMETIC:
  All intermediate math is decimal.Decimal. Each member's total is rounded
  to whole Rupiah once, at the end; component figures are rounded
  independently for display.

USAGE:
  result, err := shu.Distribute(shu.Config{
      TotalSHU: 10_000_000,
      Rules:    shu.Rules{SavingsPercent: 40, TransactionPercent: 30, EqualPercent: 20, MembershipBonusPercent: 10},
      Members:  contributions,
  })

SEE ALSO:
  - member/types.go: Contribution and tier multipliers
  - shu/errors.go: RulesError
*/
package shu

import (
	"github.com/shopspring/decimal"

	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/money"
)

// =============================================================================
// RULES / CONFIG / RESULT
// =============================================================================

// Rules are the four distribution percentages. They must sum to exactly 100.
type Rules struct {
	SavingsPercent         float64
	TransactionPercent     float64
	EqualPercent           float64
	MembershipBonusPercent float64
}

// Sum returns the exact decimal sum of the four percentages.
func (r Rules) Sum() decimal.Decimal {
	return decimal.NewFromFloat(r.SavingsPercent).
		Add(decimal.NewFromFloat(r.TransactionPercent)).
		Add(decimal.NewFromFloat(r.EqualPercent)).
		Add(decimal.NewFromFloat(r.MembershipBonusPercent))
}

// Config is the input for one distribution run.
type Config struct {
	TotalSHU int64 // pool size in whole Rupiah
	Rules    Rules
	Members  []member.Contribution
}

// Allocation is one member's slice of the pool. Component figures are
// rounded independently; TotalSHU is the rounded sum of the unrounded
// components, so the components may differ from TotalSHU by atomic
// rounding residue.
type Allocation struct {
	MemberID         string
	MemberName       string
	SavingsShare     int64
	TransactionShare int64
	EqualShare       int64
	MembershipBonus  int64
	TotalSHU         int64
	FormattedTotal   string
}

// Result is one distribution run over all members.
type Result struct {
	Breakdown        []Allocation
	TotalDistributed int64
	FormattedTotal   string
}

// =============================================================================
// DISTRIBUTION
// =============================================================================

var hundred = decimal.NewFromInt(100)

// Distribute allocates cfg.TotalSHU across cfg.Members per cfg.Rules.
// It fails only when the rules do not sum to 100.
func Distribute(cfg Config) (Result, error) {
	if sum := cfg.Rules.Sum(); !sum.Equal(hundred) {
		return Result{}, &RulesError{Sum: sum}
	}

	pool := decimal.NewFromInt(cfg.TotalSHU)
	count := int64(len(cfg.Members))
	if count == 0 {
		return Result{FormattedTotal: money.Format(0)}, nil
	}

	savingsPool := pool.Mul(decimal.NewFromFloat(cfg.Rules.SavingsPercent)).Div(hundred)
	txPool := pool.Mul(decimal.NewFromFloat(cfg.Rules.TransactionPercent)).Div(hundred)
	equalPool := pool.Mul(decimal.NewFromFloat(cfg.Rules.EqualPercent)).Div(hundred)
	bonusPool := pool.Mul(decimal.NewFromFloat(cfg.Rules.MembershipBonusPercent)).Div(hundred)

	var totalSavings, totalTx, totalWeight decimal.Decimal
	for _, m := range cfg.Members {
		totalSavings = totalSavings.Add(decimal.NewFromInt(m.SavingsBalance))
		totalTx = totalTx.Add(decimal.NewFromInt(m.TransactionVolume))
		totalWeight = totalWeight.Add(m.BonusWeight())
	}

	equalShare := equalPool.Div(decimal.NewFromInt(count))

	breakdown := make([]Allocation, 0, count)
	var distributed int64
	for _, m := range cfg.Members {
		savings := proRata(savingsPool, decimal.NewFromInt(m.SavingsBalance), totalSavings)
		tx := proRata(txPool, decimal.NewFromInt(m.TransactionVolume), totalTx)
		bonus := proRata(bonusPool, m.BonusWeight(), totalWeight)

		total := savings.Add(tx).Add(equalShare).Add(bonus).Round(0).IntPart()
		distributed += total

		breakdown = append(breakdown, Allocation{
			MemberID:         m.MemberID,
			MemberName:       m.MemberName,
			SavingsShare:     savings.Round(0).IntPart(),
			TransactionShare: tx.Round(0).IntPart(),
			EqualShare:       equalShare.Round(0).IntPart(),
			MembershipBonus:  bonus.Round(0).IntPart(),
			TotalSHU:         total,
			FormattedTotal:   money.Format(float64(total)),
		})
	}

	return Result{
		Breakdown:        breakdown,
		TotalDistributed: distributed,
		FormattedTotal:   money.Format(float64(distributed)),
	}, nil
}

// proRata splits pool by weight/total. A zero total zeroes the component
// for everyone rather than dividing by zero.
func proRata(pool, weight, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return pool.Mul(weight).Div(total)
}
