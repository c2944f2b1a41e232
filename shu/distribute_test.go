package shu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/shu"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func standardRules() shu.Rules {
	return shu.Rules{
		SavingsPercent:         40,
		TransactionPercent:     30,
		EqualPercent:           20,
		MembershipBonusPercent: 10,
	}
}

func twoMembers() []member.Contribution {
	return []member.Contribution{
		{
			MemberID:          "m-001",
			MemberName:        "Budi",
			SavingsBalance:    5_000_000,
			TransactionVolume: 2_000_000,
			DurationMonths:    24,
			Membership:        member.TypeRegular,
		},
		{
			MemberID:          "m-002",
			MemberName:        "Siti",
			SavingsBalance:    1_000_000,
			TransactionVolume: 500_000,
			DurationMonths:    24,
			Membership:        member.TypeRegular,
		},
	}
}

// =============================================================================
// RULE VALIDATION
// =============================================================================

func TestDistribute_RejectsRulesNotSummingTo100(t *testing.T) {
	// GIVEN: Rules summing to 90
	// THEN: The call fails fast with a RulesError naming the actual sum

	_, err := shu.Distribute(shu.Config{
		TotalSHU: 10_000_000,
		Rules: shu.Rules{
			SavingsPercent:         40,
			TransactionPercent:     30,
			EqualPercent:           10,
			MembershipBonusPercent: 10,
		},
		Members: twoMembers(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, shu.ErrInvalidRules)

	var rulesErr *shu.RulesError
	require.ErrorAs(t, err, &rulesErr)
	assert.Equal(t, "90", rulesErr.Sum.String())
	assert.Contains(t, err.Error(), "90")
}

func TestDistribute_AcceptsFractionalRulesSummingTo100(t *testing.T) {
	_, err := shu.Distribute(shu.Config{
		TotalSHU: 1_000_000,
		Rules: shu.Rules{
			SavingsPercent:         33.3,
			TransactionPercent:     33.3,
			EqualPercent:           33.4,
			MembershipBonusPercent: 0,
		},
		Members: twoMembers(),
	})
	assert.NoError(t, err)
}

// =============================================================================
// DISTRIBUTION INVARIANTS
// =============================================================================

func TestDistribute_StrictlyBetterMemberReceivesMore(t *testing.T) {
	// GIVEN: Member A strictly ahead on savings and transactions,
	//        identical tenure and tier
	// THEN: A's total allocation strictly exceeds B's

	result, err := shu.Distribute(shu.Config{
		TotalSHU: 10_000_000,
		Rules:    standardRules(),
		Members:  twoMembers(),
	})
	require.NoError(t, err)
	require.Len(t, result.Breakdown, 2)

	a, b := result.Breakdown[0], result.Breakdown[1]
	assert.Greater(t, a.TotalSHU, b.TotalSHU)
	assert.Equal(t, a.EqualShare, b.EqualShare, "equal share ignores member attributes")
}

func TestDistribute_TotalReconcilesToPool(t *testing.T) {
	// THEN: The distributed total matches the pool within one Rupiah
	//       per member (independent rounding)

	pool := int64(10_000_000)
	members := twoMembers()

	result, err := shu.Distribute(shu.Config{
		TotalSHU: pool,
		Rules:    standardRules(),
		Members:  members,
	})
	require.NoError(t, err)

	tolerance := int64(len(members))
	diff := result.TotalDistributed - pool
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, tolerance,
		"distributed %d vs pool %d", result.TotalDistributed, pool)
}

func TestDistribute_MemberTotalIsSumOfComponents(t *testing.T) {
	result, err := shu.Distribute(shu.Config{
		TotalSHU: 9_999_999,
		Rules:    standardRules(),
		Members:  twoMembers(),
	})
	require.NoError(t, err)

	for _, a := range result.Breakdown {
		componentSum := a.SavingsShare + a.TransactionShare + a.EqualShare + a.MembershipBonus
		diff := a.TotalSHU - componentSum
		if diff < 0 {
			diff = -diff
		}
		// Components round independently of the total; residue stays
		// within one Rupiah per component.
		assert.LessOrEqual(t, diff, int64(4), "member %s", a.MemberID)
	}
}

func TestDistribute_ZeroSavingsEverywhereZeroesThatComponent(t *testing.T) {
	// GIVEN: No member holds any savings
	// THEN: The savings component is zero for everyone, not a division
	//       by zero

	members := twoMembers()
	for i := range members {
		members[i].SavingsBalance = 0
	}

	result, err := shu.Distribute(shu.Config{
		TotalSHU: 10_000_000,
		Rules:    standardRules(),
		Members:  members,
	})
	require.NoError(t, err)

	for _, a := range result.Breakdown {
		assert.Zero(t, a.SavingsShare, "member %s", a.MemberID)
	}
}

func TestDistribute_TierAndTenureIncreaseBonus(t *testing.T) {
	// GIVEN: Identical balances, one investor with longer tenure
	// THEN: The investor's membership bonus is strictly larger

	members := []member.Contribution{
		{MemberID: "r", SavingsBalance: 1_000_000, TransactionVolume: 1_000_000,
			DurationMonths: 12, Membership: member.TypeRegular},
		{MemberID: "i", SavingsBalance: 1_000_000, TransactionVolume: 1_000_000,
			DurationMonths: 36, Membership: member.TypeInvestor},
	}

	result, err := shu.Distribute(shu.Config{
		TotalSHU: 10_000_000,
		Rules:    standardRules(),
		Members:  members,
	})
	require.NoError(t, err)

	assert.Greater(t, result.Breakdown[1].MembershipBonus, result.Breakdown[0].MembershipBonus)
	assert.Greater(t, result.Breakdown[1].TotalSHU, result.Breakdown[0].TotalSHU)
}

func TestDistribute_NoMembers(t *testing.T) {
	result, err := shu.Distribute(shu.Config{
		TotalSHU: 10_000_000,
		Rules:    standardRules(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Breakdown)
	assert.Zero(t, result.TotalDistributed)
}
