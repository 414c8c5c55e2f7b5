package ratemath

import "testing"

func TestRateData_Next_NonActiveCopiesRates(t *testing.T) {
	cur := RateData{IdentityKey: "v1", EpochIndex: 5, ValidatorRewardRate: 123, ValidatorExchangeRate: 456}
	base := BaseRateData{EpochIndex: 5, BaseRewardRate: BaseRewardRate, BaseExchangeRate: FixedPointScale}
	nextBase := base.Next(BaseRewardRate)

	for _, state := range []LifecycleState{StateInactive, StateUnbonding, StateSlashed} {
		got := cur.Next(nextBase, 0, state)
		if got.ValidatorRewardRate != cur.ValidatorRewardRate || got.ValidatorExchangeRate != cur.ValidatorExchangeRate {
			t.Fatalf("state %v: rates should pass through unchanged, got %+v", state, got)
		}
		if got.EpochIndex != cur.EpochIndex+1 {
			t.Fatalf("state %v: epoch index should increment by 1, got %d", state, got.EpochIndex)
		}
	}
}

func TestRateData_Next_ActiveAppliesCommission(t *testing.T) {
	cur := RateData{IdentityKey: "v1", EpochIndex: 0, ValidatorRewardRate: 0, ValidatorExchangeRate: FixedPointScale}
	base := BaseRateData{EpochIndex: 0, BaseRewardRate: 0, BaseExchangeRate: FixedPointScale}
	nextBase := base.Next(BaseRewardRate)

	got := cur.Next(nextBase, 1000, StateActive) // 10% commission
	wantReward := (FixedPointScale - 1000*BpsDenom) * nextBase.BaseRewardRate / FixedPointScale
	if got.ValidatorRewardRate != wantReward {
		t.Fatalf("reward rate = %d, want %d", got.ValidatorRewardRate, wantReward)
	}
	if got.ValidatorExchangeRate != cur.ValidatorExchangeRate {
		t.Fatalf("exchange rate should carry forward when prior reward rate is zero, got %d", got.ValidatorExchangeRate)
	}
}

func TestRateData_Next_PanicsOnCommissionOverCap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for commission over 10000bps")
		}
	}()
	cur := RateData{ValidatorExchangeRate: FixedPointScale}
	cur.Next(BaseRateData{BaseRewardRate: BaseRewardRate}, 10001, StateActive)
}

func TestRateData_Slash(t *testing.T) {
	// Scenario 7: Active validator slashed with penalty 1000bps.
	cur := RateData{ValidatorRewardRate: 100_000}
	slashed := cur.Slash(1000)
	want := uint64(100_000) - uint64(100_000)*1000/FixedPointScale
	if slashed.ValidatorRewardRate != want {
		t.Fatalf("slashed reward rate = %d, want %d", slashed.ValidatorRewardRate, want)
	}
}

func TestRateData_Slash_SaturatesAtZero(t *testing.T) {
	cur := RateData{ValidatorRewardRate: 5}
	slashed := cur.Slash(FixedPointScale * 2)
	if slashed.ValidatorRewardRate != 0 {
		t.Fatalf("expected saturating subtraction to floor at zero, got %d", slashed.ValidatorRewardRate)
	}
}

func TestDelegationAndUnbondedAmount_NotMutualInverse(t *testing.T) {
	r := RateData{ValidatorExchangeRate: 3 * FixedPointScale / 2}
	delegation := r.DelegationAmount(1000)
	roundTripped := r.UnbondedAmount(delegation)
	if roundTripped == 1000 {
		t.Skip("rounding happened to be exact for this input; not a correctness requirement")
	}
}

func TestVotingPower_MultipliesBeforeDividing(t *testing.T) {
	r := RateData{ValidatorExchangeRate: FixedPointScale}
	base := BaseRateData{BaseExchangeRate: FixedPointScale}
	if got := r.VotingPower(1_000_000, base); got != 1_000_000 {
		t.Fatalf("voting power = %d, want 1000000", got)
	}
}

func TestBaseRateData_Next(t *testing.T) {
	base := BaseRateData{EpochIndex: 10, BaseRewardRate: 0, BaseExchangeRate: FixedPointScale}
	next := base.Next(BaseRewardRate)
	if next.EpochIndex != 11 {
		t.Fatalf("epoch index = %d, want 11", next.EpochIndex)
	}
	want := FixedPointScale * (BaseRewardRate + FixedPointScale) / FixedPointScale
	if next.BaseExchangeRate != uint64(want) {
		t.Fatalf("base exchange rate = %d, want %d", next.BaseExchangeRate, want)
	}
}

func TestValidateFundingStreams(t *testing.T) {
	ok := []FundingStream{{RateBps: 5000}, {RateBps: 5000}}
	if err := ValidateFundingStreams(ok); err != nil {
		t.Fatalf("expected streams summing to exactly 10000bps to validate, got %v", err)
	}
	bad := []FundingStream{{RateBps: 5000}, {RateBps: 5001}}
	if err := ValidateFundingStreams(bad); err == nil {
		t.Fatalf("expected streams summing over 10000bps to be rejected")
	}
}

func TestFundingStream_RewardAmount(t *testing.T) {
	cur := BaseRateData{BaseRewardRate: 0}
	next := BaseRateData{BaseRewardRate: BaseRewardRate}
	s := FundingStream{RateBps: BpsDenom} // 100% commission
	got := s.RewardAmount(1_000_000_000, next, cur)
	if got == 0 {
		t.Fatalf("expected nonzero reward amount for positive rate delta")
	}
}
