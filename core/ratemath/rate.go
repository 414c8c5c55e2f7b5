// Package ratemath implements the fixed-point reward, exchange, and voting
// power computations for the validator lifecycle. Every value carries an
// implicit scale of 1e-8 (so 1_0000_0000 represents 1.0), matching the
// on-chain convention of grouping digits in fours (one basis point is 1e-4).
//
// Every operation here is pure: no I/O, no global state. Intermediate
// products widen to math/big.Int to avoid silent truncation, and panic
// rather than saturate when a result would not fit in a uint64 — fixed-point
// overflow in reward accounting is a fatal invariant violation, not a
// recoverable error.
package ratemath

import "math/big"

const (
	// FixedPointScale is 1e-8 expressed as the integer denominator: a rate
	// of FixedPointScale represents 1.0.
	FixedPointScale = 1_0000_0000

	// BpsDenom is the basis-point denominator (1e4 == 100%).
	BpsDenom = 1_0000

	// BaseRewardRate is the protocol-wide per-epoch base reward rate, 3bps.
	BaseRewardRate = 3_0000
)

// BaseRateData is the chain-wide base reward/exchange rate for one epoch.
type BaseRateData struct {
	EpochIndex       uint64
	BaseRewardRate   uint64
	BaseExchangeRate uint64
}

// Next derives the base rate data for the following epoch given the reward
// rate that applies over it.
func (b BaseRateData) Next(nextBaseRewardRate uint64) BaseRateData {
	num := new(big.Int).SetUint64(b.BaseExchangeRate)
	num.Mul(num, new(big.Int).Add(big.NewInt(int64(nextBaseRewardRate)), big.NewInt(FixedPointScale)))
	num.Div(num, big.NewInt(FixedPointScale))
	return BaseRateData{
		EpochIndex:       b.EpochIndex + 1,
		BaseRewardRate:   nextBaseRewardRate,
		BaseExchangeRate: mustUint64(num),
	}
}

// RateData is the per-validator reward/exchange rate for one epoch.
type RateData struct {
	IdentityKey           string
	EpochIndex            uint64
	ValidatorRewardRate   uint64
	ValidatorExchangeRate uint64
}

// LifecycleState mirrors validator.State without importing the validator
// package, keeping ratemath dependency-free and independently testable.
// Only the tag matters here, never the associated data (e.g. the unbonding
// epoch carried by the real Unbonding state).
type LifecycleState int

const (
	StateInactive LifecycleState = iota
	StateActive
	StateUnbonding
	StateSlashed
)

// Next computes the rate data for the following epoch. Validators that are
// not Active simply carry their rates forward unchanged other than the
// epoch index; Active validators recompute both rates from the chain's
// next base rate and the validator's commission (funding stream) total.
func (r RateData) Next(nextBase BaseRateData, streamRateBps uint64, state LifecycleState) RateData {
	if state != StateActive {
		return RateData{
			IdentityKey:           r.IdentityKey,
			EpochIndex:            r.EpochIndex + 1,
			ValidatorRewardRate:   r.ValidatorRewardRate,
			ValidatorExchangeRate: r.ValidatorExchangeRate,
		}
	}
	if streamRateBps > BpsDenom {
		panic("ratemath: funding stream commission exceeds 10000bps")
	}

	// validator_reward_rate = (1e8 - commission_bps*1e4) * base_reward_rate / 1e8
	commissionFixed := new(big.Int).Mul(big.NewInt(int64(streamRateBps)), big.NewInt(BpsDenom))
	factor := new(big.Int).Sub(big.NewInt(FixedPointScale), commissionFixed)
	rewardRate := new(big.Int).Mul(factor, big.NewInt(int64(nextBase.BaseRewardRate)))
	rewardRate.Div(rewardRate, big.NewInt(FixedPointScale))

	// validator_exchange_rate = prev_exchange_rate * (prev_reward_rate + 1e8) / 1e8
	exchangeRate := new(big.Int).SetUint64(r.ValidatorExchangeRate)
	exchangeRate.Mul(exchangeRate, new(big.Int).Add(big.NewInt(int64(r.ValidatorRewardRate)), big.NewInt(FixedPointScale)))
	exchangeRate.Div(exchangeRate, big.NewInt(FixedPointScale))

	return RateData{
		IdentityKey:           r.IdentityKey,
		EpochIndex:            r.EpochIndex + 1,
		ValidatorRewardRate:   mustUint64(rewardRate),
		ValidatorExchangeRate: mustUint64(exchangeRate),
	}
}

// Slash reduces the validator reward rate by a penalty expressed in basis
// points, applied immediately (not at the next epoch boundary). Saturates at
// zero rather than underflowing.
func (r RateData) Slash(penaltyBps uint64) RateData {
	reduction := new(big.Int).Mul(big.NewInt(int64(r.ValidatorRewardRate)), big.NewInt(int64(penaltyBps)))
	reduction.Div(reduction, big.NewInt(FixedPointScale))
	next := new(big.Int).SetUint64(r.ValidatorRewardRate)
	next.Sub(next, reduction)
	if next.Sign() < 0 {
		next.SetUint64(0)
	}
	out := r
	out.ValidatorRewardRate = mustUint64(next)
	return out
}

// DelegationAmount converts an unbonded-stake amount into the equivalent
// amount of delegation tokens at this rate. Not the inverse of
// UnbondedAmount due to truncating division.
func (r RateData) DelegationAmount(unbonded uint64) uint64 {
	v := new(big.Int).SetUint64(unbonded)
	v.Mul(v, big.NewInt(FixedPointScale))
	v.Div(v, new(big.Int).SetUint64(r.ValidatorExchangeRate))
	return mustUint64(v)
}

// UnbondedAmount converts a delegation-token amount into the equivalent
// unbonded-stake amount at this rate.
func (r RateData) UnbondedAmount(delegation uint64) uint64 {
	v := new(big.Int).SetUint64(delegation)
	v.Mul(v, new(big.Int).SetUint64(r.ValidatorExchangeRate))
	v.Div(v, big.NewInt(FixedPointScale))
	return mustUint64(v)
}

// VotingPower computes the consensus voting power contributed by a
// delegation-token supply, normalized by the chain's base exchange rate.
// Multiplication happens strictly before division, per the fixed-point
// design rule: delegation_supply * exchange_rate / base_exchange_rate.
func (r RateData) VotingPower(delegationSupply uint64, base BaseRateData) uint64 {
	if base.BaseExchangeRate == 0 {
		return 0
	}
	v := new(big.Int).SetUint64(delegationSupply)
	v.Mul(v, new(big.Int).SetUint64(r.ValidatorExchangeRate))
	v.Div(v, new(big.Int).SetUint64(base.BaseExchangeRate))
	return mustUint64(v)
}

func mustUint64(v *big.Int) uint64 {
	if v.Sign() < 0 {
		panic("ratemath: negative fixed-point result")
	}
	if !v.IsUint64() {
		panic("ratemath: fixed-point result overflows uint64")
	}
	return v.Uint64()
}
