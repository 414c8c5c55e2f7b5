package ratemath

import "math/big"

// FundingStream is a commission route: a fraction of an Active validator's
// rewards paid to a fixed recipient address.
type FundingStream struct {
	Address   string
	RateBps   uint64
}

// RewardNote is a single commission payout produced for one funding stream
// at one epoch boundary.
type RewardNote struct {
	Address string
	Amount  uint64
}

// ValidateFundingStreams checks that a validator's funding streams sum to at
// most BpsDenom (100%). Definitions with a higher total must be rejected
// before they ever reach RateData.Next.
func ValidateFundingStreams(streams []FundingStream) error {
	total := uint64(0)
	for _, s := range streams {
		total += s.RateBps
	}
	if total > BpsDenom {
		return errFundingStreamsExceedCap
	}
	return nil
}

// TotalRateBps sums the commission rate across a validator's funding
// streams. Callers must validate the total with ValidateFundingStreams
// before passing it into RateData.Next, which panics on overflow instead.
func TotalRateBps(streams []FundingStream) uint64 {
	total := uint64(0)
	for _, s := range streams {
		total += s.RateBps
	}
	return total
}

// RewardAmount computes one funding stream's commission payout for an epoch,
// proportional to the stream's share of the validator's delegation-token
// supply and to the epoch's base-rate delta. The exact distribution formula
// is implementation-defined by spec; this module defines it as:
//
//	reward = supply * stream_rate_bps * (next_base_reward_rate - cur_base_reward_rate) / (1e8 * 1e4)
//
// widened through big.Int the way a fixed-point APR computation would be,
// truncating rather than rounding.
func (s FundingStream) RewardAmount(supply uint64, nextBase, curBase BaseRateData) uint64 {
	if nextBase.BaseRewardRate <= curBase.BaseRewardRate {
		return 0
	}
	delta := nextBase.BaseRewardRate - curBase.BaseRewardRate

	amount := new(big.Int).SetUint64(supply)
	amount.Mul(amount, new(big.Int).SetUint64(s.RateBps))
	amount.Mul(amount, new(big.Int).SetUint64(delta))

	denom := new(big.Int).Mul(big.NewInt(FixedPointScale), big.NewInt(BpsDenom))
	amount.Div(amount, denom)
	return mustUint64(amount)
}
