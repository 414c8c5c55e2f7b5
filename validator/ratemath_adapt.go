package validator

import "shieldstake/core/ratemath"

// toRateStreams adapts the validator package's FundingStream (which carries
// a structured crypto.Address recipient) into ratemath's FundingStream
// (which only needs the commission rate and an opaque address label).
func toRateStreams(streams []FundingStream) []ratemath.FundingStream {
	out := make([]ratemath.FundingStream, len(streams))
	for i, s := range streams {
		out[i] = ratemath.FundingStream{Address: s.Recipient.String(), RateBps: s.RateBps}
	}
	return out
}

// TotalRateBps sums the commission rate across a validator's funding
// streams.
func TotalRateBps(streams []FundingStream) uint64 {
	return ratemath.TotalRateBps(toRateStreams(streams))
}
