// Package validator implements the per-block and per-epoch validator
// lifecycle: ingesting validator definitions, resolving conflicts
// deterministically, applying state transitions, and driving the epoch-end
// reward/exchange rate and voting-power recomputation via core/ratemath.
package validator

import (
	"shieldstake/core/ratemath"
	"shieldstake/crypto"
)

// Epoch is a fixed span of blocks. Rate updates and state transitions
// crystallize at its boundary.
type Epoch struct {
	Index    uint64
	Duration uint64
}

// Next returns the following epoch.
func (e Epoch) Next() Epoch {
	return Epoch{Index: e.Index + 1, Duration: e.Duration}
}

// State is the validator lifecycle's tagged variant. Unbonding carries the
// epoch at which the validator finishes unbonding back to Inactive.
type State struct {
	Tag             Tag
	UnbondingEpoch  uint64
}

// Tag enumerates the lifecycle states without their associated data.
type Tag int

const (
	Inactive Tag = iota
	Active
	Unbonding
	Slashed
)

func (t Tag) String() string {
	switch t {
	case Inactive:
		return "INACTIVE"
	case Active:
		return "ACTIVE"
	case Unbonding:
		return "UNBONDING"
	case Slashed:
		return "SLASHED"
	default:
		return "UNKNOWN"
	}
}

// RateState adapts a validator's lifecycle Tag to the ratemath package's
// LifecycleState enum, since RateData.Next only cares whether a validator
// is Active.
func (s State) RateState() ratemath.LifecycleState {
	if s.Tag == Active {
		return ratemath.StateActive
	}
	return ratemath.LifecycleState(s.Tag)
}

// FundingStream is a commission route: {recipient_address, rate_bps}.
type FundingStream struct {
	Recipient crypto.Address
	RateBps   uint64
}

// Definition is a validator's declarative configuration, authenticated by
// AuthSig and ordered by SequenceNumber for conflict resolution.
type Definition struct {
	IdentityKey    crypto.IdentityKey
	ConsensusKey   []byte // opaque consensus-engine public key bytes
	FundingStreams []FundingStream
	SequenceNumber uint64
	AuthSig        []byte
}

// Status is the consensus-facing view of a validator: its reported voting
// power and lifecycle state.
type Status struct {
	IdentityKey crypto.IdentityKey
	VotingPower uint64
	State       State
}

// Info is everything known about one validator: its definition, consensus
// status, and current rate data.
type Info struct {
	Validator Definition
	Status    Status
	RateData  ratemath.RateData
}

// Clone returns a deep-enough copy of Info for accumulator bookkeeping —
// slices are copied, not shared.
func (i Info) Clone() Info {
	streams := append([]FundingStream(nil), i.Validator.FundingStreams...)
	def := i.Validator
	def.FundingStreams = streams
	def.ConsensusKey = append([]byte(nil), i.Validator.ConsensusKey...)
	def.AuthSig = append([]byte(nil), i.Validator.AuthSig...)
	return Info{Validator: def, Status: i.Status, RateData: i.RateData}
}

// TmValidatorUpdate is the consensus-engine-facing {consensus_key, power}
// pair emitted after end_block.
type TmValidatorUpdate struct {
	ConsensusKey []byte
	Power        uint64
}

// SupplyUpdate records a delegation-token supply change to persist.
type SupplyUpdate struct {
	AssetID [32]byte
	Denom   string
	Supply  uint64
}

// RewardNote is a commission payout emitted to a funding stream recipient
// at an epoch boundary.
type RewardNote struct {
	IdentityKey crypto.IdentityKey
	Recipient   crypto.Address
	Amount      uint64
}
