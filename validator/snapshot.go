package validator

import (
	"github.com/ethereum/go-ethereum/rlp"

	"shieldstake/core/ratemath"
)

// EpochSnapshot is the persisted record of one epoch's base rate and
// per-validator voting power, written by the Reader's backing store after
// EndEpoch so downstream queries (and state sync) can replay history
// without recomputing it. RLP gives a compact, deterministic encoding
// consistent with the rest of the module's use of go-ethereum primitives.
type EpochSnapshot struct {
	EpochIndex   uint64
	BaseRate     ratemath.BaseRateData
	VotingPowers []ValidatorVotingPower
}

// ValidatorVotingPower pairs a validator identity with its reported
// voting power at a snapshot epoch boundary.
type ValidatorVotingPower struct {
	IdentityKey [32]byte
	Power       uint64
}

// Snapshot captures the current epoch's base rate and voting-power
// distribution from a Set, in deterministic identity-key order.
func (s *Set) Snapshot() EpochSnapshot {
	base, _ := s.NextBaseRate()
	powers := make([]ValidatorVotingPower, 0, len(s.validators))
	for _, identity := range s.Identities() {
		powers = append(powers, ValidatorVotingPower{
			IdentityKey: identity,
			Power:       s.validators[identity].Status.VotingPower,
		})
	}
	return EpochSnapshot{
		EpochIndex:   s.currentEpoch.Index,
		BaseRate:     base,
		VotingPowers: powers,
	}
}

// Encode renders a snapshot as RLP for persistence.
func (snap EpochSnapshot) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(snap)
}

// DecodeEpochSnapshot parses a previously-encoded snapshot.
func DecodeEpochSnapshot(data []byte) (EpochSnapshot, error) {
	var snap EpochSnapshot
	if err := rlp.DecodeBytes(data, &snap); err != nil {
		return EpochSnapshot{}, err
	}
	return snap, nil
}
