package validator

import (
	"bytes"
	"sort"

	"shieldstake/core/events"
	"shieldstake/core/ratemath"
	"shieldstake/crypto"
	"shieldstake/observability"
)

// EndBlock resolves conflicting validator definitions submitted this block,
// applies the winning definitions, and produces the consensus-engine's
// full validator-power update list.
func (s *Set) EndBlock(epoch Epoch) ([]TmValidatorUpdate, error) {
	for _, identity := range sortedDefinitionKeys(s.validatorDefinitions) {
		winner := resolveDefinitionConflict(s.validatorDefinitions[identity])
		s.applyDefinition(winner)
	}

	updates := make([]TmValidatorUpdate, 0, len(s.validators))
	for _, identity := range s.Identities() {
		info := s.validators[identity]
		power := uint64(0)
		if info.Status.State.Tag == Active {
			power = info.Status.VotingPower
		}
		updates = append(updates, TmValidatorUpdate{
			ConsensusKey: append([]byte(nil), info.Validator.ConsensusKey...),
			Power:        power,
		})
	}
	s.tmValidatorUpdates = updates
	return s.TmValidatorUpdates(), nil
}

// resolveDefinitionConflict implements the deterministic conflict
// resolution procedure from SPEC_FULL.md §4.3: group by sequence number,
// take the highest bucket, then the ascending-byte-sorted first auth_sig.
func resolveDefinitionConflict(defs []Definition) Definition {
	if len(defs) == 1 {
		return defs[0]
	}
	observability.Validator().RecordDefinitionConflict(defs[0].IdentityKey.String())
	buckets := make(map[uint64][]Definition)
	highest := defs[0].SequenceNumber
	for _, d := range defs {
		buckets[d.SequenceNumber] = append(buckets[d.SequenceNumber], d)
		if d.SequenceNumber > highest {
			highest = d.SequenceNumber
		}
	}
	bucket := buckets[highest]
	sort.Slice(bucket, func(i, j int) bool {
		return bytes.Compare(bucket[i].AuthSig, bucket[j].AuthSig) < 0
	})
	return bucket[0]
}

func sortedDefinitionKeys(m map[crypto.IdentityKey][]Definition) []crypto.IdentityKey {
	out := make([]crypto.IdentityKey, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// applyDefinition installs the winning definition for an identity key,
// either updating an existing ValidatorInfo's configuration (preserving
// status and rate data) or creating a fresh Inactive one.
func (s *Set) applyDefinition(def Definition) {
	if existing, ok := s.validators[def.IdentityKey]; ok {
		existing.Validator = def
		s.validators[def.IdentityKey] = existing
		s.updatedValidators = append(s.updatedValidators, def.IdentityKey)
		s.emit.Emit(events.ValidatorDefinitionUpdated{Identity: def.IdentityKey.String()})
		return
	}
	info := Info{
		Validator: def,
		Status: Status{
			IdentityKey: def.IdentityKey,
			VotingPower: 0,
			State:       State{Tag: Inactive},
		},
		RateData: ratemath.RateData{
			IdentityKey:           def.IdentityKey.String(),
			ValidatorRewardRate:   0,
			ValidatorExchangeRate: ratemath.FixedPointScale,
		},
	}
	s.validators[def.IdentityKey] = info
	s.newValidators = append(s.newValidators, def.IdentityKey)
	s.emit.Emit(events.ValidatorDefinitionAdded{Identity: def.IdentityKey.String()})
}
