package validator

import (
	"fmt"
	"sort"

	"shieldstake/config"
	"shieldstake/core/events"
	"shieldstake/core/ratemath"
	"shieldstake/crypto"
)

// Set owns the in-memory projection of validator state for the current
// block, a reference to a read-only Reader for previously committed state,
// and the per-block/per-epoch accumulators described in SPEC_FULL.md §3.
type Set struct {
	reader Reader
	params config.ChainParams
	emit   events.Emitter

	validators map[crypto.IdentityKey]Info

	// per-block accumulators, cleared at CommitBlock.
	newValidators       []crypto.IdentityKey
	updatedValidators   []crypto.IdentityKey
	slashedValidators   []crypto.IdentityKey
	delegationChanges   map[crypto.IdentityKey]int64
	tmValidatorUpdates  []TmValidatorUpdate
	rewardNotes         []RewardNote
	supplyUpdates       []SupplyUpdate
	validatorDefinitions map[crypto.IdentityKey][]Definition

	// epoch-scoped accumulators, cleared only when the epoch index advances.
	currentEpoch Epoch
	nextBaseRate *ratemath.BaseRateData
	nextRates    map[crypto.IdentityKey]ratemath.RateData
}

// New constructs a Set for the given block's starting epoch, projecting
// validator state from the Reader.
func New(reader Reader, epoch Epoch, emit events.Emitter) (*Set, error) {
	if emit == nil {
		emit = events.NoopEmitter{}
	}
	params, err := reader.ChainParams()
	if err != nil {
		return nil, fmt.Errorf("validator: load chain params: %w", err)
	}
	infos, err := reader.ValidatorInfo(true)
	if err != nil {
		return nil, fmt.Errorf("validator: load validator info: %w", err)
	}
	validators := make(map[crypto.IdentityKey]Info, len(infos))
	for _, info := range infos {
		validators[info.Validator.IdentityKey] = info
	}
	return &Set{
		reader:               reader,
		params:               params,
		emit:                 emit,
		validators:           validators,
		delegationChanges:    make(map[crypto.IdentityKey]int64),
		validatorDefinitions: make(map[crypto.IdentityKey][]Definition),
		currentEpoch:         epoch,
	}, nil
}

// Get returns the known Info for an identity key, if any.
func (s *Set) Get(identity crypto.IdentityKey) (Info, bool) {
	info, ok := s.validators[identity]
	return info, ok
}

// Identities returns every known identity key in deterministic order.
func (s *Set) Identities() []crypto.IdentityKey {
	out := make([]crypto.IdentityKey, 0, len(s.validators))
	for k := range s.validators {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// AddValidatorDefinition appends a definition to the block's pending set.
// Definitions are assumed to have already passed stateless and stateful
// verification externally.
func (s *Set) AddValidatorDefinition(def Definition) {
	s.validatorDefinitions[def.IdentityKey] = append(s.validatorDefinitions[def.IdentityKey], def)
}

// UpdateDelegations merges a map of per-identity signed deltas into the
// block's delegation-change accumulator.
func (s *Set) UpdateDelegations(delta map[crypto.IdentityKey]int64) {
	for id, d := range delta {
		s.delegationChanges[id] += d
	}
}

// TmValidatorUpdates returns the block's accumulated consensus-engine
// validator power updates (populated by EndBlock).
func (s *Set) TmValidatorUpdates() []TmValidatorUpdate {
	return append([]TmValidatorUpdate(nil), s.tmValidatorUpdates...)
}

// SupplyUpdates returns the block's accumulated supply updates.
func (s *Set) SupplyUpdates() []SupplyUpdate {
	return append([]SupplyUpdate(nil), s.supplyUpdates...)
}

// RewardNotes returns the block's accumulated reward notes.
func (s *Set) RewardNotes() []RewardNote {
	return append([]RewardNote(nil), s.rewardNotes...)
}

// NewValidators returns identities added for the first time this block.
func (s *Set) NewValidators() []crypto.IdentityKey {
	return append([]crypto.IdentityKey(nil), s.newValidators...)
}

// UpdatedValidators returns identities whose definition was replaced this
// block.
func (s *Set) UpdatedValidators() []crypto.IdentityKey {
	return append([]crypto.IdentityKey(nil), s.updatedValidators...)
}

// SlashedValidators returns identities slashed this block.
func (s *Set) SlashedValidators() []crypto.IdentityKey {
	return append([]crypto.IdentityKey(nil), s.slashedValidators...)
}

// NextBaseRate returns the base rate computed by the most recent EndEpoch
// call within the current epoch, if any.
func (s *Set) NextBaseRate() (ratemath.BaseRateData, bool) {
	if s.nextBaseRate == nil {
		return ratemath.BaseRateData{}, false
	}
	return *s.nextBaseRate, true
}

// NextRates returns the per-validator rate data computed by the most
// recent EndEpoch call within the current epoch.
func (s *Set) NextRates() map[crypto.IdentityKey]ratemath.RateData {
	out := make(map[crypto.IdentityKey]ratemath.RateData, len(s.nextRates))
	for k, v := range s.nextRates {
		out[k] = v
	}
	return out
}

// CommitBlock clears per-block accumulators, and epoch-scoped accumulators
// too if newEpoch's index differs from the set's current epoch.
func (s *Set) CommitBlock(newEpoch Epoch) {
	s.newValidators = nil
	s.updatedValidators = nil
	s.slashedValidators = nil
	s.delegationChanges = make(map[crypto.IdentityKey]int64)
	s.tmValidatorUpdates = nil
	s.rewardNotes = nil
	s.supplyUpdates = nil
	s.validatorDefinitions = make(map[crypto.IdentityKey][]Definition)

	if newEpoch.Index != s.currentEpoch.Index {
		s.nextBaseRate = nil
		s.nextRates = nil
	}
	s.currentEpoch = newEpoch
}
