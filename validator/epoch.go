package validator

import (
	"fmt"
	"sort"
	"time"

	"shieldstake/core/asset"
	"shieldstake/core/events"
	"shieldstake/core/ratemath"
	"shieldstake/crypto"
	"shieldstake/observability"
)

// StakingTokenAssetID is the asset identifier of the chain's native
// staking token, used to look up the chain-wide staking-token supply at
// each epoch boundary.
func StakingTokenAssetID() [32]byte {
	return asset.StakingTokenDenom().Id()
}

// EndEpoch runs the epoch-end processing described in SPEC_FULL.md §4.3:
// it recomputes the base rate, merges delegation changes, recomputes each
// validator's rate data, supply, and voting power, emits reward notes for
// Active validators, and finally runs the activation/unbonding/
// deactivation transitions for the next epoch.
func (s *Set) EndEpoch() error {
	start := time.Now()
	defer func() { observability.Epoch().ObserveDuration(time.Since(start)) }()

	prevEpoch := s.currentEpoch
	nextEpochIndex := prevEpoch.Index + 1

	currentBaseRate, err := s.reader.BaseRateData(prevEpoch.Index)
	if err != nil {
		return fmt.Errorf("validator: read base rate: %w", err)
	}
	nextBaseRate := currentBaseRate.Next(ratemath.BaseRewardRate)

	stakingAssetID := StakingTokenAssetID()
	stakingInfo, err := s.reader.AssetLookup(stakingAssetID)
	if err != nil {
		return fmt.Errorf("validator: lookup staking token supply: %w", err)
	}
	stakingSupply := uint64(0)
	if stakingInfo != nil {
		stakingSupply = stakingInfo.TotalSupply
	}

	committedChanges, err := s.reader.DelegationChanges(prevEpoch.Index)
	if err != nil {
		return fmt.Errorf("validator: read delegation changes: %w", err)
	}
	merged := make(map[crypto.IdentityKey]int64, len(committedChanges)+len(s.delegationChanges))
	for id, d := range committedChanges {
		merged[id] += d
	}
	for id, d := range s.delegationChanges {
		merged[id] += d
	}

	nextRates := make(map[crypto.IdentityKey]ratemath.RateData, len(s.validators))

	for _, identity := range s.Identities() {
		info := s.validators[identity]

		streams, err := s.reader.FundingStreams(identity)
		if err != nil {
			return fmt.Errorf("validator: read funding streams for %s: %w", identity, err)
		}
		commissionBps := TotalRateBps(streams)

		nextRate := info.RateData.Next(nextBaseRate, commissionBps, info.Status.State.RateState())

		delegationDenom := asset.DelegationDenom(identity.String())
		delegationAssetID := delegationDenom.Id()
		delegationInfo, err := s.reader.AssetLookup(delegationAssetID)
		if err != nil {
			return fmt.Errorf("validator: lookup delegation supply for %s: %w", identity, err)
		}
		delegationSupply := uint64(0)
		if delegationInfo != nil {
			delegationSupply = delegationInfo.TotalSupply
		}

		if delta, ok := merged[identity]; ok && delta != 0 {
			amount := delta
			if amount < 0 {
				amount = -amount
			}
			unbonded := info.RateData.UnbondedAmount(uint64(amount))
			switch {
			case delta > 0:
				if unbonded > stakingSupply {
					panic("validator: staking supply underflow during epoch-end netting")
				}
				stakingSupply -= unbonded
				delegationSupply += uint64(amount)
			case delta < 0:
				stakingSupply += unbonded
				if uint64(amount) > delegationSupply {
					panic("validator: delegation supply underflow during epoch-end netting")
				}
				delegationSupply -= uint64(amount)
			}
		}

		s.supplyUpdates = append(s.supplyUpdates, SupplyUpdate{
			AssetID: delegationAssetID,
			Denom:   delegationDenom.Base,
			Supply:  delegationSupply,
		})

		info.Status.VotingPower = nextRate.VotingPower(delegationSupply, nextBaseRate)
		observability.Validator().SetVotingPower(identity.String(), info.Status.VotingPower)

		if info.Status.State.Tag == Active {
			rateStreams := toRateStreams(streams)
			for i, stream := range streams {
				amount := rateStreams[i].RewardAmount(delegationSupply, nextBaseRate, currentBaseRate)
				if amount == 0 {
					continue
				}
				s.rewardNotes = append(s.rewardNotes, RewardNote{
					IdentityKey: identity,
					Recipient:   stream.Recipient,
					Amount:      amount,
				})
				observability.Epoch().RecordRewardNote(identity.String())
				s.emit.Emit(events.RewardNoteIssued{
					Identity:  identity.String(),
					Recipient: stream.Recipient.String(),
					Amount:    amount,
				})
			}
		}

		info.RateData = nextRate
		s.validators[identity] = info
		nextRates[identity] = nextRate
	}

	s.supplyUpdates = append(s.supplyUpdates, SupplyUpdate{
		AssetID: stakingAssetID,
		Denom:   asset.StakingTokenDenom().Base,
		Supply:  stakingSupply,
	})

	nextEpoch := Epoch{Index: nextEpochIndex, Duration: prevEpoch.Duration}
	if err := s.processEpochTransitions(nextEpoch); err != nil {
		return err
	}
	observability.Epoch().SetActiveValidators(s.activeCount())

	s.nextBaseRate = &nextBaseRate
	s.nextRates = nextRates
	return nil
}

// activeCount returns the number of validators currently in the Active state.
func (s *Set) activeCount() int {
	n := 0
	for _, info := range s.validators {
		if info.Status.State.Tag == Active {
			n++
		}
	}
	return n
}

// delegationSupplyOf returns the currently known delegation-token supply
// for a validator, consulting the accumulated supply updates produced
// earlier in EndEpoch.
func (s *Set) delegationSupplyOf(identity crypto.IdentityKey) uint64 {
	assetID := asset.DelegationDenom(identity.String()).Id()
	for i := len(s.supplyUpdates) - 1; i >= 0; i-- {
		if s.supplyUpdates[i].AssetID == assetID {
			return s.supplyUpdates[i].Supply
		}
	}
	return 0
}

// processEpochTransitions implements SPEC_FULL.md §4.3's resolution of the
// ascending-sort-then-take open question: validators are sorted by
// descending voting power and the active_validator_limit strongest become
// (or remain) the activation target set.
func (s *Set) processEpochTransitions(nextEpoch Epoch) error {
	identities := s.Identities()
	sort.Slice(identities, func(i, j int) bool {
		pi := s.validators[identities[i]].Status.VotingPower
		pj := s.validators[identities[j]].Status.VotingPower
		if pi == pj {
			return identities[i].Less(identities[j])
		}
		return pi > pj
	})

	limit := s.params.ActiveValidatorLimit
	topN := make(map[crypto.IdentityKey]bool, limit)
	for i, id := range identities {
		if uint64(i) >= limit {
			break
		}
		topN[id] = true
	}

	for _, identity := range identities {
		info := s.validators[identity]
		switch info.Status.State.Tag {
		case Inactive, Unbonding:
			if topN[identity] && s.delegationSupplyOf(identity) > 0 {
				updated, err := activate(info)
				if err != nil {
					return err
				}
				s.validators[identity] = updated
				observability.Epoch().RecordTransition(info.Status.State.Tag.String(), Active.String())
				s.emit.Emit(events.ValidatorActivated{Identity: identity.String(), Epoch: nextEpoch.Index})
			}
		case Active:
			if !topN[identity] {
				updated, err := unbond(info, nextEpoch.Index+s.params.UnbondingEpochs)
				if err != nil {
					return err
				}
				s.validators[identity] = updated
				observability.Epoch().RecordTransition(Active.String(), Unbonding.String())
				s.emit.Emit(events.ValidatorUnbonding{Identity: identity.String(), UnbondingEpoch: updated.Status.State.UnbondingEpoch})
			}
		}
		// Re-read in case the Active branch above changed the state.
		info = s.validators[identity]
		if info.Status.State.Tag == Unbonding && info.Status.State.UnbondingEpoch <= nextEpoch.Index {
			updated, err := deactivate(info)
			if err != nil {
				return err
			}
			s.validators[identity] = updated
			observability.Epoch().RecordTransition(Unbonding.String(), Inactive.String())
			s.emit.Emit(events.ValidatorDeactivated{Identity: identity.String()})
		}
	}
	return nil
}

// Slash slashes a validator immediately: Active or Unbonding only.
func (s *Set) Slash(identity crypto.IdentityKey, penaltyBps uint64) error {
	info, ok := s.validators[identity]
	if !ok {
		return ErrValidatorNotFound
	}
	updated, err := slash(info, penaltyBps)
	if err != nil {
		return err
	}
	s.validators[identity] = updated
	s.slashedValidators = append(s.slashedValidators, identity)
	observability.Epoch().RecordTransition(info.Status.State.Tag.String(), Slashed.String())
	s.emit.Emit(events.ValidatorSlashed{Identity: identity.String(), PenaltyBps: penaltyBps})
	return nil
}
