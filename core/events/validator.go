package events

import (
	"strconv"

	"shieldstake/core/types"
)

const (
	TypeValidatorDefinitionAdded   = "validator.definition_added"
	TypeValidatorDefinitionUpdated = "validator.definition_updated"
	TypeValidatorActivated         = "validator.activated"
	TypeValidatorUnbonding         = "validator.unbonding"
	TypeValidatorDeactivated       = "validator.deactivated"
	TypeValidatorSlashed           = "validator.slashed"
	TypeRewardNoteIssued           = "validator.reward_note_issued"
)

// ValidatorDefinitionAdded signals a brand-new validator identity was
// accepted into the set.
type ValidatorDefinitionAdded struct {
	Identity string
}

func (ValidatorDefinitionAdded) EventType() string { return TypeValidatorDefinitionAdded }

func (e ValidatorDefinitionAdded) Event() *types.Event {
	return &types.Event{Type: TypeValidatorDefinitionAdded, Attributes: map[string]string{"identity": e.Identity}}
}

// ValidatorDefinitionUpdated signals an existing validator's configuration
// was replaced.
type ValidatorDefinitionUpdated struct {
	Identity string
}

func (ValidatorDefinitionUpdated) EventType() string { return TypeValidatorDefinitionUpdated }

func (e ValidatorDefinitionUpdated) Event() *types.Event {
	return &types.Event{Type: TypeValidatorDefinitionUpdated, Attributes: map[string]string{"identity": e.Identity}}
}

// ValidatorActivated signals a validator entered the Active state.
type ValidatorActivated struct {
	Identity string
	Epoch    uint64
}

func (ValidatorActivated) EventType() string { return TypeValidatorActivated }

func (e ValidatorActivated) Event() *types.Event {
	return &types.Event{Type: TypeValidatorActivated, Attributes: map[string]string{
		"identity": e.Identity,
		"epoch":    strconv.FormatUint(e.Epoch, 10),
	}}
}

// ValidatorUnbonding signals a validator left the Active state and began
// unbonding.
type ValidatorUnbonding struct {
	Identity       string
	UnbondingEpoch uint64
}

func (ValidatorUnbonding) EventType() string { return TypeValidatorUnbonding }

func (e ValidatorUnbonding) Event() *types.Event {
	return &types.Event{Type: TypeValidatorUnbonding, Attributes: map[string]string{
		"identity":        e.Identity,
		"unbonding_epoch": strconv.FormatUint(e.UnbondingEpoch, 10),
	}}
}

// ValidatorDeactivated signals a validator finished unbonding back to
// Inactive.
type ValidatorDeactivated struct {
	Identity string
}

func (ValidatorDeactivated) EventType() string { return TypeValidatorDeactivated }

func (e ValidatorDeactivated) Event() *types.Event {
	return &types.Event{Type: TypeValidatorDeactivated, Attributes: map[string]string{"identity": e.Identity}}
}

// ValidatorSlashed signals a validator was slashed and transitioned to the
// terminal Slashed state.
type ValidatorSlashed struct {
	Identity   string
	PenaltyBps uint64
}

func (ValidatorSlashed) EventType() string { return TypeValidatorSlashed }

func (e ValidatorSlashed) Event() *types.Event {
	return &types.Event{Type: TypeValidatorSlashed, Attributes: map[string]string{
		"identity":    e.Identity,
		"penalty_bps": strconv.FormatUint(e.PenaltyBps, 10),
	}}
}

// RewardNoteIssued signals a commission payout was produced for a funding
// stream recipient at an epoch boundary.
type RewardNoteIssued struct {
	Identity  string
	Recipient string
	Amount    uint64
}

func (RewardNoteIssued) EventType() string { return TypeRewardNoteIssued }

func (e RewardNoteIssued) Event() *types.Event {
	return &types.Event{Type: TypeRewardNoteIssued, Attributes: map[string]string{
		"identity":  e.Identity,
		"recipient": e.Recipient,
		"amount":    strconv.FormatUint(e.Amount, 10),
	}}
}
