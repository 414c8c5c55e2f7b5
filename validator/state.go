package validator

import "shieldstake/crypto"

// activate transitions a validator into Active. Preconditions: current
// state is Inactive or Unbonding.
func activate(info Info) (Info, error) {
	if info.Status.State.Tag != Inactive && info.Status.State.Tag != Unbonding {
		return info, transitionErr(info, Active)
	}
	info.Status.State = State{Tag: Active}
	return info, nil
}

// unbond transitions an Active validator into Unbonding, zeroing its
// reported voting power and recording the epoch at which unbonding
// completes.
func unbond(info Info, unbondingEpoch uint64) (Info, error) {
	if info.Status.State.Tag != Active {
		return info, transitionErr(info, Unbonding)
	}
	info.Status.State = State{Tag: Unbonding, UnbondingEpoch: unbondingEpoch}
	info.Status.VotingPower = 0
	return info, nil
}

// deactivate transitions an Unbonding validator back to Inactive once its
// unbonding epoch has passed.
func deactivate(info Info) (Info, error) {
	if info.Status.State.Tag != Unbonding {
		return info, transitionErr(info, Inactive)
	}
	info.Status.State = State{Tag: Inactive}
	return info, nil
}

// slash transitions an Active or Unbonding validator into the terminal
// Slashed state, applying the penalty to its rate data immediately.
func slash(info Info, penaltyBps uint64) (Info, error) {
	if info.Status.State.Tag != Active && info.Status.State.Tag != Unbonding {
		return info, transitionErr(info, Slashed)
	}
	info.Status.State = State{Tag: Slashed}
	info.Status.VotingPower = 0
	info.RateData = info.RateData.Slash(penaltyBps)
	return info, nil
}

func transitionErr(info Info, to Tag) error {
	return &InvalidTransitionError{
		Identity: identityString(info.Validator.IdentityKey),
		From:     info.Status.State.Tag,
		To:       to,
	}
}

func identityString(k crypto.IdentityKey) string {
	return k.String()
}
