package validator

import (
	"math/big"

	"shieldstake/core/asset"
	"shieldstake/crypto"
	"shieldstake/shielded"
)

// Undelegate is a transaction action withdrawing stake from a validator's
// delegation pool. The unbonding period has already elapsed by the time
// this action is constructed; it converts delegation tokens back into the
// staking token at the validator's exchange rate for the named epoch.
type Undelegate struct {
	ValidatorIdentity crypto.IdentityKey
	EpochIndex        uint64
	UnbondedAmount    uint64
	DelegationAmount  uint64
}

// ValueCommitment computes a commitment to the value this undelegation
// contributes to a transaction's balance: it consumes delegation tokens
// and produces staking tokens, so the commitment is the staking-token
// commitment minus the delegation-token commitment.
func (u Undelegate) ValueCommitment() shielded.Element {
	zero := shielded.NewScalar(big.NewInt(0))

	stake := shielded.Value{
		Amount:  u.UnbondedAmount,
		AssetID: asset.StakingTokenDenom().Id(),
	}
	delegation := shielded.Value{
		Amount:  u.DelegationAmount,
		AssetID: asset.DelegationDenom(u.ValidatorIdentity.String()).Id(),
	}

	return stake.Commit(zero).Add(delegation.Commit(zero).Negate())
}
