package validator

import "shieldstake/crypto"

// NewSelfValidatorDefinition builds a Definition for an operator's own
// validator from a loaded or freshly generated consensus key pair, deriving
// the opaque ConsensusKey bytes from its public key rather than requiring
// the caller to encode them by hand.
func NewSelfValidatorDefinition(identity crypto.IdentityKey, consensusKey *crypto.PrivateKey, sequenceNumber uint64, authSig []byte, streams []FundingStream) Definition {
	return Definition{
		IdentityKey:    identity,
		ConsensusKey:   consensusKey.PubKey().Bytes(),
		FundingStreams: streams,
		SequenceNumber: sequenceNumber,
		AuthSig:        authSig,
	}
}

// SelfBondedFundingStream builds a FundingStream that routes commission back
// to the validator's own bonded address, derived from its consensus public
// key, rather than to an external liquid payout account.
func SelfBondedFundingStream(consensusKey *crypto.PrivateKey, rateBps uint64) FundingStream {
	return FundingStream{
		Recipient: consensusKey.PubKey().BondedAddress(),
		RateBps:   rateBps,
	}
}
