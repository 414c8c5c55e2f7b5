package validator

import (
	"shieldstake/config"
	"shieldstake/core/chainmeta"
	"shieldstake/core/ratemath"
	"shieldstake/crypto"
)

// Reader is the read-only view over previously committed chain state that
// ValidatorSet consults. Its implementation — the persistent store — is an
// external collaborator out of scope for this module.
type Reader interface {
	ValidatorInfo(includeInactive bool) ([]Info, error)
	ChainParams() (config.ChainParams, error)
	BaseRateData(epochIndex uint64) (ratemath.BaseRateData, error)
	AssetLookup(assetID [32]byte) (*chainmeta.AssetInfo, error)
	FundingStreams(identity crypto.IdentityKey) ([]FundingStream, error)
	DelegationChanges(epochIndex uint64) (map[crypto.IdentityKey]int64, error)
}
