// Package chainmeta holds small Reader-facing metadata types that do not
// belong to any one of the four spec components but round out a complete
// Reader implementation, grounded on original_source/chain/src/params.rs.
package chainmeta

import "shieldstake/core/asset"

// AssetInfo is what the Reader returns for a known asset: its canonical
// denomination and total supply as of a given block height.
type AssetInfo struct {
	AssetID          [32]byte
	Denom            asset.Denom
	AsOfBlockHeight  uint64
	TotalSupply      uint64
}
