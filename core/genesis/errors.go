package genesis

import "errors"

// ErrNoChainID is returned by Builder.Finalize when no chain ID has been
// set.
var ErrNoChainID = errors.New("genesis: no chain ID set")
