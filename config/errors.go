package config

import "errors"

// ErrNoChainID is returned by Validate when chain parameters have no chain
// ID set. The genesis builder uses its own genesis.ErrNoChainID.
var ErrNoChainID = errors.New("config: no chain id set")
