// Package config loads and persists the chain-wide parameters that govern
// epoch length, the unbonding period, the active validator set size,
// slashing severity, and IBC transfer gating.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ChainParams is the persisted, protocol-level configuration consumed by
// validator.Reader.ChainParams.
type ChainParams struct {
	ChainID                       string `toml:"chain_id"`
	EpochDuration                 uint64 `toml:"epoch_duration"`
	UnbondingEpochs               uint64 `toml:"unbonding_epochs"`
	ActiveValidatorLimit          uint64 `toml:"active_validator_limit"`
	SlashingPenalty               uint64 `toml:"slashing_penalty"`
	IBCEnabled                    bool   `toml:"ibc_enabled"`
	InboundICS20TransfersEnabled  bool   `toml:"inbound_ics20_transfers_enabled"`
	OutboundICS20TransfersEnabled bool   `toml:"outbound_ics20_transfers_enabled"`
}

// DefaultChainParams returns the protocol defaults.
func DefaultChainParams() ChainParams {
	return ChainParams{
		EpochDuration:         8640,
		UnbondingEpochs:       30,
		ActiveValidatorLimit:  10,
		SlashingPenalty:       1000,
		IBCEnabled:            false,
	}
}

// Load reads chain parameters from a TOML file at path, creating one with
// defaults (and the supplied chainID) if it does not yet exist.
func Load(path, chainID string) (ChainParams, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		params := DefaultChainParams()
		params.ChainID = chainID
		if err := createDefault(path, params); err != nil {
			return ChainParams{}, err
		}
		return params, nil
	}

	var params ChainParams
	if _, err := toml.DecodeFile(path, &params); err != nil {
		return ChainParams{}, fmt.Errorf("config: decode chain params: %w", err)
	}
	if err := Validate(params); err != nil {
		return ChainParams{}, err
	}
	return params, nil
}

func createDefault(path string, params ChainParams) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("config: create default chain params: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(params); err != nil {
		return fmt.Errorf("config: encode default chain params: %w", err)
	}
	return nil
}

// Validate checks that a ChainParams value is internally consistent.
func Validate(p ChainParams) error {
	if p.ChainID == "" {
		return ErrNoChainID
	}
	if p.EpochDuration == 0 {
		return fmt.Errorf("config: epoch_duration must be nonzero")
	}
	if p.ActiveValidatorLimit == 0 {
		return fmt.Errorf("config: active_validator_limit must be nonzero")
	}
	if p.SlashingPenalty > 1_0000 {
		return fmt.Errorf("config: slashing_penalty must not exceed 10000bps")
	}
	return nil
}
