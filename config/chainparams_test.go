package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_CreatesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chain_params.toml")

	params, err := Load(path, "shieldstake-test-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if params.ChainID != "shieldstake-test-1" {
		t.Fatalf("chain id = %q, want shieldstake-test-1", params.ChainID)
	}
	if params.EpochDuration != 8640 || params.UnbondingEpochs != 30 || params.ActiveValidatorLimit != 10 {
		t.Fatalf("unexpected defaults: %+v", params)
	}

	reloaded, err := Load(path, "ignored-on-reload")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.ChainID != "shieldstake-test-1" {
		t.Fatalf("reload chain id = %q, want shieldstake-test-1", reloaded.ChainID)
	}
}

func TestValidate_RejectsEmptyChainID(t *testing.T) {
	p := DefaultChainParams()
	if err := Validate(p); err != ErrNoChainID {
		t.Fatalf("expected ErrNoChainID, got %v", err)
	}
}

func TestValidate_RejectsExcessiveSlashingPenalty(t *testing.T) {
	p := DefaultChainParams()
	p.ChainID = "x"
	p.SlashingPenalty = 1_0001
	if err := Validate(p); err == nil {
		t.Fatalf("expected slashing penalty over 10000bps to be rejected")
	}
}
