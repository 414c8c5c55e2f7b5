package config

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"shieldstake/crypto"
)

func TestLoadOrCreateValidatorKeyGeneratesAndPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validator.keystore")
	passphrase := "strong-passphrase"

	created, err := LoadOrCreateValidatorKey(path, passphrase)
	if err != nil {
		t.Fatalf("LoadOrCreateValidatorKey: %v", err)
	}
	if created == nil {
		t.Fatalf("expected a generated key")
	}

	reloaded, err := LoadOrCreateValidatorKey(path, passphrase)
	if err != nil {
		t.Fatalf("LoadOrCreateValidatorKey (reload): %v", err)
	}
	if hex.EncodeToString(created.Bytes()) != hex.EncodeToString(reloaded.Bytes()) {
		t.Fatalf("reloaded key does not match the generated key")
	}
}

func TestLoadOrCreateValidatorKeyRejectsEmptyPath(t *testing.T) {
	if _, err := LoadOrCreateValidatorKey("", "passphrase"); err == nil {
		t.Fatalf("expected an error for an empty keystore path")
	}
}

func TestLoadValidatorKeyFromEnv(t *testing.T) {
	key, err := crypto.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("GeneratePrivateKey: %v", err)
	}
	t.Setenv("VALIDATOR_KEY_TEST", hex.EncodeToString(key.Bytes()))

	loaded, err := LoadValidatorKeyFromEnv("VALIDATOR_KEY_TEST")
	if err != nil {
		t.Fatalf("LoadValidatorKeyFromEnv: %v", err)
	}
	if hex.EncodeToString(loaded.Bytes()) != hex.EncodeToString(key.Bytes()) {
		t.Fatalf("loaded key does not match the original key")
	}
}

func TestLoadValidatorKeyFromEnvRejectsMissingVar(t *testing.T) {
	if _, err := LoadValidatorKeyFromEnv("VALIDATOR_KEY_DOES_NOT_EXIST"); err == nil {
		t.Fatalf("expected an error for an unset environment variable")
	}
}
