package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"shieldstake/crypto"
)

// LoadOrCreateValidatorKey loads a validator's consensus signing key from an
// encrypted keystore file at path, generating and persisting a fresh one if
// the file does not exist yet.
func LoadOrCreateValidatorKey(path, passphrase string) (*crypto.PrivateKey, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty validator keystore path")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		key, err := crypto.GeneratePrivateKey()
		if err != nil {
			return nil, fmt.Errorf("config: generate validator key: %w", err)
		}
		if err := crypto.SaveToKeystore(path, key, passphrase); err != nil {
			return nil, fmt.Errorf("config: save validator keystore: %w", err)
		}
		return key, nil
	}

	key, err := crypto.LoadFromKeystore(path, passphrase)
	if err != nil {
		return nil, fmt.Errorf("config: decrypt validator keystore: %w", err)
	}
	return key, nil
}

// LoadValidatorKeyFromEnv reads a hex-encoded validator private key from the
// named environment variable, bypassing the keystore file entirely. This is
// the escape hatch for operators injecting a key material from an external
// secrets manager rather than an on-disk keystore.
func LoadValidatorKeyFromEnv(envName string) (*crypto.PrivateKey, error) {
	if strings.TrimSpace(envName) == "" {
		return nil, fmt.Errorf("config: validator key environment variable name not provided")
	}
	value, ok := os.LookupEnv(envName)
	if !ok {
		return nil, fmt.Errorf("config: validator key environment variable %s not set", envName)
	}
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "0x")
	if trimmed == "" {
		return nil, fmt.Errorf("config: empty validator key material in %s", envName)
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("config: decode hex validator key: %w", err)
	}
	return crypto.PrivateKeyFromBytes(raw)
}
