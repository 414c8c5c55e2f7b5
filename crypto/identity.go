package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcutil/bech32"
)

// IdentityHRP is the human-readable bech32 prefix for validator identity
// keys, rendering as "penumbravalid1...".
const IdentityHRP = "penumbravalid"

// IdentityKey is a validator's long-lived public identity. It is total
// ordered and opaque: no algebraic operations are performed on it directly,
// only comparisons, bech32 encode/decode, and use as a map key.
type IdentityKey [32]byte

// NewIdentityKey generates a fresh random identity key.
func NewIdentityKey() (IdentityKey, error) {
	var k IdentityKey
	if _, err := rand.Read(k[:]); err != nil {
		return IdentityKey{}, err
	}
	return k, nil
}

// String renders the identity key in bech32 with the IdentityHRP prefix.
func (k IdentityKey) String() string {
	conv, err := bech32.ConvertBits(k[:], 8, 5, true)
	if err != nil {
		panic(err)
	}
	encoded, err := bech32.Encode(IdentityHRP, conv)
	if err != nil {
		panic(err)
	}
	return encoded
}

// Bytes returns a copy of the identity key's raw bytes.
func (k IdentityKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// Less defines the total order used for deterministic iteration over
// validator maps.
func (k IdentityKey) Less(other IdentityKey) bool {
	for i := range k {
		if k[i] != other[i] {
			return k[i] < other[i]
		}
	}
	return false
}

// ParseIdentityKey decodes a bech32 validator identity string.
func ParseIdentityKey(s string) (IdentityKey, error) {
	hrp, decoded, err := bech32.Decode(s)
	if err != nil {
		return IdentityKey{}, fmt.Errorf("invalid bech32 identity key: %w", err)
	}
	if hrp != IdentityHRP {
		return IdentityKey{}, fmt.Errorf("unexpected identity key prefix %q, want %q", hrp, IdentityHRP)
	}
	conv, err := bech32.ConvertBits(decoded, 5, 8, false)
	if err != nil {
		return IdentityKey{}, fmt.Errorf("error converting bits: %w", err)
	}
	if len(conv) != 32 {
		return IdentityKey{}, fmt.Errorf("identity key must decode to 32 bytes, got %d", len(conv))
	}
	var k IdentityKey
	copy(k[:], conv)
	return k, nil
}
