// Package genesis assembles genesis allocations into notes and validates
// the minimal preconditions a genesis transaction must satisfy before it
// can be finalized. Full transaction-envelope assembly (merkle root
// bookkeeping, fee handling, actual broadcast) stays an external
// collaborator; this package only covers what the rest of this module
// already models.
package genesis

import (
	"fmt"

	"shieldstake/core/asset"
	"shieldstake/crypto"
	"shieldstake/shielded"

	"lukechampine.com/blake3"
)

// Allocation is a transparent genesis allocation: an amount of a named
// denomination assigned to an address at chain genesis.
type Allocation struct {
	Amount  uint64
	Denom   string
	Address crypto.Address
}

// Note produces the genesis note corresponding to this allocation. To
// keep genesis deterministic, it uses a zero note-blinding factor: this
// is fine because genesis allocations are already public, so there is
// nothing to hide by randomizing the commitment.
func (a Allocation) Note() (shielded.Note, error) {
	denom, ok := asset.DefaultRegistry().ParseDenom(a.Denom)
	if !ok {
		return shielded.Note{}, fmt.Errorf("genesis: invalid denomination %q", a.Denom)
	}

	diversifier := diversifierFromAddress(a.Address)
	gd := shielded.DiversifiedBase(diversifier)
	pkD := transmissionKeyFromAddress(a.Address)

	return shielded.Note{
		Gd:  gd,
		PkD: pkD,
		Value: shielded.Value{
			Amount:  a.Amount,
			AssetID: denom.Id(),
		},
		NoteBlinding: shielded.ScalarFromBytes([32]byte{}),
	}, nil
}

// diversifierFromAddress deterministically derives a diversifier from a
// transparent address's bytes, so every genesis allocation gets its own
// diversified base point without needing an out-of-band diversifier.
func diversifierFromAddress(addr crypto.Address) [16]byte {
	sum := blake3.Sum256(append([]byte("shieldstake/genesis/diversifier/"), addr.Bytes()...))
	var d [16]byte
	copy(d[:], sum[:16])
	return d
}

// transmissionKeyFromAddress deterministically derives the transparent
// transmission-key field-element encoding for a genesis note. Genesis
// allocations have no real shielded recipient key to draw from, so the
// address itself seeds a stand-in value; this is fine because, like the
// rest of the note, it is already public at genesis.
func transmissionKeyFromAddress(addr crypto.Address) [32]byte {
	return blake3.Sum256(append([]byte("shieldstake/genesis/pkd/"), addr.Bytes()...))
}
