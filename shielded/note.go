package shielded

import (
	"encoding/binary"
	"math/big"

	"lukechampine.com/blake3"
)

// Value is an amount of a specific asset.
type Value struct {
	Amount  uint64
	AssetID [32]byte
}

// hGenerator is the second, nothing-up-my-sleeve Pedersen base point used
// to derive per-asset value generators, independent of the curve's
// standard generator G.
var hGenerator = BaseScalarMult(hashToScalar([]byte("shieldstake/value-commitment/H")))

// assetGenerator derives the per-asset Pedersen generator for a value
// commitment: a deterministic, asset-specific point independent of H and G.
func assetGenerator(assetID [32]byte) Element {
	return hGenerator.ScalarMult(hashToScalar(append([]byte("shieldstake/asset-generator/"), assetID[:]...)))
}

// Commit produces a Pedersen commitment to this value under blinding
// factor vBlinding: vBlinding*G + amount*assetGenerator(asset_id).
func (v Value) Commit(vBlinding Scalar) Element {
	blindingTerm := BaseScalarMult(vBlinding)
	amountScalar := NewScalar(new(big.Int).SetUint64(v.Amount))
	valueTerm := assetGenerator(v.AssetID).ScalarMult(amountScalar)
	return blindingTerm.Add(valueTerm)
}

// hashToScalar hashes arbitrary bytes into a scalar via blake3, standing in
// for the Poseidon-based hash-to-field the real protocol uses (see
// SPEC_FULL.md).
func hashToScalar(data []byte) Scalar {
	sum := blake3.Sum256(data)
	return ScalarFromBytes(sum)
}

// Note is the plaintext contents of a shielded note: a diversified
// address (Gd, PkD), the value it carries, and its blinding factor.
type Note struct {
	Gd           Element
	PkD          [32]byte
	Value        Value
	NoteBlinding Scalar
}

// Commitment computes this note's commitment, the public value bound
// into the note commitment tree.
func (n Note) Commitment() [32]byte {
	return CommitNote(n.NoteBlinding, n.Value, n.Gd, n.PkD)
}

// CommitNote computes a note commitment from its blinding factor, value,
// diversified base, and the transmission key's field-element ("s")
// component, binding all four together via blake3.
func CommitNote(noteBlinding Scalar, value Value, gd Element, pkDComponent [32]byte) [32]byte {
	h := blake3.New(32, nil)
	blinding := noteBlinding.Bytes()
	h.Write(blinding[:])
	var amountBytes [8]byte
	binary.BigEndian.PutUint64(amountBytes[:], value.Amount)
	h.Write(amountBytes[:])
	h.Write(value.AssetID[:])
	gdBytes := gd.XOnlyBytes()
	h.Write(gdBytes[:])
	h.Write(pkDComponent[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DeriveNullifier derives a one-time nullifier tag from the nullifier
// deriving key, the note's position in the commitment tree, and the note
// commitment itself.
func DeriveNullifier(nk Scalar, position uint64, noteCommitment [32]byte) [32]byte {
	h := blake3.New(32, nil)
	nkBytes := nk.Bytes()
	h.Write(nkBytes[:])
	var posBytes [8]byte
	binary.BigEndian.PutUint64(posBytes[:], position)
	h.Write(posBytes[:])
	h.Write(noteCommitment[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
