package shielded

// SpendProofWire is the semantic wire payload of a SpendProof, matching
// SPEC_FULL.md §6. The exact byte envelope (protobuf framing) is an
// external collaborator; this module only fixes the field list and types.
type SpendProofWire struct {
	MerklePathAltitude  uint32
	MerklePathSiblings  [][32]byte
	Position            uint64
	Gd                  [32]byte
	PkD                 [32]byte
	ValueAmount         uint64
	ValueAssetID        [32]byte
	VBlinding           [32]byte
	NoteCommitment      [32]byte
	NoteBlinding        [32]byte
	SpendAuthRandomizer [32]byte
	Ak                  [32]byte
	Nk                  [32]byte
}

// ToWire encodes a SpendProof into its semantic wire payload.
func (p SpendProof) ToWire() SpendProofWire {
	return SpendProofWire{
		MerklePathAltitude:  uint32(len(p.MerklePath)),
		MerklePathSiblings:  append([][32]byte(nil), p.MerklePath...),
		Position:            p.Position,
		Gd:                  p.Gd.XOnlyBytes(),
		PkD:                 p.PkD,
		ValueAmount:         p.Value.Amount,
		ValueAssetID:        p.Value.AssetID,
		VBlinding:           p.VBlinding.Bytes(),
		NoteCommitment:      p.NoteCommitment,
		NoteBlinding:        p.NoteBlinding.Bytes(),
		SpendAuthRandomizer: p.SpendAuthRandomizer.Bytes(),
		Ak:                  p.Ak.XOnlyBytes(),
		Nk:                  p.Nk.Bytes(),
	}
}

// SpendProofFromWire decodes a semantic wire payload into a SpendProof,
// lifting x-only encoded group elements back onto the curve.
func SpendProofFromWire(w SpendProofWire) (SpendProof, error) {
	gd, ok := LiftX(w.Gd)
	if !ok {
		return SpendProof{}, ErrProtoMalformed
	}
	ak, ok := LiftX(w.Ak)
	if !ok {
		return SpendProof{}, ErrProtoMalformed
	}
	if int(w.MerklePathAltitude) != len(w.MerklePathSiblings) {
		return SpendProof{}, ErrProtoMalformed
	}
	return SpendProof{
		MerklePath:          append([][32]byte(nil), w.MerklePathSiblings...),
		Position:            w.Position,
		Gd:                  gd,
		PkD:                 w.PkD,
		Value:               Value{Amount: w.ValueAmount, AssetID: w.ValueAssetID},
		VBlinding:           ScalarFromBytes(w.VBlinding),
		NoteCommitment:      w.NoteCommitment,
		NoteBlinding:        ScalarFromBytes(w.NoteBlinding),
		SpendAuthRandomizer: ScalarFromBytes(w.SpendAuthRandomizer),
		Ak:                  ak,
		Nk:                  ScalarFromBytes(w.Nk),
	}, nil
}

// OutputProofWire is the semantic wire payload of an OutputProof.
type OutputProofWire struct {
	Gd           [32]byte
	PkD          [32]byte
	ValueAmount  uint64
	ValueAssetID [32]byte
	VBlinding    [32]byte
	NoteBlinding [32]byte
	Esk          [32]byte
}

// ToWire encodes an OutputProof into its semantic wire payload.
func (p OutputProof) ToWire() OutputProofWire {
	return OutputProofWire{
		Gd:           p.Gd.XOnlyBytes(),
		PkD:          p.PkD,
		ValueAmount:  p.Value.Amount,
		ValueAssetID: p.Value.AssetID,
		VBlinding:    p.VBlinding.Bytes(),
		NoteBlinding: p.NoteBlinding.Bytes(),
		Esk:          p.Esk.Bytes(),
	}
}

// OutputProofFromWire decodes a semantic wire payload into an OutputProof.
func OutputProofFromWire(w OutputProofWire) (OutputProof, error) {
	gd, ok := LiftX(w.Gd)
	if !ok {
		return OutputProof{}, ErrProtoMalformed
	}
	return OutputProof{
		Gd:           gd,
		PkD:          w.PkD,
		Value:        Value{Amount: w.ValueAmount, AssetID: w.ValueAssetID},
		VBlinding:    ScalarFromBytes(w.VBlinding),
		NoteBlinding: ScalarFromBytes(w.NoteBlinding),
		Esk:          ScalarFromBytes(w.Esk),
	}, nil
}
