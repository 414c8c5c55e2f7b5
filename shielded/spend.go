package shielded

import (
	"time"

	"shieldstake/observability"
)

// SpendProof is the witness for a transaction action that consumes a
// previously-output note.
type SpendProof struct {
	MerklePath          [][32]byte
	Position            uint64
	Gd                  Element
	PkD                 [32]byte
	Value               Value
	VBlinding           Scalar
	NoteCommitment      [32]byte
	NoteBlinding        Scalar
	SpendAuthRandomizer Scalar
	Ak                  Element
	Nk                  Scalar
}

// Verify checks a spend proof against its public inputs: the Merkle
// anchor, the public value commitment, the nullifier, and the randomized
// spend-authorization key. All eight checks in SPEC_FULL.md §4.4 run in
// order; the first failure is returned.
func (p SpendProof) Verify(anchor [32]byte, valueCommitment Element, nullifier [32]byte, rk Element) (err error) {
	start := time.Now()
	defer func() { observability.Proof().Observe("spend", time.Since(start), err) }()

	// 1. Note commitment integrity.
	if _, ok := FieldElement(p.PkD); !ok {
		return ErrTransmissionKeyMismatch
	}
	recomputed := CommitNote(p.NoteBlinding, p.Value, p.Gd, p.PkD)
	if recomputed != p.NoteCommitment {
		return ErrNoteCommitmentMismatch
	}

	// 2. Merkle path depth.
	if len(p.MerklePath) != TreeDepth {
		return ErrMerklePathMismatch
	}

	// 3. Merkle root.
	root := foldMerklePath(p.NoteCommitment, p.MerklePath, p.Position)
	if root != anchor {
		return ErrMerkleRootMismatch
	}

	// 4. Value commitment integrity.
	if !p.Value.Commit(p.VBlinding).Equal(valueCommitment) {
		return ErrValueCommitmentMismatch
	}

	// 5. Non-identity.
	if p.Gd.IsIdentity() || p.Ak.IsIdentity() {
		return ErrIdentityUnexpected
	}

	// 6. Nullifier integrity.
	if DeriveNullifier(p.Nk, p.Position, p.NoteCommitment) != nullifier {
		return ErrBadNullifier
	}

	// 7. Spend authority.
	sak := SpendAuthKey{Ak: p.Ak}
	if !sak.Randomize(p.SpendAuthRandomizer).Equal(rk) {
		return ErrInvalidSpendAuthRandomizer
	}

	// 8. Diversified-address integrity.
	fvk := FullViewingKey{Ak: p.Ak, Nk: p.Nk}
	derived := fvk.DiversifiedPublic(p.Gd)
	if derived.XOnlyBytes() != p.PkD {
		return ErrInvalidDiversifiedAddress
	}

	return nil
}
