package shielded

import (
	"time"

	"shieldstake/observability"
)

// OutputProof is the witness for a transaction action that creates a new
// note.
type OutputProof struct {
	Gd           Element
	PkD          [32]byte
	Value        Value
	VBlinding    Scalar
	NoteBlinding Scalar
	Esk          Scalar
}

// NoteCommitment computes the commitment to the note this proof produces.
func (p OutputProof) NoteCommitment() [32]byte {
	return CommitNote(p.NoteBlinding, p.Value, p.Gd, p.PkD)
}

// Verify checks an output proof against its public inputs. Outputs
// contribute negative value to a transaction's balance, so the value
// commitment check negates the recomputed commitment before comparing.
func (p OutputProof) Verify(valueCommitment Element, noteCommitment [32]byte, epk Element) (err error) {
	start := time.Now()
	defer func() { observability.Proof().Observe("output", time.Since(start), err) }()

	if p.Gd.IsIdentity() {
		return ErrIdentityUnexpected
	}

	if _, ok := FieldElement(p.PkD); !ok {
		return ErrTransmissionKeyMismatch
	}
	recomputed := p.NoteCommitment()
	if recomputed != noteCommitment {
		return ErrNoteCommitmentMismatch
	}

	negated := p.Value.Commit(p.VBlinding).Negate()
	if !negated.Equal(valueCommitment) {
		return ErrValueCommitmentMismatch
	}

	if !EphemeralPublic(p.Esk, p.Gd).Equal(epk) {
		return ErrEphemeralPublicKeyMismatch
	}

	return nil
}
