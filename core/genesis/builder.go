package genesis

import (
	"math/big"

	"shieldstake/shielded"

	"github.com/google/uuid"
)

// Builder assembles genesis allocations into notes. Genesis notes are
// transparent outputs with constant blinding factors rather than
// randomized ones, so clients can treat genesis and non-genesis
// transactions identically once assembled.
type Builder struct {
	Notes        []shielded.Note
	ValueBalance shielded.Element
	chainID      string

	batchID uuid.UUID
}

// BatchID returns the builder's allocation-batch identifier, generating
// one on first use. Operators tag exported allocation batches with it so
// a partially-applied genesis import can be told apart from a full one.
func (b *Builder) BatchID() uuid.UUID {
	if b.batchID == uuid.Nil {
		b.batchID = uuid.New()
	}
	return b.batchID
}

// SetChainID records the chain ID the resulting genesis state belongs
// to. Finalize refuses to proceed without one.
func (b *Builder) SetChainID(chainID string) *Builder {
	b.chainID = chainID
	return b
}

// AddAllocation converts an allocation into a note and folds its value
// into the builder's running value balance.
func (b *Builder) AddAllocation(a Allocation) error {
	note, err := a.Note()
	if err != nil {
		return err
	}
	b.Notes = append(b.Notes, note)

	zero := shielded.NewScalar(big.NewInt(0))
	b.ValueBalance = b.ValueBalance.Add(note.Value.Commit(zero).Negate())
	return nil
}

// Genesis is the finalized result of a Builder: the set of genesis
// notes, bound to a chain ID.
type Genesis struct {
	Notes        []shielded.Note
	ValueBalance shielded.Element
	ChainID      string
	BatchID      uuid.UUID
}

// Finalize validates that a chain ID has been set and returns the
// assembled genesis state.
func (b *Builder) Finalize() (Genesis, error) {
	if b.chainID == "" {
		return Genesis{}, ErrNoChainID
	}
	return Genesis{
		Notes:        append([]shielded.Note(nil), b.Notes...),
		ValueBalance: b.ValueBalance,
		ChainID:      b.chainID,
		BatchID:      b.BatchID(),
	}, nil
}
