package shielded

import "errors"

var (
	ErrInvalidSpendAuthRandomizer = errors.New("shielded: invalid spend-auth randomizer")
	ErrNoteCommitmentMismatch     = errors.New("shielded: note commitment mismatch")
	ErrTransmissionKeyMismatch    = errors.New("shielded: transmission key does not decode to a field element")
	ErrValueCommitmentMismatch    = errors.New("shielded: value commitment mismatch")
	ErrEphemeralPublicKeyMismatch = errors.New("shielded: ephemeral public key mismatch")
	ErrIdentityUnexpected         = errors.New("shielded: unexpected group identity element")
	ErrMerklePathMismatch         = errors.New("shielded: merkle path depth mismatch")
	ErrMerkleRootMismatch         = errors.New("shielded: merkle root mismatch")
	ErrInvalidDiversifiedAddress  = errors.New("shielded: invalid diversified address")
	ErrBadNullifier               = errors.New("shielded: nullifier mismatch")
	ErrProtoMalformed             = errors.New("shielded: malformed proof encoding")
)
