package shielded

import "testing"

func testDiversifier(tag byte) [16]byte {
	var d [16]byte
	d[0] = tag
	return d
}

func validOutputWitness(t *testing.T) (OutputProof, Element, [32]byte, Element) {
	t.Helper()
	fvk := FullViewingKey{}
	ak, err := GenerateSpendAuthKey()
	if err != nil {
		t.Fatalf("GenerateSpendAuthKey: %v", err)
	}
	nk, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar nk: %v", err)
	}
	fvk = FullViewingKey{Ak: ak.Ak, Nk: nk}

	gd := DiversifiedBase(testDiversifier(1))
	pkD := fvk.DiversifiedPublic(gd)

	value := Value{Amount: 1000, AssetID: [32]byte{1}}
	vBlinding, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar vBlinding: %v", err)
	}
	noteBlinding, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar noteBlinding: %v", err)
	}
	esk, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar esk: %v", err)
	}

	proof := OutputProof{
		Gd:           gd,
		PkD:          pkD.XOnlyBytes(),
		Value:        value,
		VBlinding:    vBlinding,
		NoteBlinding: noteBlinding,
		Esk:          esk,
	}

	valueCommitment := value.Commit(vBlinding).Negate()
	noteCommitment := proof.NoteCommitment()
	epk := EphemeralPublic(esk, gd)

	return proof, valueCommitment, noteCommitment, epk
}

func TestOutputProofVerifySucceeds(t *testing.T) {
	proof, valueCommitment, noteCommitment, epk := validOutputWitness(t)
	if err := proof.Verify(valueCommitment, noteCommitment, epk); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
}

func TestOutputProofVerifyRejectsIdentityDiversifiedBase(t *testing.T) {
	proof, valueCommitment, noteCommitment, epk := validOutputWitness(t)
	proof.Gd = Identity()
	if err := proof.Verify(valueCommitment, noteCommitment, epk); err != ErrIdentityUnexpected {
		t.Fatalf("Verify() = %v, want ErrIdentityUnexpected", err)
	}
}

func TestOutputProofVerifyRejectsTamperedValue(t *testing.T) {
	proof, valueCommitment, noteCommitment, epk := validOutputWitness(t)
	proof.Value.Amount++
	if err := proof.Verify(valueCommitment, noteCommitment, epk); err == nil {
		t.Fatalf("Verify() = nil, want an error after tampering with amount")
	}
}

func TestOutputProofVerifyRejectsMismatchedEphemeralKey(t *testing.T) {
	proof, valueCommitment, noteCommitment, _ := validOutputWitness(t)
	other, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	wrongEpk := EphemeralPublic(other, proof.Gd)
	if err := proof.Verify(valueCommitment, noteCommitment, wrongEpk); err != ErrEphemeralPublicKeyMismatch {
		t.Fatalf("Verify() = %v, want ErrEphemeralPublicKeyMismatch", err)
	}
}

func TestOutputProofWireRoundTrip(t *testing.T) {
	proof, _, _, _ := validOutputWitness(t)
	decoded, err := OutputProofFromWire(proof.ToWire())
	if err != nil {
		t.Fatalf("OutputProofFromWire: %v", err)
	}
	if decoded.Value != proof.Value {
		t.Fatalf("round trip value mismatch: got %+v, want %+v", decoded.Value, proof.Value)
	}
	if decoded.PkD != proof.PkD {
		t.Fatalf("round trip pk_d mismatch")
	}
	if !decoded.Gd.Equal(proof.Gd) {
		t.Fatalf("round trip g_d mismatch")
	}
}
