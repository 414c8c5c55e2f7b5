package genesis

import (
	"testing"

	"shieldstake/crypto"
)

func testAddress(t *testing.T) crypto.Address {
	t.Helper()
	addr, err := crypto.NewAddress(crypto.AccountPrefix, make([]byte, 20))
	if err != nil {
		t.Fatalf("NewAddress: %v", err)
	}
	return addr
}

func TestAllocationNoteDeterministic(t *testing.T) {
	addr := testAddress(t)
	a := Allocation{Amount: 100, Denom: "upenumbra", Address: addr}

	note1, err := a.Note()
	if err != nil {
		t.Fatalf("Note(): %v", err)
	}
	note2, err := a.Note()
	if err != nil {
		t.Fatalf("Note(): %v", err)
	}
	if note1.Commitment() != note2.Commitment() {
		t.Fatalf("allocation notes are not deterministic: %x != %x", note1.Commitment(), note2.Commitment())
	}
}

func TestAllocationNoteRejectsDisplayOnlyDenom(t *testing.T) {
	addr := testAddress(t)
	a := Allocation{Amount: 100, Denom: "penumbra", Address: addr}
	if _, err := a.Note(); err == nil {
		t.Fatalf("Note() = nil error, want an error for a display-unit denom")
	}
}

func TestBuilderFinalizeRequiresChainID(t *testing.T) {
	b := &Builder{}
	if err := b.AddAllocation(Allocation{Amount: 1, Denom: "upenumbra", Address: testAddress(t)}); err != nil {
		t.Fatalf("AddAllocation: %v", err)
	}
	if _, err := b.Finalize(); err != ErrNoChainID {
		t.Fatalf("Finalize() = %v, want ErrNoChainID", err)
	}
}

func TestBuilderFinalizeSucceedsWithChainID(t *testing.T) {
	b := (&Builder{}).SetChainID("shieldstake-test-1")
	if err := b.AddAllocation(Allocation{Amount: 1, Denom: "upenumbra", Address: testAddress(t)}); err != nil {
		t.Fatalf("AddAllocation: %v", err)
	}
	gen, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize(): %v", err)
	}
	if gen.ChainID != "shieldstake-test-1" {
		t.Fatalf("ChainID = %q, want shieldstake-test-1", gen.ChainID)
	}
	if len(gen.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1", len(gen.Notes))
	}
	if gen.BatchID.String() == "" {
		t.Fatalf("BatchID is empty, want a generated UUID")
	}
}
