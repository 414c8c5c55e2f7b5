package asset

import "testing"

func TestParseDenom_StakingToken(t *testing.T) {
	denom, ok := DefaultRegistry().ParseDenom("upenumbra")
	if !ok {
		t.Fatalf("expected upenumbra to parse as a base denom")
	}
	if denom.Base != "upenumbra" {
		t.Fatalf("base = %q, want upenumbra", denom.Base)
	}
	if len(denom.Units) != 2 {
		t.Fatalf("expected 2 display units, got %d", len(denom.Units))
	}
}

func TestParseDenom_DisplayOnlyReturnsNone(t *testing.T) {
	_, ok := DefaultRegistry().ParseDenom("penumbra")
	if ok {
		t.Fatalf("expected a bare display string to not resolve via ParseDenom")
	}
}

func TestParseDenom_UnknownIsOpaqueBase(t *testing.T) {
	denom, ok := DefaultRegistry().ParseDenom("uatom")
	if !ok {
		t.Fatalf("expected unknown denom to be accepted as opaque")
	}
	if denom.Base != "uatom" || len(denom.Units) != 0 {
		t.Fatalf("unexpected denom for unknown asset: %+v", denom)
	}
}

func TestParseUnit_Display(t *testing.T) {
	unit := DefaultRegistry().ParseUnit("mpenumbra")
	if unit.Exponent() != 3 {
		t.Fatalf("exponent = %d, want 3", unit.Exponent())
	}
	if unit.Denom().Base != "upenumbra" {
		t.Fatalf("unit's parent base = %q, want upenumbra", unit.Denom().Base)
	}
}

func TestParseUnit_Base(t *testing.T) {
	unit := DefaultRegistry().ParseUnit("upenumbra")
	if unit.Exponent() != 0 {
		t.Fatalf("base unit exponent should be 0, got %d", unit.Exponent())
	}
}

func TestParseDenom_Determinism(t *testing.T) {
	a, _ := DefaultRegistry().ParseDenom("upenumbra")
	b, _ := DefaultRegistry().ParseDenom("upenumbra")
	if a.Id() != b.Id() {
		t.Fatalf("asset id must be deterministic across calls")
	}
}

func TestDelegationDenom(t *testing.T) {
	identity := "penumbravalid1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq9rgazy"
	denom := DelegationDenom(identity)
	if denom.Base != "udelegation_"+identity {
		t.Fatalf("unexpected delegation base denom: %q", denom.Base)
	}
	unit := DefaultRegistry().ParseUnit("delegation_" + identity)
	if unit.Exponent() != 6 {
		t.Fatalf("delegation display exponent = %d, want 6", unit.Exponent())
	}
}
