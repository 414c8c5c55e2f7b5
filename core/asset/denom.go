package asset

import "lukechampine.com/blake3"

// Id is the 32-byte canonical identifier for a base denomination, derived
// via a fixed hash over the base denom string. The real protocol derives
// this from a Poseidon-hashed elliptic-curve point; that primitive is out
// of scope here (see SPEC_FULL.md), so blake3 stands in for it.
type Id [32]byte

// DisplayUnit is one display-oriented alias for a base denomination, at a
// power-of-ten exponent relative to it (e.g. "penumbra" = base * 10^6).
type DisplayUnit struct {
	Exponent int
	Denom    string
}

// Denom is a canonical base denomination plus its ordered display units.
type Denom struct {
	Base  string
	Units []DisplayUnit
}

// Id derives the asset identifier for this denomination's base string.
func (d Denom) Id() Id {
	return Id(blake3.Sum256([]byte(d.Base)))
}

// Unit references one unit (base or display) of a parent Denom by index.
// Index 0 is always the base unit itself; indices 1..N are the display
// units in declaration order.
type Unit struct {
	denom Denom
	index int
}

// Denom returns the parent base denomination.
func (u Unit) Denom() Denom { return u.denom }

// Exponent returns this unit's power-of-ten exponent relative to the base
// denomination (0 for the base unit itself).
func (u Unit) Exponent() int {
	if u.index == 0 {
		return 0
	}
	return u.denom.Units[u.index-1].Exponent
}

// String returns the unit's denomination string.
func (u Unit) String() string {
	if u.index == 0 {
		return u.denom.Base
	}
	return u.denom.Units[u.index-1].Denom
}

// BaseUnit returns the index-0 (base) unit of a denomination.
func BaseUnit(d Denom) Unit {
	return Unit{denom: d, index: 0}
}
