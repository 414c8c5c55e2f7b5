// Package shielded verifies the transparent (non-zero-knowledge) spend and
// output proofs that bind a private note to its public commitments. It
// will be replaced by actual zero-knowledge proofs in a later protocol
// version; until then it enforces every binding check so the public
// interface is stable.
//
// The underlying elliptic-curve group and key-agreement primitives are out
// of scope (see SPEC_FULL.md): this package treats them as opaque algebraic
// operations, backed concretely by the secp256k1 curve already wired into
// the rest of this module via go-ethereum's crypto package.
package shielded

import (
	"crypto/rand"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

func curve() elliptic256 { return elliptic256{} }

// elliptic256 is a tiny facade over crypto.S256(), kept so the rest of this
// package never names the concrete curve type directly.
type elliptic256 struct{}

func (elliptic256) params() (p, n, b *big.Int) {
	params := crypto.S256().Params()
	return params.P, params.N, params.B
}

// Scalar is a group-order integer: a private/blinding value.
type Scalar struct {
	v *big.Int
}

// NewScalar reduces an arbitrary big.Int modulo the curve order.
func NewScalar(v *big.Int) Scalar {
	_, n, _ := curve().params()
	return Scalar{v: new(big.Int).Mod(v, n)}
}

// RandomScalar draws a uniformly random scalar.
func RandomScalar() (Scalar, error) {
	_, n, _ := curve().params()
	v, err := rand.Int(rand.Reader, n)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{v: v}, nil
}

// ScalarFromBytes interprets 32 big-endian bytes as a scalar, reducing mod
// the curve order.
func ScalarFromBytes(b [32]byte) Scalar {
	return NewScalar(new(big.Int).SetBytes(b[:]))
}

// Bytes renders the scalar as 32 big-endian bytes.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	s.v.FillBytes(out[:])
	return out
}

// Add returns s + other mod N.
func (s Scalar) Add(other Scalar) Scalar {
	_, n, _ := curve().params()
	return Scalar{v: new(big.Int).Mod(new(big.Int).Add(s.v, other.v), n)}
}

// Equal reports whether two scalars are congruent mod N.
func (s Scalar) Equal(other Scalar) bool {
	return s.v.Cmp(other.v) == 0
}

// IsZero reports whether the scalar is congruent to 0 mod N.
func (s Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Element is an affine point on the curve. The zero value represents the
// group identity (point at infinity), following the convention used by
// Go's crypto/elliptic package.
type Element struct {
	X, Y *big.Int
}

// Identity returns the group identity element.
func Identity() Element {
	return Element{X: big.NewInt(0), Y: big.NewInt(0)}
}

// IsIdentity reports whether e is the group identity.
func (e Element) IsIdentity() bool {
	return (e.X == nil || e.X.Sign() == 0) && (e.Y == nil || e.Y.Sign() == 0)
}

// BaseScalarMult returns s*G for the curve's generator G.
func BaseScalarMult(s Scalar) Element {
	x, y := crypto.S256().ScalarBaseMult(s.v.Bytes())
	return Element{X: x, Y: y}
}

// ScalarMult returns s*e.
func (e Element) ScalarMult(s Scalar) Element {
	if e.IsIdentity() {
		return Identity()
	}
	x, y := crypto.S256().ScalarMult(e.X, e.Y, s.v.Bytes())
	return Element{X: x, Y: y}
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	if e.IsIdentity() {
		return other
	}
	if other.IsIdentity() {
		return e
	}
	x, y := crypto.S256().Add(e.X, e.Y, other.X, other.Y)
	return Element{X: x, Y: y}
}

// Negate returns -e (the point reflected across the X axis).
func (e Element) Negate() Element {
	if e.IsIdentity() {
		return Identity()
	}
	p, _, _ := curve().params()
	return Element{X: new(big.Int).Set(e.X), Y: new(big.Int).Sub(p, e.Y)}
}

// Equal reports whether two elements represent the same point.
func (e Element) Equal(other Element) bool {
	if e.IsIdentity() || other.IsIdentity() {
		return e.IsIdentity() == other.IsIdentity()
	}
	return e.X.Cmp(other.X) == 0 && e.Y.Cmp(other.Y) == 0
}

// XOnlyBytes encodes the element as its 32-byte big-endian X coordinate,
// following the BIP-340-style x-only convention: a full point is always
// recovered by lifting the X coordinate back onto the curve and choosing
// the even-Y solution (see LiftX).
func (e Element) XOnlyBytes() [32]byte {
	var out [32]byte
	if e.IsIdentity() {
		return out
	}
	e.X.FillBytes(out[:])
	return out
}

// LiftX recovers the unique even-Y point with the given X coordinate. An
// all-zero encoding is reserved for the identity element. Returns false
// if the bytes do not encode the X coordinate of a point on the curve.
func LiftX(xBytes [32]byte) (Element, bool) {
	zero := [32]byte{}
	if xBytes == zero {
		return Identity(), true
	}
	p, _, b := curve().params()
	x := new(big.Int).SetBytes(xBytes[:])
	if x.Cmp(p) >= 0 {
		return Element{}, false
	}
	// y^2 = x^3 + b (secp256k1: a = 0, b = 7)
	ySq := new(big.Int).Mul(x, x)
	ySq.Mul(ySq, x)
	ySq.Add(ySq, b)
	ySq.Mod(ySq, p)

	y := new(big.Int).ModSqrt(ySq, p)
	if y == nil {
		return Element{}, false
	}
	if y.Bit(0) != 0 {
		y.Sub(p, y)
	}
	return Element{X: x, Y: y}, true
}

// FieldElement parses 32 big-endian bytes as an element of the curve's
// base field, failing if the value is not canonically reduced. Used for
// the "s-component" conversion the note-commitment check requires of a
// transmission key.
func FieldElement(b [32]byte) (*big.Int, bool) {
	p, _, _ := curve().params()
	v := new(big.Int).SetBytes(b[:])
	if v.Cmp(p) >= 0 {
		return nil, false
	}
	return v, true
}
