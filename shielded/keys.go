package shielded

// SpendAuthKey is a validator- or user-controlled spend authorization
// keypair. ak is the verification key ask*G.
type SpendAuthKey struct {
	Ask Scalar
	Ak  Element
}

// GenerateSpendAuthKey draws a fresh random spend authorization keypair.
func GenerateSpendAuthKey() (SpendAuthKey, error) {
	ask, err := RandomScalar()
	if err != nil {
		return SpendAuthKey{}, err
	}
	return SpendAuthKey{Ask: ask, Ak: BaseScalarMult(ask)}, nil
}

// Randomize derives a randomized verification key rk = ak + r*G, the
// additive re-randomization scheme used to bind one spend-authorization
// signature to a single transaction without revealing ak itself.
func (k SpendAuthKey) Randomize(r Scalar) Element {
	return k.Ak.Add(BaseScalarMult(r))
}

// RandomizeVerificationKey performs the same re-randomization given only
// the public verification key ak, for use on the verifier side where the
// spend authorization secret is never available.
func RandomizeVerificationKey(ak Element, r Scalar) Element {
	return ak.Add(BaseScalarMult(r))
}

// FullViewingKey derives the incoming viewing key from a spend-authority
// verification key and a nullifier deriving key by hashing their encodings
// with blake3 (a stand-in for the real protocol's Poseidon-based key
// derivation; see SPEC_FULL.md).
type FullViewingKey struct {
	Ak Element
	Nk Scalar
}

// IncomingViewingKey derives the scalar ivk used to compute diversified
// transmission keys and ephemeral public keys.
func (fvk FullViewingKey) IncomingViewingKey() Scalar {
	akBytes := fvk.Ak.XOnlyBytes()
	nkBytes := fvk.Nk.Bytes()
	return hashToScalar(append(append([]byte{}, akBytes[:]...), nkBytes[:]...))
}

// DiversifiedPublic derives the diversified transmission/ephemeral public
// point ivk*g_d for a diversified base g_d.
func (fvk FullViewingKey) DiversifiedPublic(gd Element) Element {
	return gd.ScalarMult(fvk.IncomingViewingKey())
}

// DiversifiedBase derives a per-address diversified base point from a
// diversifier, deterministically and always on-curve: HashToScalar(div)*G.
func DiversifiedBase(diversifier [16]byte) Element {
	return BaseScalarMult(hashToScalar(append([]byte("shieldstake/diversified-base/"), diversifier[:]...)))
}

// EphemeralPublic derives esk*g_d, the public counterpart of an output's
// ephemeral secret key.
func EphemeralPublic(esk Scalar, gd Element) Element {
	return gd.ScalarMult(esk)
}
