package asset

import (
	"fmt"
	"sync"
)

// identityPattern matches a bech32 validator identity string with the
// "penumbravalid" human-readable prefix, used as the "data" capture shared
// by the base and display patterns of the delegation token family.
const identityPattern = `penumbravalid1[a-km-zA-HJ-NP-Z0-9]+`

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide immutable registry, lazily
// initialized on first use. It declares exactly two families: the staking
// token "upenumbra" and the per-validator delegation token
// "udelegation_<identity>".
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		b := &Builder{}
		b.AddFamily(
			`^upenumbra$`,
			[]string{`^penumbra$`, `^mpenumbra$`},
			func(string) Denom {
				return Denom{
					Base: "upenumbra",
					Units: []DisplayUnit{
						{Exponent: 6, Denom: "penumbra"},
						{Exponent: 3, Denom: "mpenumbra"},
					},
				}
			},
		)
		b.AddFamily(
			fmt.Sprintf(`^udelegation_(?P<data>%s)$`, identityPattern),
			[]string{
				fmt.Sprintf(`^delegation_(?P<data>%s)$`, identityPattern),
				fmt.Sprintf(`^mdelegation_(?P<data>%s)$`, identityPattern),
			},
			func(data string) Denom {
				return Denom{
					Base: "udelegation_" + data,
					Units: []DisplayUnit{
						{Exponent: 6, Denom: "delegation_" + data},
						{Exponent: 3, Denom: "mdelegation_" + data},
					},
				}
			},
		)
		defaultRegistry = b.Build()
	})
	return defaultRegistry
}

// DelegationDenom returns the canonical delegation-token Denom for a
// validator identity string (its bech32-encoded IdentityKey).
func DelegationDenom(identity string) Denom {
	denom, _ := DefaultRegistry().ParseDenom("udelegation_" + identity)
	return denom
}

// StakingTokenDenom is the chain's native staking token.
func StakingTokenDenom() Denom {
	denom, _ := DefaultRegistry().ParseDenom("upenumbra")
	return denom
}
