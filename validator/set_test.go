package validator

import (
	"testing"

	"shieldstake/config"
	"shieldstake/core/asset"
	"shieldstake/core/chainmeta"
	"shieldstake/core/ratemath"
	"shieldstake/crypto"
)

type fakeReader struct {
	params           config.ChainParams
	baseRates        map[uint64]ratemath.BaseRateData
	assets           map[[32]byte]*chainmeta.AssetInfo
	streams          map[crypto.IdentityKey][]FundingStream
	delegationChanges map[uint64]map[crypto.IdentityKey]int64
	infos            []Info
}

func (f *fakeReader) ValidatorInfo(includeInactive bool) ([]Info, error) { return f.infos, nil }
func (f *fakeReader) ChainParams() (config.ChainParams, error)           { return f.params, nil }
func (f *fakeReader) BaseRateData(epochIndex uint64) (ratemath.BaseRateData, error) {
	return f.baseRates[epochIndex], nil
}
func (f *fakeReader) AssetLookup(assetID [32]byte) (*chainmeta.AssetInfo, error) {
	return f.assets[assetID], nil
}
func (f *fakeReader) FundingStreams(identity crypto.IdentityKey) ([]FundingStream, error) {
	return f.streams[identity], nil
}
func (f *fakeReader) DelegationChanges(epochIndex uint64) (map[crypto.IdentityKey]int64, error) {
	return f.delegationChanges[epochIndex], nil
}

func mustIdentity(t *testing.T) crypto.IdentityKey {
	t.Helper()
	id, err := crypto.NewIdentityKey()
	if err != nil {
		t.Fatalf("NewIdentityKey: %v", err)
	}
	return id
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		params: config.ChainParams{
			ChainID:               "test",
			EpochDuration:         100,
			UnbondingEpochs:       30,
			ActiveValidatorLimit:  2,
			SlashingPenalty:       1000,
		},
		baseRates: map[uint64]ratemath.BaseRateData{
			0: {EpochIndex: 0, BaseRewardRate: 0, BaseExchangeRate: ratemath.FixedPointScale},
		},
		assets:            map[[32]byte]*chainmeta.AssetInfo{},
		streams:           map[crypto.IdentityKey][]FundingStream{},
		delegationChanges: map[uint64]map[crypto.IdentityKey]int64{},
	}
}

func activeInfo(id crypto.IdentityKey, power uint64) Info {
	return Info{
		Validator: Definition{IdentityKey: id},
		Status:    Status{IdentityKey: id, VotingPower: power, State: State{Tag: Active}},
		RateData: ratemath.RateData{
			IdentityKey:           id.String(),
			ValidatorExchangeRate: ratemath.FixedPointScale,
		},
	}
}

func inactiveInfo(id crypto.IdentityKey) Info {
	return Info{
		Validator: Definition{IdentityKey: id},
		Status:    Status{IdentityKey: id, State: State{Tag: Inactive}},
		RateData: ratemath.RateData{
			IdentityKey:           id.String(),
			ValidatorExchangeRate: ratemath.FixedPointScale,
		},
	}
}

// Scenario 5: validator definition conflict resolution.
func TestEndBlock_DefinitionConflictResolution(t *testing.T) {
	reader := newFakeReader()
	id := mustIdentity(t)
	reader.infos = []Info{inactiveInfo(id)}

	set, err := New(reader, Epoch{Index: 0, Duration: 100}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	set.AddValidatorDefinition(Definition{IdentityKey: id, SequenceNumber: 1, AuthSig: []byte{0xAA}})
	set.AddValidatorDefinition(Definition{IdentityKey: id, SequenceNumber: 2, AuthSig: []byte{0x03}})
	set.AddValidatorDefinition(Definition{IdentityKey: id, SequenceNumber: 2, AuthSig: []byte{0x01}})

	if _, err := set.EndBlock(Epoch{Index: 0, Duration: 100}); err != nil {
		t.Fatalf("EndBlock: %v", err)
	}

	info, ok := set.Get(id)
	if !ok {
		t.Fatalf("expected validator to exist")
	}
	if info.Validator.SequenceNumber != 2 || info.Validator.AuthSig[0] != 0x01 {
		t.Fatalf("expected winning definition to be seq 2 sig 0x01, got seq %d sig %x", info.Validator.SequenceNumber, info.Validator.AuthSig)
	}
}

// Scenario 6: epoch transition activates the top-N validators by voting power.
func TestProcessEpochTransitions_ActivatesTopN(t *testing.T) {
	reader := newFakeReader()
	idLow := mustIdentity(t)
	idMid := mustIdentity(t)
	idHigh := mustIdentity(t)

	// EndEpoch recomputes voting power from delegation supply, so the
	// supplies carry the low/mid/high ordering.
	for i, id := range []crypto.IdentityKey{idLow, idMid, idHigh} {
		denom := asset.DelegationDenom(id.String())
		reader.assets[denom.Id()] = &chainmeta.AssetInfo{TotalSupply: uint64(i+1) * 1000}
	}
	reader.infos = []Info{inactiveInfo(idLow), inactiveInfo(idMid), inactiveInfo(idHigh)}
	reader.infos[0].Status.VotingPower = 100
	reader.infos[1].Status.VotingPower = 200
	reader.infos[2].Status.VotingPower = 300

	set, err := New(reader, Epoch{Index: 0, Duration: 100}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := set.EndEpoch(); err != nil {
		t.Fatalf("EndEpoch: %v", err)
	}

	low, _ := set.Get(idLow)
	mid, _ := set.Get(idMid)
	high, _ := set.Get(idHigh)

	if low.Status.State.Tag == Active {
		t.Fatalf("lowest-power validator should remain Inactive")
	}
	if mid.Status.State.Tag != Active {
		t.Fatalf("mid-power validator should become Active, got %s", mid.Status.State.Tag)
	}
	if high.Status.State.Tag != Active {
		t.Fatalf("highest-power validator should become Active, got %s", high.Status.State.Tag)
	}
}

// Scenario 7: slashing an Active validator applies the penalty immediately
// and freezes subsequent rate advancement.
func TestSlash_ActiveValidator(t *testing.T) {
	reader := newFakeReader()
	id := mustIdentity(t)
	info := activeInfo(id, 500)
	info.RateData.ValidatorRewardRate = 100_000
	reader.infos = []Info{info}

	set, err := New(reader, Epoch{Index: 0, Duration: 100}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := set.Slash(id, 1000); err != nil {
		t.Fatalf("Slash: %v", err)
	}

	slashed, _ := set.Get(id)
	if slashed.Status.State.Tag != Slashed {
		t.Fatalf("expected Slashed state, got %s", slashed.Status.State.Tag)
	}
	want := uint64(100_000) - uint64(100_000)*1000/ratemath.FixedPointScale
	if slashed.RateData.ValidatorRewardRate != want {
		t.Fatalf("reward rate after slash = %d, want %d", slashed.RateData.ValidatorRewardRate, want)
	}

	next := slashed.RateData.Next(ratemath.BaseRateData{BaseRewardRate: ratemath.BaseRewardRate}, 0, slashed.Status.State.RateState())
	if next.ValidatorRewardRate != slashed.RateData.ValidatorRewardRate {
		t.Fatalf("Slashed validator's rates should not change on subsequent Next calls")
	}
}

func TestSlash_InvalidFromInactive(t *testing.T) {
	reader := newFakeReader()
	id := mustIdentity(t)
	reader.infos = []Info{inactiveInfo(id)}
	set, err := New(reader, Epoch{Index: 0, Duration: 100}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := set.Slash(id, 1000); err == nil {
		t.Fatalf("expected slashing an Inactive validator to fail")
	}
}
