package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigerco/weights/internal/dispatch"
	"github.com/eigerco/weights/internal/snapshot"
	"github.com/eigerco/weights/internal/weight"
	"github.com/eigerco/weights/pkg/db/pebble"
)

func newStore(t *testing.T) *Weights {
	kvStore, err := pebble.NewKVStore()
	require.NoError(t, err)
	w := NewWeights(kvStore)
	t.Cleanup(func() {
		require.NoError(t, w.Close())
	})
	return w
}

func takeSnapshot(t *testing.T, profile string, params dispatch.Params) snapshot.Snapshot {
	model, err := dispatch.NewModel(params)
	require.NoError(t, err)
	s, err := snapshot.Take(model, profile)
	require.NoError(t, err)
	return s
}

func polkadotParams() dispatch.Params {
	return dispatch.Params{
		DbWeight:           weight.RocksDbWeight,
		MaximumBlockWeight: 2 * weight.WeightPerSecond,
		KeySlots:           5,
		MaxTippers:         13,
	}
}

func Test_PutGetSnapshot(t *testing.T) {
	w := newStore(t)
	s := takeSnapshot(t, "polkadot", polkadotParams())

	require.NoError(t, w.PutSnapshot(s))

	got, err := w.GetSnapshot("polkadot")
	require.NoError(t, err)
	require.Equal(t, s, got)
	require.Equal(t, s.Fingerprint(), got.Fingerprint())
	require.Empty(t, snapshot.Diff(s, got))
}

func Test_GetSnapshotNotFound(t *testing.T) {
	w := newStore(t)
	_, err := w.GetSnapshot("polkadot")
	require.ErrorIs(t, err, ErrSnapshotNotFound)
}

func Test_PutSnapshotReplaces(t *testing.T) {
	w := newStore(t)
	first := snapshot.Snapshot{
		Profile: "polkadot",
		Params:  polkadotParams(),
		Entries: []snapshot.Entry{
			{Kind: "retired_call", Info: weight.DispatchInfo{Weight: 1}},
			{Kind: dispatch.SystemRemark, Info: weight.DispatchInfo{Weight: 2}},
		},
	}
	require.NoError(t, w.PutSnapshot(first))

	params := polkadotParams()
	params.DbWeight = weight.ParityDbWeight
	second := takeSnapshot(t, "polkadot", params)
	require.NoError(t, w.PutSnapshot(second))

	got, err := w.GetSnapshot("polkadot")
	require.NoError(t, err)
	require.Equal(t, second, got)

	_, ok := got.Lookup("retired_call")
	require.False(t, ok)
}

func Test_GetSnapshotOrder(t *testing.T) {
	w := newStore(t)
	s := snapshot.Snapshot{
		Profile: "polkadot",
		Params:  polkadotParams(),
		Entries: []snapshot.Entry{
			{Kind: "zz_unknown", Info: weight.DispatchInfo{Weight: 4}},
			{Kind: dispatch.TreasuryTip, Info: weight.DispatchInfo{Weight: 3}},
			{Kind: "aa_unknown", Info: weight.DispatchInfo{Weight: 5}},
			{Kind: dispatch.BalancesTransfer, Info: weight.DispatchInfo{Weight: 1}},
		},
	}
	require.NoError(t, w.PutSnapshot(s))

	got, err := w.GetSnapshot("polkadot")
	require.NoError(t, err)

	var kinds []dispatch.CallKind
	for _, e := range got.Entries {
		kinds = append(kinds, e.Kind)
	}
	require.Equal(t, []dispatch.CallKind{
		dispatch.BalancesTransfer,
		dispatch.TreasuryTip,
		"aa_unknown",
		"zz_unknown",
	}, kinds)
}

func Test_ProfilesAreIsolated(t *testing.T) {
	w := newStore(t)

	tiny := polkadotParams()
	tiny.KeySlots = 2
	tiny.MaxTippers = 3

	require.NoError(t, w.PutSnapshot(takeSnapshot(t, "polkadot", polkadotParams())))
	require.NoError(t, w.PutSnapshot(takeSnapshot(t, "polka", tiny)))

	profiles, err := w.Profiles()
	require.NoError(t, err)
	require.Equal(t, []string{"polka", "polkadot"}, profiles)

	got, err := w.GetSnapshot("polka")
	require.NoError(t, err)
	require.Len(t, got.Entries, len(dispatch.AllCallKinds()))
	require.Equal(t, uint32(2), got.Params.KeySlots)

	require.NoError(t, w.DeleteSnapshot("polka"))
	_, err = w.GetSnapshot("polka")
	require.ErrorIs(t, err, ErrSnapshotNotFound)

	got, err = w.GetSnapshot("polkadot")
	require.NoError(t, err)
	require.Len(t, got.Entries, len(dispatch.AllCallKinds()))
}

func Test_InvalidProfile(t *testing.T) {
	w := newStore(t)
	_, err := w.GetSnapshot("bad\x00profile")
	require.ErrorIs(t, err, snapshot.ErrInvalidProfile)

	err = w.PutSnapshot(snapshot.Snapshot{Profile: ""})
	require.ErrorIs(t, err, snapshot.ErrInvalidProfile)
}

func Test_Close(t *testing.T) {
	kvStore, err := pebble.NewKVStore()
	require.NoError(t, err)
	w := NewWeights(kvStore)

	require.NoError(t, w.Close())
	// Closing a closed store should have no effect/error
	require.NoError(t, w.Close())

	_, err = w.GetSnapshot("polkadot")
	require.Equal(t, ErrStoreClosed, err)
	require.Equal(t, ErrStoreClosed, w.PutSnapshot(snapshot.Snapshot{Profile: "polkadot"}))
	_, err = w.Profiles()
	require.Equal(t, ErrStoreClosed, err)
}

func Test_PrefixToString(t *testing.T) {
	require.Equal(t, "params", PrefixToString(prefixParams))
	require.Equal(t, "snapshot", PrefixToString(prefixSnapshot))
	require.Equal(t, "unknown", PrefixToString(0))
}
