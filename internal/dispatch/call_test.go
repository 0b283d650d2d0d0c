package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/weights/internal/weight"
)

func TestCall_DispatchInfo(t *testing.T) {
	call, err := NewCall(BalancesTransferKeepAlive, Args{})
	require.NoError(t, err)

	// 50_000_000 base + one read and one write, 125_000_000 under RocksDB.
	info, err := call.DispatchInfo(polkadotParams())
	require.NoError(t, err)
	assert.Equal(t, weight.DispatchInfo{Weight: 175_000_000, Class: weight.Normal, PaysFee: weight.PaysYes}, info)
	assert.Equal(t, "transfer_keep_alive", call.String())
}

func TestNewCall_Unknown(t *testing.T) {
	_, err := NewCall("sudo", Args{})
	require.ErrorIs(t, err, ErrUnknownCallKind)
}

func TestCall_String(t *testing.T) {
	call := Call{Kind: SystemSetStorage, Args: DefaultArgs(SystemSetStorage)}
	assert.Equal(t, "system_set_storage(1 items)", call.String())
}

func TestParseCallKind(t *testing.T) {
	for _, kind := range AllCallKinds() {
		parsed, err := ParseCallKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseCallKind("Transfer")
	require.ErrorIs(t, err, ErrUnknownCallKind)
}

func TestAllCallKinds_ReturnsCopy(t *testing.T) {
	kinds := AllCallKinds()
	require.Len(t, kinds, 26)
	kinds[0] = "mutated"
	assert.Equal(t, BalancesTransfer, AllCallKinds()[0])
}
