package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/weights/internal/dispatch"
	"github.com/eigerco/weights/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTable(t *testing.T) {
	out, err := run(t, "table")
	require.NoError(t, err)

	for _, kind := range dispatch.AllCallKinds() {
		assert.Contains(t, out, string(kind))
	}
	assert.Contains(t, out, "195000000")
	assert.Contains(t, out, "max_block")
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"transfer", []string{"compute", "transfer"}, "transfer weight=195000000 class=Normal pays=Yes\n"},
		{"remark", []string{"compute", "system_remark"}, "system_remark weight=700000 class=Normal pays=Yes\n"},
		{"set_storage default item", []string{"compute", "system_set_storage"}, "system_set_storage(1 items) weight=100600000 "},
		{"set_storage ten items", []string{"compute", "system_set_storage", "--items", "10"}, "system_set_storage(10 items) weight=1006000000 "},
		{"set_storage no items", []string{"compute", "system_set_storage", "--items", "0"}, "system_set_storage(0 items) weight=0 "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	_, err := run(t, "compute", "no_such_call")
	assert.ErrorIs(t, err, dispatch.ErrUnknownCallKind)

	_, err = run(t, "compute", "transfer", "--items", "2")
	assert.ErrorIs(t, err, errItemsNotApplicable)

	_, err = run(t, "compute")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok:")
}

func TestDumpConfig(t *testing.T) {
	out, err := run(t, "dumpconfig", "--store", "/tmp/somewhere")
	require.NoError(t, err)
	assert.Contains(t, out, "/tmp/somewhere")
	assert.Contains(t, out, "rocksdb")
}

func TestSnapshotRecordCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")

	_, err := run(t, "snapshot", "check", "--store", dir)
	require.ErrorIs(t, err, store.ErrSnapshotNotFound)

	out, err := run(t, "snapshot", "record", "--store", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "recorded ")

	out, err = run(t, "snapshot", "check", "--store", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok ")

	out, err = run(t, "snapshot", "list", "--store", dir)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	configPath := filepath.Join(t.TempDir(), "weights.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("db_backend = \"paritydb\"\n"), 0o600))

	out, err = run(t, "snapshot", "check", "--store", dir, "--config", configPath)
	require.ErrorIs(t, err, errSnapshotDrift)
	assert.Contains(t, out, "-transfer")
	assert.Contains(t, out, "+transfer")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "table", "--log-level", "loud")
	assert.Error(t, err)
}
