package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.InfoLevel, Type: JSONLogger, Output: &buf})

	Model.Info().Uint64("weight", 195_000_000).Msg("computed")
	Store.Debug().Msg("filtered out")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "model", entry["component"])
	assert.Equal(t, "computed", entry["message"])
	assert.EqualValues(t, 195_000_000, entry["weight"])
}

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.DebugLevel, Type: ConsoleLogger, Output: &buf})

	CLI.Debug().Str("kind", "transfer").Msg("compute")
	out := buf.String()
	assert.Contains(t, out, "| DEBUG |")
	assert.Contains(t, out, `message: "compute"`)
	assert.Contains(t, out, `"kind": "transfer"`)
}

func TestParse(t *testing.T) {
	lvl, err := ParseLogLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	typ, err := ParseLoggerType("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSONLogger, typ)

	typ, err = ParseLoggerType("")
	require.NoError(t, err)
	assert.Equal(t, ConsoleLogger, typ)

	_, err = ParseLoggerType("xml")
	assert.Error(t, err)
}
