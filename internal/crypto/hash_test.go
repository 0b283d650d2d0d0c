package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashData(t *testing.T) {
	// blake2b-256 of the empty input
	want := "0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	assert.Equal(t, want, HashData(nil).String())

	assert.Equal(t, HashData([]byte("weights")), HashData([]byte("weights")))
	assert.NotEqual(t, HashData([]byte("a")), HashData([]byte("b")))
}

func TestParseHash(t *testing.T) {
	h := HashData([]byte("snapshot"))

	parsed, err := ParseHash(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)

	parsed, err = ParseHash(hex.EncodeToString(h[:]))
	require.NoError(t, err)
	assert.Equal(t, h, parsed)

	_, err = ParseHash("0x1234")
	assert.ErrorIs(t, err, hex.ErrLength)

	_, err = ParseHash("zz")
	assert.Error(t, err)
}
