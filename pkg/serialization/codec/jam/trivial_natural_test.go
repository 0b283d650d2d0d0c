package jam

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTrivialUint32(t *testing.T) {
	tn := TrivialNatural[uint32]{}
	testCases := []struct {
		x        uint32
		l        uint8
		expected []byte
	}{
		{0, 1, []byte{0}},
		{5, 4, []byte{5, 0, 0, 0}},
		{13, 4, []byte{13, 0, 0, 0}},
		{1 << 16, 4, []byte{0, 0, 1, 0}},
		{math.MaxUint32, 4, []byte{255, 255, 255, 255}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("uint32(%d)", tc.x), func(t *testing.T) {
			serialized := tn.Serialize(tc.x, tc.l)
			assert.Equal(t, tc.expected, serialized)

			var deserialized uint32
			require.NoError(t, tn.Deserialize(serialized, tc.l, &deserialized))
			assert.Equal(t, tc.x, deserialized)
		})
	}
}

func TestDecodeTrivialShortInput(t *testing.T) {
	tn := TrivialNatural[uint64]{}
	var v uint64
	err := tn.Deserialize([]byte{1, 2, 3}, 8, &v)
	assert.ErrorIs(t, err, ErrShortInput)
}
