package jam

import (
	"math"
)

// TrivialNatural implements the fixed width little-endian integer formula.
type TrivialNatural[T uint8 | uint16 | uint32 | uint64] struct{}

// Serialize writes x as exactly l little-endian bytes.
func (j *TrivialNatural[T]) Serialize(x T, l uint8) []byte {
	bytes := make([]byte, 0, l)
	for i := uint8(0); i < l; i++ {
		bytes = append(bytes, byte((x>>(8*i))&T(math.MaxUint8)))
	}
	return bytes
}

// Deserialize reads an l byte little-endian integer from the start of serialized.
func (j *TrivialNatural[T]) Deserialize(serialized []byte, l uint8, u *T) error {
	if len(serialized) < int(l) {
		return ErrShortInput
	}
	*u = 0
	for i := 0; i < int(l); i++ {
		*u |= T(serialized[i]) << (8 * i)
	}
	return nil
}
