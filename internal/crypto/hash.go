package crypto

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

type Hash [HashSize]byte

func HashData(data []byte) Hash {
	return blake2b.Sum256(data)
}

// String returns the 0x prefixed hex form of the hash.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// ParseHash parses a hex string, with or without 0x prefix, into a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, err
	}
	if len(b) != HashSize {
		return h, hex.ErrLength
	}
	copy(h[:], b)
	return h, nil
}
