package store

const (
	ErrFailedBatchCommit = "failed to commit batch: %w"
)

// Prefix constants for all store types
const (
	prefixParams byte = iota + 1
	prefixSnapshot
)

// PrefixToString converts a prefix byte to a string
func PrefixToString(p byte) string {
	switch p {
	case prefixParams:
		return "params"
	case prefixSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// makeKey creates a key from a prefix and its parts, each part but the last followed by a NUL separator.
func makeKey(prefix byte, parts ...[]byte) []byte {
	size := 1
	for _, p := range parts {
		size += len(p) + 1
	}
	key := make([]byte, 0, size)
	key = append(key, prefix)
	for i, p := range parts {
		if i > 0 {
			key = append(key, 0)
		}
		key = append(key, p...)
	}
	return key
}
