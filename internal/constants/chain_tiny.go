//go:build tiny

package constants

const (
	Profile                   = "tiny"
	SessionKeySlots           = 2
	MaxTippers                = 3
	MaximumBlockWeight uint64 = 500_000_000_000
)
