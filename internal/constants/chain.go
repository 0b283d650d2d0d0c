//go:build !tiny

package constants

// Chain specific constants by configuration, eg tiny

const (
	Profile = "polkadot"

	// Number of session key types a validator registers
	// (babe, grandpa, im_online, parachain validator, authority discovery).
	SessionKeySlots = 5

	// Upper bound on the number of tippers, the size of the general council.
	MaxTippers = 13

	// MaximumBlockWeight is the weight ceiling of a single block, 2 seconds of compute.
	// Calls without a bounded cost (code upgrades, enactment of arbitrary proposals)
	// are charged this value in full.
	MaximumBlockWeight uint64 = 2_000_000_000_000
)
