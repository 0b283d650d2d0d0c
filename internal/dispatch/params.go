package dispatch

import (
	"fmt"

	"github.com/eigerco/weights/internal/constants"
	"github.com/eigerco/weights/internal/weight"
)

// Params are the runtime values the weight table is evaluated against.
// They are fixed at startup and never mutated afterwards.
type Params struct {
	DbWeight           weight.DbWeight
	MaximumBlockWeight weight.Weight
	KeySlots           uint32
	MaxTippers         uint32
}

// DefaultParams returns the params of the chain profile selected at build time,
// assuming a RocksDB backend.
func DefaultParams() Params {
	return Params{
		DbWeight:           weight.RocksDbWeight,
		MaximumBlockWeight: weight.Weight(constants.MaximumBlockWeight),
		KeySlots:           constants.SessionKeySlots,
		MaxTippers:         constants.MaxTippers,
	}
}

func (p Params) Validate() error {
	if p.MaximumBlockWeight == 0 {
		return fmt.Errorf("%w: maximum block weight must be positive", ErrInvalidParams)
	}
	return nil
}
