package weight

import (
	"fmt"

	"github.com/eigerco/weights/internal/safemath"
)

// Weight is an amount of execution time measured in abstract units,
// one unit being a picosecond of reference hardware time.
type Weight uint64

const (
	WeightPerSecond Weight = 1_000_000_000_000
	WeightPerMillis        = WeightPerSecond / 1_000 // 1_000_000_000
	WeightPerMicros        = WeightPerMillis / 1_000 // 1_000_000
	WeightPerNanos         = WeightPerMicros / 1_000 // 1_000
)

// SaturatingAdd returns w+o, clamped at the maximum representable weight.
func (w Weight) SaturatingAdd(o Weight) Weight {
	return Weight(safemath.SaturatingAdd64(uint64(w), uint64(o)))
}

// SaturatingMul returns w*n, clamped at the maximum representable weight.
func (w Weight) SaturatingMul(n uint64) Weight {
	return Weight(safemath.SaturatingMul64(uint64(w), n))
}

// CheckedAdd returns w+o or safemath.ErrOverflow.
func (w Weight) CheckedAdd(o Weight) (Weight, error) {
	v, ok := safemath.Add64(uint64(w), uint64(o))
	if !ok {
		return 0, safemath.ErrOverflow
	}
	return Weight(v), nil
}

// CheckedMul returns w*n or safemath.ErrOverflow.
func (w Weight) CheckedMul(n uint64) (Weight, error) {
	v, ok := safemath.Mul64(uint64(w), n)
	if !ok {
		return 0, safemath.ErrOverflow
	}
	return Weight(v), nil
}

func (w Weight) String() string {
	return fmt.Sprintf("%d", uint64(w))
}
