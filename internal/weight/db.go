package weight

import "github.com/eigerco/weights/internal/constants"

// DbWeight is the cost of a single storage access under a given database backend.
type DbWeight struct {
	Read  Weight `toml:"read"`
	Write Weight `toml:"write"`
}

var (
	RocksDbWeight = DbWeight{
		Read:  constants.RocksDbReadMicros * WeightPerMicros,
		Write: constants.RocksDbWriteMicros * WeightPerMicros,
	}
	ParityDbWeight = DbWeight{
		Read:  constants.ParityDbReadMicros * WeightPerMicros,
		Write: constants.ParityDbWriteMicros * WeightPerMicros,
	}
)

// Reads returns the weight of n storage reads.
func (d DbWeight) Reads(n uint64) Weight {
	return d.Read.SaturatingMul(n)
}

// Writes returns the weight of n storage writes.
func (d DbWeight) Writes(n uint64) Weight {
	return d.Write.SaturatingMul(n)
}

// ReadsWrites returns the weight of r reads and w writes.
func (d DbWeight) ReadsWrites(r, w uint64) Weight {
	return d.Reads(r).SaturatingAdd(d.Writes(w))
}

// CheckedReadsWrites is ReadsWrites without saturation.
func (d DbWeight) CheckedReadsWrites(r, w uint64) (Weight, error) {
	reads, err := d.Read.CheckedMul(r)
	if err != nil {
		return 0, err
	}
	writes, err := d.Write.CheckedMul(w)
	if err != nil {
		return 0, err
	}
	return reads.CheckedAdd(writes)
}
