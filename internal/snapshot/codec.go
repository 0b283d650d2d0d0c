package snapshot

import (
	"fmt"

	"github.com/eigerco/weights/internal/dispatch"
	"github.com/eigerco/weights/internal/weight"
	"github.com/eigerco/weights/pkg/serialization/codec/jam"
)

// EncodeInfo serializes dispatch info as class byte, pays byte and the weight as a general natural.
func EncodeInfo(info weight.DispatchInfo) []byte {
	b := []byte{byte(info.Class), byte(info.PaysFee)}
	return append(b, jam.SerializeUint64(uint64(info.Weight))...)
}

func DecodeInfo(b []byte) (weight.DispatchInfo, error) {
	if len(b) < 3 {
		return weight.DispatchInfo{}, fmt.Errorf("%w: %d bytes", ErrInvalidRecord, len(b))
	}
	class := weight.DispatchClass(b[0])
	if class > weight.Mandatory {
		return weight.DispatchInfo{}, fmt.Errorf("%w: dispatch class %d", ErrInvalidRecord, b[0])
	}
	pays := weight.Pays(b[1])
	if pays > weight.PaysNo {
		return weight.DispatchInfo{}, fmt.Errorf("%w: pays %d", ErrInvalidRecord, b[1])
	}

	w, n, err := jam.DeserializeUint64(b[2:])
	if err != nil {
		return weight.DispatchInfo{}, fmt.Errorf("%w: weight: %w", ErrInvalidRecord, err)
	}
	if 2+n != len(b) {
		return weight.DispatchInfo{}, fmt.Errorf("%w: %d trailing bytes", ErrInvalidRecord, len(b)-2-n)
	}
	return weight.DispatchInfo{Weight: weight.Weight(w), Class: class, PaysFee: pays}, nil
}

// EncodeParams serializes the runtime params a snapshot was taken under.
func EncodeParams(p dispatch.Params) []byte {
	tn := jam.TrivialNatural[uint32]{}

	var b []byte
	b = append(b, jam.SerializeUint64(uint64(p.DbWeight.Read))...)
	b = append(b, jam.SerializeUint64(uint64(p.DbWeight.Write))...)
	b = append(b, jam.SerializeUint64(uint64(p.MaximumBlockWeight))...)
	b = append(b, tn.Serialize(p.KeySlots, 4)...)
	b = append(b, tn.Serialize(p.MaxTippers, 4)...)
	return b
}

func DecodeParams(b []byte) (dispatch.Params, error) {
	var (
		p      dispatch.Params
		fields [3]uint64
	)
	for i := range fields {
		v, n, err := jam.DeserializeUint64(b)
		if err != nil {
			return p, fmt.Errorf("%w: params field %d: %w", ErrInvalidRecord, i, err)
		}
		fields[i] = v
		b = b[n:]
	}
	if len(b) != 8 {
		return p, fmt.Errorf("%w: params has %d trailing bytes, want 8", ErrInvalidRecord, len(b))
	}

	tn := jam.TrivialNatural[uint32]{}
	if err := tn.Deserialize(b[:4], 4, &p.KeySlots); err != nil {
		return p, err
	}
	if err := tn.Deserialize(b[4:], 4, &p.MaxTippers); err != nil {
		return p, err
	}
	p.DbWeight = weight.DbWeight{Read: weight.Weight(fields[0]), Write: weight.Weight(fields[1])}
	p.MaximumBlockWeight = weight.Weight(fields[2])
	return p, nil
}
