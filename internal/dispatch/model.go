package dispatch

import (
	"fmt"

	"github.com/eigerco/weights/internal/weight"
	"github.com/eigerco/weights/pkg/log"
)

// Model evaluates the weight table against a fixed set of params.
// It holds no mutable state and is safe for concurrent use.
type Model struct {
	params  Params
	checked bool
}

type Option func(*Model)

// WithCheckedArithmetic makes the model fail with ErrArithmeticOverflow
// where it would otherwise saturate.
func WithCheckedArithmetic() Option {
	return func(m *Model) {
		m.checked = true
	}
}

func NewModel(params Params, opts ...Option) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	m := &Model{params: params}
	for _, opt := range opts {
		opt(m)
	}

	log.Model.Debug().
		Uint64("read", uint64(params.DbWeight.Read)).
		Uint64("write", uint64(params.DbWeight.Write)).
		Uint64("max_block_weight", uint64(params.MaximumBlockWeight)).
		Uint32("key_slots", params.KeySlots).
		Uint32("max_tippers", params.MaxTippers).
		Bool("checked", m.checked).
		Msg("weight model ready")
	return m, nil
}

func (m *Model) Params() Params {
	return m.params
}

// ComputeWeight evaluates the weight of a call kind using saturating arithmetic.
func ComputeWeight(kind CallKind, args Args, params Params) (weight.DispatchInfo, error) {
	if err := params.Validate(); err != nil {
		return weight.DispatchInfo{}, err
	}
	m := Model{params: params}
	return m.ComputeWeight(kind, args)
}

// ComputeWeight returns the dispatch info of a call kind constructed with args.
func (m *Model) ComputeWeight(kind CallKind, args Args) (weight.DispatchInfo, error) {
	spec, err := Lookup(kind)
	if err != nil {
		return weight.DispatchInfo{}, err
	}
	info := weight.DispatchInfo{Class: spec.Class, PaysFee: spec.Pays}

	if spec.Ceiling {
		info.Weight = m.params.MaximumBlockWeight
		return info, nil
	}

	n, err := m.scalingInput(spec.Scaling.Source, args)
	if err != nil {
		return weight.DispatchInfo{}, fmt.Errorf("%s: %w", kind, err)
	}

	if m.checked {
		info.Weight, err = m.checkedWeight(spec, n)
		if err != nil {
			return weight.DispatchInfo{}, fmt.Errorf("%w: %s: %w", ErrArithmeticOverflow, kind, err)
		}
		return info, nil
	}
	info.Weight = m.saturatingWeight(spec, n)
	return info, nil
}

func (m *Model) scalingInput(source ScalingSource, args Args) (uint64, error) {
	switch source {
	case ScaleNone:
		return 0, nil
	case ScaleItemCount:
		if args.Items == nil {
			return 0, fmt.Errorf("%w: item list not supplied", ErrMissingScalingInput)
		}
		return uint64(len(args.Items)), nil
	case ScaleKeySlots:
		return uint64(m.params.KeySlots), nil
	case ScaleMaxTippers:
		return uint64(m.params.MaxTippers), nil
	default:
		return 0, fmt.Errorf("%w: unknown scaling source %s", ErrMissingScalingInput, source)
	}
}

// base + (reads + n*readsPerUnit)*read + (writes + n*writesPerUnit)*write + n*perUnit
func (m *Model) saturatingWeight(spec CallWeightSpec, n uint64) weight.Weight {
	s := spec.Scaling
	reads := weight.Weight(spec.Reads).SaturatingAdd(weight.Weight(s.ReadsPerUnit).SaturatingMul(n))
	writes := weight.Weight(spec.Writes).SaturatingAdd(weight.Weight(s.WritesPerUnit).SaturatingMul(n))

	return spec.Base.
		SaturatingAdd(m.params.DbWeight.ReadsWrites(uint64(reads), uint64(writes))).
		SaturatingAdd(s.PerUnit.SaturatingMul(n))
}

func (m *Model) checkedWeight(spec CallWeightSpec, n uint64) (weight.Weight, error) {
	s := spec.Scaling
	extraReads, err := weight.Weight(s.ReadsPerUnit).CheckedMul(n)
	if err != nil {
		return 0, err
	}
	reads, err := extraReads.CheckedAdd(weight.Weight(spec.Reads))
	if err != nil {
		return 0, err
	}
	extraWrites, err := weight.Weight(s.WritesPerUnit).CheckedMul(n)
	if err != nil {
		return 0, err
	}
	writes, err := extraWrites.CheckedAdd(weight.Weight(spec.Writes))
	if err != nil {
		return 0, err
	}

	db, err := m.params.DbWeight.CheckedReadsWrites(uint64(reads), uint64(writes))
	if err != nil {
		return 0, err
	}
	scaled, err := s.PerUnit.CheckedMul(n)
	if err != nil {
		return 0, err
	}
	w, err := spec.Base.CheckedAdd(db)
	if err != nil {
		return 0, err
	}
	return w.CheckedAdd(scaled)
}
