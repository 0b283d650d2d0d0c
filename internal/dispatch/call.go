package dispatch

import (
	"fmt"

	"github.com/eigerco/weights/internal/weight"
)

type KeyValue struct {
	Key   []byte
	Value []byte
}

// Args carries the constructor arguments that can influence a call's weight.
// Arguments that never affect weight are not modelled.
type Args struct {
	// Items is the key/value list of system_set_storage. A nil slice means the
	// argument was not supplied, an empty slice is a call with no items.
	Items []KeyValue

	// Code is the runtime blob of system_set_code. Its size does not affect weight.
	Code []byte

	Remark []byte
}

// DefaultArgs returns the arguments a call is constructed with when the
// caller has nothing specific to pass.
func DefaultArgs(kind CallKind) Args {
	switch kind {
	case SystemSetStorage:
		return Args{Items: []KeyValue{{Key: []byte{12}, Value: []byte{34}}}}
	default:
		return Args{}
	}
}

// Call is a constructed runtime call.
type Call struct {
	Kind CallKind
	Args Args
}

func NewCall(kind CallKind, args Args) (Call, error) {
	if _, err := Lookup(kind); err != nil {
		return Call{}, err
	}
	return Call{Kind: kind, Args: args}, nil
}

// DispatchInfo computes the call's weight under the given params.
func (c Call) DispatchInfo(params Params) (weight.DispatchInfo, error) {
	return ComputeWeight(c.Kind, c.Args, params)
}

func (c Call) String() string {
	if c.Kind == SystemSetStorage {
		return fmt.Sprintf("%s(%d items)", c.Kind, len(c.Args.Items))
	}
	return c.Kind.String()
}
