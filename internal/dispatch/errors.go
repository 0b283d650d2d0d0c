package dispatch

import "errors"

var (
	// ErrUnknownCallKind is returned when a call kind has no entry in the weight table.
	ErrUnknownCallKind = errors.New("unknown call kind")

	// ErrMissingScalingInput is returned when a call whose weight scales with one of its
	// arguments is constructed without that argument.
	ErrMissingScalingInput = errors.New("missing scaling input")

	// ErrArithmeticOverflow is returned by a model using checked arithmetic when
	// a weight does not fit in 64 bits. The default model saturates instead.
	ErrArithmeticOverflow = errors.New("weight arithmetic overflow")

	ErrInvalidParams = errors.New("invalid runtime params")
)
