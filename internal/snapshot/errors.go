package snapshot

import "errors"

var (
	ErrInvalidRecord  = errors.New("invalid snapshot record")
	ErrInvalidProfile = errors.New("invalid profile name")
)
