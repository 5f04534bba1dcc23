package rewrite

import "errors"

var (
	// ErrUnknownPolicy is returned when a comment policy value is not
	// one of the supported names.
	ErrUnknownPolicy = errors.New("unknown comment policy")
)
