package discovery

import "errors"

// Error definitions for discovery package.
var (
	ErrNotADirectory = errors.New("not a directory")
)
