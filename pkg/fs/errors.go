package fs

import "errors"

// Error definitions for fs package.
var (
	// Backup errors.
	ErrNotRegularFile = errors.New("not a regular file")
)
