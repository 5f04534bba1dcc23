package engine

import "errors"

// Error definitions for engine package.
var (
	ErrEmptyPath          = errors.New("definition file path cannot be empty")
	ErrDefinitionNotFound = errors.New("definition file not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrNoEntries          = errors.New("no entries found")
	ErrNoFiles            = errors.New("no LaTeX files found")
)
