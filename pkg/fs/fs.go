// Package fs provides the file system operations the tools need.
package fs

import "os"

//go:generate mockgen -source=fs.go -destination=mockfs.gen.go -package=fs

// FS interface provides file system operations for reading and
// rewriting LaTeX sources.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// CreateBackup copies the file at path to path+suffix, replacing any previous backup.
	CreateBackup(path, suffix string) error
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
