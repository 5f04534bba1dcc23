package fs

import (
	"fmt"
	"os"
)

// CreateBackup copies the file at path to path+suffix, replacing any previous backup.
func (f *realFS) CreateBackup(path, suffix string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return f.WriteFileAtomic(path+suffix, data, info.Mode().Perm())
}
