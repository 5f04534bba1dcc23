//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_CreateBackup(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "references.bib")
	content := []byte("@article{knuth1984,\n  title = {Literate Programming}\n}\n")
	require.NoError(t, os.WriteFile(testFile, content, 0644))

	// Test backup creation
	err := fs.CreateBackup(testFile, ".backup")
	require.NoError(t, err)

	backup, err := fs.ReadFile(testFile + ".backup")
	require.NoError(t, err)
	assert.Equal(t, content, backup)

	// Test backup replaces a previous backup
	updated := []byte("@article{knuth1984,\n  title = {Literate Programming},\n  year = {1984}\n}\n")
	require.NoError(t, os.WriteFile(testFile, updated, 0644))

	err = fs.CreateBackup(testFile, ".backup")
	require.NoError(t, err)

	backup, err = fs.ReadFile(testFile + ".backup")
	require.NoError(t, err)
	assert.Equal(t, updated, backup)

	// Test backup of a missing file
	err = fs.CreateBackup(filepath.Join(tempDir, "missing.bib"), ".backup")
	assert.Error(t, err)

	// Test backup of a directory
	err = fs.CreateBackup(tempDir, ".backup")
	assert.ErrorIs(t, err, ErrNotRegularFile)
}
