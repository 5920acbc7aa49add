package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.ini", "a.ini", "nested/c.ini", "ignored.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	files, err := FindFilesByExtension(dir, ".ini")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.ini"),
		filepath.Join(dir, "b.ini"),
		filepath.Join(dir, "nested", "c.ini"),
	}
	// Sorted, so results never depend on directory iteration order.
	assert.Equal(t, want, files)
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".ini")
	require.Error(t, err)
}
