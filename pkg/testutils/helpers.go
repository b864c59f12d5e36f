package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateNamedFiles creates each file with its own name as content, so the
// origin of a renamed file can be read back afterwards.
func CreateNamedFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644)
		require.NoError(t, err)
	}
}

// TempDirWithFiles returns a fresh temporary directory holding the named files
func TempDirWithFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	CreateNamedFiles(t, dir, names...)
	return dir
}

// ListNames returns the sorted entry names of dir
func ListNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// ReadContent returns the content of path as a string
func ReadContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
