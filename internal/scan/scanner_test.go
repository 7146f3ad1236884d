package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with n bytes of content, making parents as needed.
func writeFile(t *testing.T, path string, n int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, n), 0o644))
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkgA", "node_modules", "a.txt"), 10)
	writeFile(t, filepath.Join(root, "pkgB", "node_modules", "b.txt"), 20)
	writeFile(t, filepath.Join(root, "pkgC", "src", "main.js"), 5)

	matches := NewScanner().Find(root)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "pkgA", "node_modules"),
		filepath.Join(root, "pkgB", "node_modules"),
	}, matches)
}

func TestFindStopsAtMatch(t *testing.T) {
	root := t.TempDir()
	// A dependency's own node_modules, nested inside a match.
	writeFile(t, filepath.Join(root, "app", "node_modules", "dep", "node_modules", "leaf.txt"), 1)

	matches := NewScanner().Find(root)

	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join(root, "app", "node_modules"), matches[0])

	// No match may be nested inside another match.
	for i, outer := range matches {
		for j, inner := range matches {
			if i == j {
				continue
			}
			assert.False(t, strings.HasPrefix(inner, outer+string(filepath.Separator)))
		}
	}
}

func TestFindEmptyTree(t *testing.T) {
	matches := NewScanner().Find(t.TempDir())
	assert.Empty(t, matches)
}

func TestFindIgnoresRegularFiles(t *testing.T) {
	root := t.TempDir()
	// A plain file named node_modules is not a match.
	writeFile(t, filepath.Join(root, "pkg", "node_modules"), 3)

	matches := NewScanner().Find(root)
	assert.Empty(t, matches)
}

func TestFindUnlistableRoot(t *testing.T) {
	s := NewScanner()
	matches := s.Find(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Empty(t, matches)
	assert.Len(t, s.Warnings(), 1)
}

func TestFindSkipsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "open", "node_modules", "a.txt"), 1)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(filepath.Join(locked, "node_modules"), 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	s := NewScanner()
	matches := s.Find(root)

	// The readable sibling is still discovered.
	assert.Equal(t, []string{filepath.Join(root, "open", "node_modules")}, matches)
	assert.NotEmpty(t, s.Warnings())
}

func TestDirSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 10)
	writeFile(t, filepath.Join(root, "sub", "b.txt"), 20)
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"), 5)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	assert.Equal(t, int64(35), DirSize(root))
}

func TestDirSizeMissingPath(t *testing.T) {
	assert.Equal(t, int64(0), DirSize(filepath.Join(t.TempDir(), "gone")))
}

func TestSubdirCount(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "one"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "two"), 0o755))
	writeFile(t, filepath.Join(root, "file.txt"), 1)

	assert.Equal(t, 2, SubdirCount(root))
}

func TestSubdirCountMissingPath(t *testing.T) {
	assert.Equal(t, 0, SubdirCount(filepath.Join(t.TempDir(), "gone")))
}
