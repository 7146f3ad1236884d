package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments and captures output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// projectTree builds root/pkgA/node_modules/{a.txt,sub/} and
// root/pkgB/node_modules/b.txt.
func projectTree(t *testing.T) (root string, matches []string) {
	t.Helper()
	root = t.TempDir()

	aDir := filepath.Join(root, "pkgA", "node_modules")
	require.NoError(t, os.MkdirAll(filepath.Join(aDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(aDir, "a.txt"), make([]byte, 10), 0o644))

	bDir := filepath.Join(root, "pkgB", "node_modules")
	require.NoError(t, os.MkdirAll(bDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bDir, "b.txt"), make([]byte, 20), 0o644))

	return root, []string{aDir, bDir}
}

func TestSizeAction(t *testing.T) {
	root, matches := projectTree(t)

	stdout, _, err := execute(t, "size", root)

	require.NoError(t, err)
	assert.Contains(t, stdout, matches[0])
	assert.Contains(t, stdout, matches[1])
	assert.Contains(t, stdout, "Total size: 30.00 B")

	// size is read-only.
	assert.DirExists(t, matches[0])
	assert.DirExists(t, matches[1])
}

func TestSizeActionEmptyTree(t *testing.T) {
	stdout, _, err := execute(t, "size", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, stdout, "Total size: 0 B")
}

func TestCountAction(t *testing.T) {
	root, matches := projectTree(t)

	stdout, _, err := execute(t, "count", root)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 2 node_modules folders")
	assert.Contains(t, stdout, matches[0]+"  1 subfolder\n")
	assert.Contains(t, stdout, matches[1]+"  0 subfolders\n")
}

func TestDeleteAction(t *testing.T) {
	root, matches := projectTree(t)

	stdout, stderr, err := execute(t, "delete", root)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Processed 2 node_modules folders")
	assert.Empty(t, stderr)

	assert.NoDirExists(t, matches[0])
	assert.NoDirExists(t, matches[1])
	assert.DirExists(t, filepath.Join(root, "pkgA"))
	assert.DirExists(t, filepath.Join(root, "pkgB"))
}

func TestUnknownActionFails(t *testing.T) {
	root, matches := projectTree(t)

	_, stderr, err := execute(t, "frobnicate", root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown action "frobnicate"`)
	assert.Contains(t, err.Error(), "valid actions: size, count, delete")
	assert.Contains(t, stderr, "unknown action")

	// A usage error must not mutate the filesystem.
	assert.DirExists(t, matches[0])
	assert.DirExists(t, matches[1])
}

func TestVersionAction(t *testing.T) {
	stdout, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "nodemole")
}
