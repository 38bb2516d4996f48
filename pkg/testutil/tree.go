package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeTree creates files under root. Keys are slash-separated relative
// paths, values are file contents. Parent directories are created as
// needed; a key ending in "/" creates an empty directory.
func MakeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

// ReadTree walks root and returns relative path -> content for every
// regular file. Root itself is resolved first, so a link left behind by
// a relocation reads as the tree it points at.
func ReadTree(t *testing.T, root string) map[string]string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	tree := make(map[string]string)
	err = filepath.Walk(resolved, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

// AssertTreeEqual compares the full recursive content reachable at root
// against the expected file map.
func AssertTreeEqual(t *testing.T, expected map[string]string, root string) {
	t.Helper()
	require.Equal(t, expected, ReadTree(t, root))
}
