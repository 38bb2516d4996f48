// Test Type: Unit Test
// Description: Sanity checks for the tree helpers.

package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/relink/pkg/testutil"
)

func TestMakeAndReadTreeRoundTrip(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.txt":          "one",
		"nested/b.txt":   "two",
		"nested/deeper/": "",
	}
	testutil.MakeTree(t, root, files)

	got := testutil.ReadTree(t, root)
	assert.Equal(t, map[string]string{
		"a.txt":        "one",
		"nested/b.txt": "two",
	}, got)
}

func TestReadTreeThroughLinkedRoot(t *testing.T) {
	real := t.TempDir()
	files := map[string]string{
		"a.txt":        "one",
		"nested/b.txt": "two",
	}
	testutil.MakeTree(t, real, files)

	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(real, link))

	assert.Equal(t, files, testutil.ReadTree(t, link))
	testutil.AssertTreeEqual(t, files, link)
}
