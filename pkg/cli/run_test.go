// Test Type: Integration Test
// Description: End-to-end runs through the cli wiring: full relocation,
// re-run idempotence, precondition failures, dry run.

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/relink/pkg/cli"
	"github.com/arthur-debert/relink/pkg/display"
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/testutil"
)

func setupRoots(t *testing.T, dirs ...string) (string, string) {
	t.Helper()
	source := t.TempDir()
	target := t.TempDir()
	for _, dir := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(source, dir), 0755))
		testutil.MakeTree(t, filepath.Join(source, dir), map[string]string{
			"data.txt": dir,
		})
	}
	return source, target
}

func TestRunEndToEnd(t *testing.T) {
	source, target := setupRoots(t, "alpha", "beta")
	var out bytes.Buffer

	summary, err := cli.Run(cli.RunOptions{
		Source: source,
		Target: target,
		Format: "json",
		Out:    &out,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 0, summary.Errors)

	var report display.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Len(t, report.Tasks, 2)

	// Content reachable through the links left at the original paths
	testutil.AssertTreeEqual(t, map[string]string{"data.txt": "alpha"},
		filepath.Join(source, "alpha"))
	testutil.AssertTreeEqual(t, map[string]string{"data.txt": "alpha"},
		filepath.Join(target, "alpha"))
}

func TestRunIsIdempotent(t *testing.T) {
	source, target := setupRoots(t, "alpha")
	opts := cli.RunOptions{Source: source, Target: target, Format: "text", Out: &bytes.Buffer{}}

	first, err := cli.Run(opts)
	require.NoError(t, err)
	require.Equal(t, 1, first.Success)

	second, err := cli.Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Success)
	assert.Equal(t, 1, second.Skipped)
}

func TestRunMissingSourceIsFatal(t *testing.T) {
	_, err := cli.Run(cli.RunOptions{
		Source: filepath.Join(t.TempDir(), "gone"),
		Target: t.TempDir(),
		Format: "text",
		Out:    &bytes.Buffer{},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceMissing))
}

func TestRunNestedRootsAreFatal(t *testing.T) {
	source, _ := setupRoots(t, "alpha")

	_, err := cli.Run(cli.RunOptions{
		Source: source,
		Target: filepath.Join(source, "bulk"),
		Format: "text",
		Out:    &bytes.Buffer{},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathCycle))

	// Precondition failures process nothing
	testutil.AssertTreeEqual(t, map[string]string{"data.txt": "alpha"},
		filepath.Join(source, "alpha"))
}

func TestRunDryRunCreatesNothing(t *testing.T) {
	source, target := setupRoots(t, "alpha")

	summary, err := cli.Run(cli.RunOptions{
		Source: source,
		Target: filepath.Join(target, "deeper"),
		DryRun: true,
		Format: "text",
		Out:    &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)

	// Dry run did not even create the target root
	_, err = os.Lstat(filepath.Join(target, "deeper"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunExcludePatterns(t *testing.T) {
	source, target := setupRoots(t, "apps", "cache")

	summary, err := cli.Run(cli.RunOptions{
		Source:  source,
		Target:  target,
		Exclude: []string{"cache*"},
		Format:  "text",
		Out:     &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)

	// Excluded directory never moved
	info, err := os.Lstat(filepath.Join(source, "cache"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	source, target := setupRoots(t)
	_, err := cli.Run(cli.RunOptions{
		Source: source,
		Target: target,
		Format: "csv",
		Out:    &bytes.Buffer{},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
