// Test Type: Unit/Integration Test
// Description: Exercises the per-directory relocation state machine,
// including rollback and verification failure branches, on a real
// temp-dir filesystem.

package engine_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/relink/pkg/engine"
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/filesystem"
	"github.com/arthur-debert/relink/pkg/testutil"
	"github.com/arthur-debert/relink/pkg/types"
)

func newTask(t *testing.T, files map[string]string) (types.DirectoryTask, string, string) {
	t.Helper()

	sourceRoot := t.TempDir()
	targetRoot := t.TempDir()
	task := types.NewDirectoryTask(types.RelocationRequest{
		SourceRoot: sourceRoot,
		TargetRoot: targetRoot,
	}, "apps")

	require.NoError(t, os.Mkdir(task.SourcePath, 0755))
	testutil.MakeTree(t, task.SourcePath, files)

	return task, sourceRoot, targetRoot
}

func defaultEngine(fs types.FS) *engine.Engine {
	return engine.New(fs, engine.NewLinker(fs), engine.Options{Verify: true})
}

func TestRelocateSuccess(t *testing.T) {
	files := map[string]string{
		"bin/app":        "binary",
		"data/notes.txt": "hello",
		"empty/":         "",
	}
	task, _, _ := newTask(t, files)
	fs := filesystem.NewOS()

	outcome := defaultEngine(fs).Relocate(task)

	require.NoError(t, outcome.Err)
	assert.Equal(t, types.StatusSuccess, outcome.Status)

	// The original path is now a link
	info, err := os.Lstat(task.SourcePath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	dest, err := os.Readlink(task.SourcePath)
	require.NoError(t, err)
	assert.Equal(t, task.TargetPath, dest)

	// Full content is reachable both through the link and directly
	expected := map[string]string{"bin/app": "binary", "data/notes.txt": "hello"}
	testutil.AssertTreeEqual(t, expected, task.SourcePath)
	testutil.AssertTreeEqual(t, expected, task.TargetPath)
}

func TestRelocateSkipsExistingTarget(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "original"})
	fs := filesystem.NewOS()

	require.NoError(t, os.MkdirAll(task.TargetPath, 0755))

	outcome := defaultEngine(fs).Relocate(task)

	assert.Equal(t, types.StatusSkipped, outcome.Status)
	assert.Equal(t, "target already exists", outcome.Reason)

	// Source is completely untouched: still a real directory, content intact
	info, err := os.Lstat(task.SourcePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "original"}, task.SourcePath)
}

func TestRelocateSkipsDanglingLinkAtTarget(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "x"})
	fs := filesystem.NewOS()

	// A dangling link still counts as an occupied target
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "gone"), task.TargetPath))

	outcome := defaultEngine(fs).Relocate(task)
	assert.Equal(t, types.StatusSkipped, outcome.Status)
}

func TestRelocateTargetCheckFailure(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "keep me"})

	fs := testutil.NewFaultFS(filesystem.NewOS())
	fs.BeforeLstat = func(name string) error {
		if name == task.TargetPath {
			return fmt.Errorf("permission denied")
		}
		return nil
	}

	outcome := defaultEngine(fs).Relocate(task)

	assert.Equal(t, types.StatusFailed, outcome.Status)
	assert.False(t, outcome.Critical)
	assert.True(t, errors.IsErrorCode(outcome.Err, errors.ErrTargetCheck))

	// Nothing moved: the failure happened before any mutation
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "keep me"}, task.SourcePath)
	_, err := os.Lstat(task.TargetPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRelocateMoveFailureLeavesSourceIntact(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "keep me"})

	fs := testutil.NewFaultFS(filesystem.NewOS())
	fs.BeforeRename = func(oldpath, newpath string) error {
		return fmt.Errorf("device busy")
	}

	outcome := defaultEngine(fs).Relocate(task)

	assert.Equal(t, types.StatusFailed, outcome.Status)
	assert.False(t, outcome.Critical)
	assert.True(t, errors.IsErrorCode(outcome.Err, errors.ErrMoveFailed))

	// No mutation happened at all
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "keep me"}, task.SourcePath)
	_, err := os.Lstat(task.TargetPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRelocateLinkFailureRollsBack(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "survivor"})

	fs := testutil.NewFaultFS(filesystem.NewOS())
	fs.BeforeSymlink = func(oldname, newname string) error {
		return fmt.Errorf("privilege revoked")
	}

	outcome := defaultEngine(fs).Relocate(task)

	assert.Equal(t, types.StatusRolledBack, outcome.Status)
	assert.False(t, outcome.Critical)
	assert.True(t, errors.IsErrorCode(outcome.Err, errors.ErrLinkCreate))

	// Rollback restored the source as a real directory; target is empty
	info, err := os.Lstat(task.SourcePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "survivor"}, task.SourcePath)
	_, err = os.Lstat(task.TargetPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRelocateRollbackFailureIsCritical(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "stranded"})

	fs := testutil.NewFaultFS(filesystem.NewOS())
	fs.BeforeSymlink = func(oldname, newname string) error {
		return fmt.Errorf("privilege revoked")
	}
	fs.BeforeRename = func(oldpath, newpath string) error {
		if oldpath == task.TargetPath {
			return fmt.Errorf("target volume detached")
		}
		return nil
	}

	outcome := defaultEngine(fs).Relocate(task)

	assert.Equal(t, types.StatusFailed, outcome.Status)
	assert.True(t, outcome.Critical)
	assert.True(t, errors.IsErrorCode(outcome.Err, errors.ErrRollbackFailed))

	// The irrecoverable state: directory only exists at the target
	_, err := os.Lstat(task.SourcePath)
	assert.True(t, os.IsNotExist(err))
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "stranded"}, task.TargetPath)
}

func TestRelocateVerifyFailureIsCriticalWithoutRollback(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "x"})

	fs := testutil.NewFaultFS(filesystem.NewOS())
	fs.BeforeStat = func(name string) error {
		if name == task.SourcePath {
			return fmt.Errorf("reparse point broken")
		}
		return nil
	}

	outcome := defaultEngine(fs).Relocate(task)

	assert.Equal(t, types.StatusFailed, outcome.Status)
	assert.True(t, outcome.Critical)
	assert.True(t, errors.IsErrorCode(outcome.Err, errors.ErrVerifyFailed))

	// No rollback was attempted: content stays at the target and the
	// link is left in place for inspection.
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "x"}, task.TargetPath)
	info, err := os.Lstat(task.SourcePath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestRelocateDryRunMutatesNothing(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "untouched"})
	fs := filesystem.NewOS()

	eng := engine.New(fs, engine.NewLinker(fs), engine.Options{DryRun: true, Verify: true})
	outcome := eng.Relocate(task)

	assert.Equal(t, types.StatusDryRun, outcome.Status)
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "untouched"}, task.SourcePath)
	_, err := os.Lstat(task.TargetPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRelocateIdempotent(t *testing.T) {
	task, _, _ := newTask(t, map[string]string{"file.txt": "once"})
	fs := filesystem.NewOS()
	eng := defaultEngine(fs)

	first := eng.Relocate(task)
	require.Equal(t, types.StatusSuccess, first.Status)

	second := eng.Relocate(task)
	assert.Equal(t, types.StatusSkipped, second.Status)

	// Still exactly one copy of the content, reachable both ways
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "once"}, task.SourcePath)
	testutil.AssertTreeEqual(t, map[string]string{"file.txt": "once"}, task.TargetPath)
}
