package engine

import (
	"os"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures an Engine.
type Options struct {
	// DryRun plans tasks without touching the filesystem.
	DryRun bool

	// Verify re-checks that the created link resolves. On by default;
	// only tests and the config file turn it off.
	Verify bool
}

// Engine applies the move-then-link protocol to one task at a time.
// It holds no per-task state; the same Engine serves a whole run.
type Engine struct {
	fs     types.FS
	linker types.Linker
	opts   Options
	logger zerolog.Logger
}

// New creates an Engine over the given filesystem.
func New(fs types.FS, linker types.Linker, opts Options) *Engine {
	return &Engine{
		fs:     fs,
		linker: linker,
		opts:   opts,
		logger: logging.GetLogger("engine"),
	}
}

// Relocate runs one task through the state machine and returns its
// outcome. Side effects are confined to the task's own path pair.
func (e *Engine) Relocate(task types.DirectoryTask) types.TaskOutcome {
	logger := e.logger.With().Str("dir", task.Name).Logger()

	// Pending -> Checked: the idempotence guard. Any entry at the target,
	// including a dangling link, means a previous run (or the user) got
	// there first; the source is left completely untouched.
	if _, err := e.fs.Lstat(task.TargetPath); err == nil {
		logger.Info().Str("target", task.TargetPath).Msg("Target exists, skipping")
		return types.TaskOutcome{Status: types.StatusSkipped, Reason: "target already exists"}
	} else if !os.IsNotExist(err) {
		return types.TaskOutcome{
			Status: types.StatusFailed,
			Err:    errors.Wrapf(err, errors.ErrTargetCheck, "cannot check target %s", task.TargetPath),
		}
	}

	if e.opts.DryRun {
		logger.Info().Str("target", task.TargetPath).Msg("Dry run, would relocate")
		return types.TaskOutcome{Status: types.StatusDryRun, Reason: "would relocate"}
	}

	// Checked -> Moved: the move is the platform's atomic rename, so a
	// failure here means nothing changed and no rollback is needed.
	if err := e.fs.Rename(task.SourcePath, task.TargetPath); err != nil {
		logger.Error().Err(err).Msg("Move failed")
		return types.TaskOutcome{
			Status: types.StatusFailed,
			Err: errors.Wrapf(err, errors.ErrMoveFailed,
				"cannot move %s to %s", task.SourcePath, task.TargetPath),
		}
	}
	logger.Debug().Str("target", task.TargetPath).Msg("Directory moved")

	// Moved -> Linked
	if err := e.linker.CreateDirLink(task.SourcePath, task.TargetPath); err != nil {
		logger.Error().Err(err).Msg("Link creation failed, attempting rollback")
		return e.rollback(task, errors.Wrapf(err, errors.ErrLinkCreate,
			"cannot link %s to %s", task.SourcePath, task.TargetPath))
	}
	logger.Debug().Msg("Directory link created")

	// Linked -> Verified: the link reported success but must actually
	// resolve. A broken link here is ambiguous (the link may have partly
	// succeeded), so it is reported rather than rolled back.
	if e.opts.Verify {
		if err := e.verify(task); err != nil {
			logger.Error().Err(err).Msg("Link verification failed")
			return types.TaskOutcome{Status: types.StatusFailed, Err: err, Critical: true}
		}
	}

	logger.Info().Str("target", task.TargetPath).Msg("Relocated")
	return types.TaskOutcome{Status: types.StatusSuccess}
}

// rollback moves the directory back after a failed link. It only acts
// when the filesystem is in the exact post-move state: source absent,
// target present. Anything else is reported as critical and left alone.
func (e *Engine) rollback(task types.DirectoryTask, cause error) types.TaskOutcome {
	logger := e.logger.With().Str("dir", task.Name).Logger()

	if _, err := e.fs.Lstat(task.SourcePath); err == nil || !os.IsNotExist(err) {
		return types.TaskOutcome{
			Status: types.StatusFailed,
			Err: errors.Wrapf(cause, errors.ErrRollbackFailed,
				"cannot roll back: %s occupied, directory remains at %s",
				task.SourcePath, task.TargetPath),
			Critical: true,
		}
	}
	if _, err := e.fs.Lstat(task.TargetPath); err != nil {
		return types.TaskOutcome{
			Status: types.StatusFailed,
			Err: errors.Wrapf(cause, errors.ErrRollbackFailed,
				"cannot roll back: directory missing from %s", task.TargetPath),
			Critical: true,
		}
	}

	if err := e.fs.Rename(task.TargetPath, task.SourcePath); err != nil {
		logger.Error().Err(err).Msg("Rollback failed, directory only exists at target")
		return types.TaskOutcome{
			Status: types.StatusFailed,
			Err: errors.Wrapf(err, errors.ErrRollbackFailed,
				"link failed and rollback failed, directory remains at %s", task.TargetPath),
			Critical: true,
		}
	}

	logger.Warn().Msg("Rolled back, directory restored at source path")
	return types.TaskOutcome{Status: types.StatusRolledBack, Err: cause}
}

// verify confirms the link at the source path is live: it must point at
// the target path and resolve to a traversable directory.
func (e *Engine) verify(task types.DirectoryTask) error {
	dest, err := e.fs.Readlink(task.SourcePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrVerifyFailed,
			"no readable link at %s", task.SourcePath)
	}
	if dest != task.TargetPath {
		return errors.Newf(errors.ErrVerifyFailed,
			"link at %s points at %s, expected %s", task.SourcePath, dest, task.TargetPath)
	}

	info, err := e.fs.Stat(task.SourcePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrVerifyFailed,
			"link at %s does not resolve", task.SourcePath)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrVerifyFailed,
			"link at %s does not resolve to a directory", task.SourcePath)
	}
	return nil
}
