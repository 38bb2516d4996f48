// Package cli wires the collaborators into the full relocation run:
// privilege check, config, path resolution, candidate scan, engine,
// reporter. The cobra layer stays a thin argument shim over this.
package cli

import (
	"io"

	"github.com/arthur-debert/relink/pkg/config"
	"github.com/arthur-debert/relink/pkg/display"
	"github.com/arthur-debert/relink/pkg/engine"
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/filesystem"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/paths"
	"github.com/arthur-debert/relink/pkg/privilege"
	"github.com/arthur-debert/relink/pkg/scanner"
	"github.com/arthur-debert/relink/pkg/types"
)

// RunOptions carries everything the command line collected.
type RunOptions struct {
	Source   string
	Target   string
	DryRun   bool
	NoVerify bool
	Format   string // empty means use the configured default
	Exclude  []string
	Out      io.Writer
}

// Run executes one full relocation run. Precondition failures return an
// error and nothing is processed; per-task failures are tallied in the
// returned summary and never abort the run.
func Run(opts RunOptions) (types.RunSummary, error) {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load()
	if err != nil {
		return types.RunSummary{}, err
	}

	formatName := opts.Format
	if formatName == "" {
		formatName = cfg.Format
	}
	format, err := display.ParseFormat(formatName)
	if err != nil {
		return types.RunSummary{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}

	if !opts.DryRun && !privilege.HasElevatedRights() {
		return types.RunSummary{}, errors.New(errors.ErrElevation,
			"this process cannot create directory links; re-run with sufficient rights")
	}

	fs := filesystem.NewOS()

	sourceRoot, err := paths.Resolve(opts.Source)
	if err != nil {
		return types.RunSummary{}, err
	}
	targetRoot, err := paths.Resolve(opts.Target)
	if err != nil {
		return types.RunSummary{}, err
	}
	req := types.RelocationRequest{SourceRoot: sourceRoot, TargetRoot: targetRoot}

	if err := paths.ValidateRequest(fs, req); err != nil {
		return types.RunSummary{}, err
	}
	if !opts.DryRun {
		if _, err := paths.EnsureDir(fs, targetRoot); err != nil {
			return types.RunSummary{}, err
		}
	}

	exclude := append(append([]string{}, cfg.Exclude...), opts.Exclude...)
	candidates, err := scanner.ListSubdirectories(fs, sourceRoot, exclude)
	if err != nil {
		return types.RunSummary{}, err
	}

	eng := engine.New(fs, engine.NewLinker(fs), engine.Options{
		DryRun: opts.DryRun,
		Verify: cfg.Verify && !opts.NoVerify,
	})
	reporter := display.NewReporter(opts.Out, format)

	summary := engine.Run(eng, req, candidates, reporter)

	logger.Debug().
		Int("success", summary.Success).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Errors).
		Msg("Run returned")

	return summary, nil
}
