package engine

import (
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/scanner"
	"github.com/arthur-debert/relink/pkg/types"
	"github.com/google/uuid"
)

// Run processes every candidate sequentially, in scan order, and returns
// the aggregate summary. Task failures never abort the run; every
// candidate gets its attempt. The reporter receives one event per task
// plus the final summary.
func Run(e *Engine, req types.RelocationRequest, candidates []scanner.Candidate, reporter types.Reporter) types.RunSummary {
	logger := logging.GetLogger("engine.run")

	summary := types.RunSummary{RunID: uuid.NewString()}

	if len(candidates) == 0 {
		summary.NothingToDo = true
		logger.Info().Str("source", req.SourceRoot).Msg("No subdirectories to process")
		reporter.OnRunComplete(summary)
		return summary
	}

	logger.Info().
		Str("runId", summary.RunID).
		Str("source", req.SourceRoot).
		Str("target", req.TargetRoot).
		Int("candidates", len(candidates)).
		Msg("Run started")

	for _, candidate := range candidates {
		task := types.NewDirectoryTask(req, candidate.Name)
		outcome := e.Relocate(task)
		summary.Record(task, outcome)
		reporter.OnTaskOutcome(task, outcome)
	}

	logger.Info().
		Str("runId", summary.RunID).
		Int("success", summary.Success).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Errors).
		Msg("Run complete")

	reporter.OnRunComplete(summary)
	return summary
}
