package testutil

import (
	"github.com/arthur-debert/relink/pkg/types"
)

// RecordingReporter captures reporter events for assertions.
type RecordingReporter struct {
	Results  []types.TaskResult
	Summary  types.RunSummary
	Complete bool
}

func (r *RecordingReporter) OnTaskOutcome(task types.DirectoryTask, outcome types.TaskOutcome) {
	r.Results = append(r.Results, types.TaskResult{Task: task, Outcome: outcome})
}

func (r *RecordingReporter) OnRunComplete(summary types.RunSummary) {
	r.Summary = summary
	r.Complete = true
}
