package types

// TaskStatus identifies how a task ended
type TaskStatus string

const (
	// StatusSuccess means the directory was moved, linked and verified.
	StatusSuccess TaskStatus = "success"

	// StatusSkipped means the target already existed; the source was left
	// completely untouched. Repeated runs end here, which is what makes
	// the tool idempotent.
	StatusSkipped TaskStatus = "skipped"

	// StatusFailed means the task failed without leaving the directory in
	// a recoverable-by-rerun state at the target. When Critical is set the
	// directory may be unreachable from its original path and a human must
	// intervene.
	StatusFailed TaskStatus = "failed"

	// StatusRolledBack means linking failed after the move, and the move
	// was undone. The source directory is back in place.
	StatusRolledBack TaskStatus = "rolled-back"

	// StatusDryRun means the task was planned but not executed.
	StatusDryRun TaskStatus = "dry-run"
)

// TaskOutcome is the immutable result of one task.
type TaskOutcome struct {
	Status TaskStatus `json:"status" yaml:"status"`

	// Reason is set for skips and dry runs.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Err is the captured failure, nil unless Status is failed/rolled-back.
	Err error `json:"-" yaml:"-"`

	// Critical marks the failure modes that need manual intervention:
	// rollback failed, or verification failed after an apparent success.
	Critical bool `json:"critical,omitempty" yaml:"critical,omitempty"`
}

// IsError reports whether the outcome counts against the error tally.
func (o TaskOutcome) IsError() bool {
	return o.Status == StatusFailed || o.Status == StatusRolledBack
}

// TaskResult pairs a task with its outcome for reporting.
type TaskResult struct {
	Task    DirectoryTask `json:"task" yaml:"task"`
	Outcome TaskOutcome   `json:"outcome" yaml:"outcome"`
}

// RunSummary is the aggregate tally for a run.
type RunSummary struct {
	RunID   string `json:"runId" yaml:"runId"`
	Success int    `json:"success" yaml:"success"`
	Skipped int    `json:"skipped" yaml:"skipped"`
	Errors  int    `json:"errors" yaml:"errors"`

	// Critical counts the subset of Errors that need manual intervention.
	Critical int `json:"critical,omitempty" yaml:"critical,omitempty"`

	// NothingToDo is set when the scan found no candidates at all,
	// distinct from a run where every candidate skipped or failed.
	NothingToDo bool `json:"nothingToDo,omitempty" yaml:"nothingToDo,omitempty"`

	Results []TaskResult `json:"results" yaml:"results"`
}

// Record folds one outcome into the tally.
func (s *RunSummary) Record(task DirectoryTask, outcome TaskOutcome) {
	switch {
	case outcome.Status == StatusSuccess:
		s.Success++
	case outcome.Status == StatusSkipped, outcome.Status == StatusDryRun:
		s.Skipped++
	case outcome.IsError():
		s.Errors++
		if outcome.Critical {
			s.Critical++
		}
	}
	s.Results = append(s.Results, TaskResult{Task: task, Outcome: outcome})
}
