package display

import (
	"time"

	"github.com/arthur-debert/relink/pkg/types"
)

// Report is the serializable view of a completed run.
type Report struct {
	RunID       string       `json:"runId" yaml:"runId"`
	GeneratedAt string       `json:"generatedAt" yaml:"generatedAt"`
	NothingToDo bool         `json:"nothingToDo,omitempty" yaml:"nothingToDo,omitempty"`
	Success     int          `json:"success" yaml:"success"`
	Skipped     int          `json:"skipped" yaml:"skipped"`
	Errors      int          `json:"errors" yaml:"errors"`
	Critical    int          `json:"critical,omitempty" yaml:"critical,omitempty"`
	Tasks       []TaskReport `json:"tasks" yaml:"tasks"`
}

// TaskReport is the serializable view of one task.
type TaskReport struct {
	Name     string `json:"name" yaml:"name"`
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	Status   string `json:"status" yaml:"status"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Critical bool   `json:"critical,omitempty" yaml:"critical,omitempty"`
}

// BuildReport flattens a RunSummary into its serializable form.
// Errors become strings here; the live error values stay inside the run.
func BuildReport(summary types.RunSummary) Report {
	report := Report{
		RunID:       summary.RunID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		NothingToDo: summary.NothingToDo,
		Success:     summary.Success,
		Skipped:     summary.Skipped,
		Errors:      summary.Errors,
		Critical:    summary.Critical,
	}
	for _, result := range summary.Results {
		tr := TaskReport{
			Name:     result.Task.Name,
			Source:   result.Task.SourcePath,
			Target:   result.Task.TargetPath,
			Status:   string(result.Outcome.Status),
			Reason:   result.Outcome.Reason,
			Critical: result.Outcome.Critical,
		}
		if result.Outcome.Err != nil {
			tr.Error = result.Outcome.Err.Error()
		}
		report.Tasks = append(report.Tasks, tr)
	}
	return report
}
