// Test Type: Unit Test
// Description: Tests outcome classification and summary tallying.

package types_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/relink/pkg/types"
)

func TestIsError(t *testing.T) {
	tests := []struct {
		status  types.TaskStatus
		isError bool
	}{
		{types.StatusSuccess, false},
		{types.StatusSkipped, false},
		{types.StatusDryRun, false},
		{types.StatusFailed, true},
		{types.StatusRolledBack, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			outcome := types.TaskOutcome{Status: tt.status}
			assert.Equal(t, tt.isError, outcome.IsError())
		})
	}
}

func TestRecordTallies(t *testing.T) {
	req := types.RelocationRequest{SourceRoot: "/src", TargetRoot: "/dst"}
	var summary types.RunSummary

	summary.Record(types.NewDirectoryTask(req, "a"), types.TaskOutcome{Status: types.StatusSuccess})
	summary.Record(types.NewDirectoryTask(req, "b"), types.TaskOutcome{Status: types.StatusSkipped})
	summary.Record(types.NewDirectoryTask(req, "c"), types.TaskOutcome{
		Status: types.StatusFailed, Err: fmt.Errorf("x"),
	})
	summary.Record(types.NewDirectoryTask(req, "d"), types.TaskOutcome{
		Status: types.StatusFailed, Err: fmt.Errorf("y"), Critical: true,
	})
	summary.Record(types.NewDirectoryTask(req, "e"), types.TaskOutcome{
		Status: types.StatusRolledBack, Err: fmt.Errorf("z"),
	})

	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 3, summary.Errors)
	assert.Equal(t, 1, summary.Critical)
	assert.Len(t, summary.Results, 5)
}

func TestNewDirectoryTaskPaths(t *testing.T) {
	req := types.RelocationRequest{SourceRoot: "/data/apps", TargetRoot: "/bulk/apps"}
	task := types.NewDirectoryTask(req, "vim")

	assert.Equal(t, "vim", task.Name)
	assert.Equal(t, "/data/apps/vim", task.SourcePath)
	assert.Equal(t, "/bulk/apps/vim", task.TargetPath)
}
