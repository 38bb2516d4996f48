package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/relink/pkg/style"
	"github.com/arthur-debert/relink/pkg/types"
)

// TerminalReporter streams one line per task to a writer, followed by a
// summary block. Styling is dropped when the writer is not a color
// terminal so redirected output stays clean.
type TerminalReporter struct {
	out   io.Writer
	color bool
}

// NewTerminalReporter creates a reporter writing to out. Color is enabled
// only when out is stdout/stderr on a terminal that supports it.
func NewTerminalReporter(out io.Writer) *TerminalReporter {
	return &TerminalReporter{
		out:   out,
		color: colorEnabled(out),
	}
}

// labelWidth is the fixed status column width in task lines
const labelWidth = 12

// OnTaskOutcome implements types.Reporter
func (r *TerminalReporter) OnTaskOutcome(task types.DirectoryTask, outcome types.TaskOutcome) {
	// Padding is computed from the plain label before styling, so the
	// escape sequences never widen the column.
	label := style.StatusLabel(outcome.Status)
	pad := strings.Repeat(" ", max(0, labelWidth-len(label)))
	if r.color {
		label = style.StatusStyle(outcome).Sprint(label)
	}

	detail := task.TargetPath
	if outcome.Reason != "" {
		detail = outcome.Reason
	}
	if outcome.Err != nil {
		detail = outcome.Err.Error()
	}

	fmt.Fprintf(r.out, "%s%s %s  %s\n", label, pad, task.Name, detail)

	if outcome.Critical {
		fmt.Fprintf(r.out, "%s %s needs manual attention: check %s and %s\n",
			strings.Repeat(" ", labelWidth), task.Name, task.SourcePath, task.TargetPath)
	}
}

// OnRunComplete implements types.Reporter
func (r *TerminalReporter) OnRunComplete(summary types.RunSummary) {
	if summary.NothingToDo {
		fmt.Fprintln(r.out, "Nothing to process: source has no subdirectories.")
		return
	}

	tally := fmt.Sprintf("moved %d   skipped %d   errors %d",
		summary.Success, summary.Skipped, summary.Errors)
	if summary.Critical > 0 {
		tally += fmt.Sprintf("   critical %d", summary.Critical)
	}

	if r.color {
		fmt.Fprintln(r.out, style.SummaryBox.Render(tally))
	} else {
		fmt.Fprintln(r.out, tally)
	}
}

// colorEnabled reports whether styled output is appropriate for out
func colorEnabled(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
