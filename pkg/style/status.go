// Package style centralizes terminal styling for relink's reporter.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/relink/pkg/types"
)

// StatusLabel returns the fixed-width label shown for a task status
func StatusLabel(status types.TaskStatus) string {
	switch status {
	case types.StatusSuccess:
		return "moved"
	case types.StatusSkipped:
		return "skipped"
	case types.StatusRolledBack:
		return "rolled back"
	case types.StatusFailed:
		return "failed"
	case types.StatusDryRun:
		return "would move"
	default:
		return string(status)
	}
}

// StatusStyle returns the appropriate pterm style for a task outcome
func StatusStyle(outcome types.TaskOutcome) *pterm.Style {
	switch {
	case outcome.Critical:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case outcome.Status == types.StatusFailed, outcome.Status == types.StatusRolledBack:
		return pterm.NewStyle(pterm.FgRed)
	case outcome.Status == types.StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case outcome.Status == types.StatusDryRun:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// SummaryBox wraps the final tally in a bordered block
var SummaryBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Bold renders text in bold
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
