package manual

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed manual.md
var manualContent string

// NewCommand creates the manual command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manual",
		Short: "Show the full manual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				// Plain text is still a manual
				fmt.Fprint(cmd.OutOrStdout(), manualContent)
				return nil
			}
			rendered, err := renderer.Render(manualContent)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), manualContent)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
