package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/relink/cmd/relink/commands/genconfig"
	"github.com/arthur-debert/relink/cmd/relink/commands/manual"
	"github.com/arthur-debert/relink/internal/version"
	"github.com/arthur-debert/relink/pkg/cli"
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
)

var (
	verbosity  int
	sourceFlag string
	targetFlag string
	dryRun     bool
	noVerify   bool
	format     string
	excludes   []string

	rootCmd = &cobra.Command{
		Use:     "relink [source] [target]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, target, err := resolveArgs(args)
			if err != nil {
				return err
			}

			result, err := cli.Run(cli.RunOptions{
				Source:   source,
				Target:   target,
				DryRun:   dryRun,
				NoVerify: noVerify,
				Format:   format,
				Exclude:  excludes,
				Out:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			if result.Errors > 0 {
				return fmt.Errorf("completed with %d error(s)", result.Errors)
			}
			return nil
		},
	}
)

// resolveArgs merges positional and named source/target arguments.
// Named flags win; positionals fill whatever the flags left open, in
// source-then-target order.
func resolveArgs(args []string) (string, string, error) {
	source, target := sourceFlag, targetFlag
	for _, arg := range args {
		switch {
		case source == "":
			source = arg
		case target == "":
			target = arg
		default:
			return "", "", errors.Newf(errors.ErrInvalidInput,
				"unexpected extra argument %q", arg)
		}
	}
	if source == "" || target == "" {
		return "", "", errors.New(errors.ErrInvalidInput,
			"both a source and a target directory are required")
	}
	return source, target, nil
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.Flags().StringVar(&sourceFlag, "source", "", "Source directory whose subdirectories are relocated")
	rootCmd.Flags().StringVar(&targetFlag, "target", "", "Target directory the subdirectories move into")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip re-checking created links")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: text, json, yaml or xml")
	rootCmd.Flags().StringArrayVar(&excludes, "exclude", nil, "Candidate name or glob to leave in place (repeatable)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(manual.NewCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("relink version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:                   "completion [bash|zsh|fish|powershell]",
	Short:                 "Generate shell completion script",
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}

var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Generate man page",
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "RELINK",
			Section: "1",
		}
		return doc.GenManTree(rootCmd, header, "/tmp")
	},
}
