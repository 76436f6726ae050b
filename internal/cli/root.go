// Package cli provides the command-line interface for dateline.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datelinehq/dateline/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dateline",
		Short: "Parse, filter, and reformat dated lines of text",
		Long: `Dateline transforms lines of text that start with a date.

Each line is expected to look like "<date>: rest of line". Dateline parses
the leading date with a configurable layout and keeps only lines falling
on allowed weekdays; surviving lines get the date rewritten in a different
layout. Lines without a parseable date are dropped silently.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
