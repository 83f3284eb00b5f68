// Package cli implements the astar command-line interface.
//
// Commands:
//   - solve: search one start/goal pair on an ASCII map and draw the path
//   - batch: run every query of a scenario file in parallel
//   - version: print build information
//
// All commands accept --verbose for debug logging, which includes the
// engine's own search events.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion records build information injected through ldflags.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute runs the CLI until ctx is cancelled or the command returns.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "astar",
		Short:         "Incremental A* pathfinding on grid maps",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("astar %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "astar %s (%s, %s)\n", version, commit, date)
		},
	}
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
