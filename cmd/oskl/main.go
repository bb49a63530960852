// Command oskl sorts text, runs randomized workloads and inspects level
// distributions using github.com/addrummond/ordskiplist.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("oskl failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "oskl",
		Short: "Sort, benchmark and inspect ordered skip lists",
		Long: `oskl hosts an ordskiplist.OSkipList behind a few small commands:
sorting lines of text, running randomized workloads checked against a sorted
slice, and showing how Preen reshapes the levels of a list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output, including height changes of the list.")

	rootCmd.AddCommand(newSortCmd(), newBenchCmd(), newLevelsCmd())
	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
