package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/addrummond/ordskiplist"
	"github.com/addrummond/ordskiplist/pcg"
)

// maxLineLength bounds the lines accepted by `oskl sort`.
const maxLineLength = 1 << 20

type sortOptions struct {
	natural bool
	reverse bool
	seed    string
}

func newSortCmd() *cobra.Command {
	var opts sortOptions

	cmd := &cobra.Command{
		Use:   "sort [files...]",
		Short: "Sort lines of text",
		Long:  `Reads lines from the given files, or from standard input if there are none, and prints them in sorted order. Equal lines keep their input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var inputs []io.Reader
			if len(args) == 0 {
				inputs = append(inputs, cmd.InOrStdin())
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				inputs = append(inputs, f)
			}
			return runSort(inputs, cmd.OutOrStdout(), opts, slog.Default())
		},
	}
	cmd.Flags().BoolVarP(&opts.natural, "natural", "n", false, "Compare embedded numbers by value (file2 < file10).")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "Print in descending order.")
	cmd.Flags().StringVar(&opts.seed, "seed", "oskl", "Seed for the level generator of the list.")
	return cmd
}

func runSort(inputs []io.Reader, w io.Writer, opts sortOptions, logger *slog.Logger) error {
	compare := strings.Compare
	if opts.natural {
		compare = ordskiplist.NaturalStrings
	}
	l := ordskiplist.New(compare,
		ordskiplist.WithSeed(pcg.SeedFromString(opts.seed)),
		ordskiplist.WithLogger(logger))

	for _, r := range inputs {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
		for sc.Scan() {
			l.Add(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	logger.Debug("sorted input", "lines", l.Length(), "height", l.Height())

	lines := l.All()
	if opts.reverse {
		lines = l.Backward()
	}

	bw := bufio.NewWriter(w)
	for line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return bw.Flush()
}
