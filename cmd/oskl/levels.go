package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/addrummond/ordskiplist"
	"github.com/addrummond/ordskiplist/pcg"
)

type levelsOptions struct {
	n    int
	seed string
}

func newLevelsCmd() *cobra.Command {
	var opts levelsOptions

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show the level histogram of a list before and after Preen",
		Long: `Builds a list of random integers, churns its front so that the levels
drift from the ideal shape, and prints how many elements have each number of
levels before and after calling Preen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLevels(cmd.OutOrStdout(), opts, slog.Default())
		},
	}
	cmd.Flags().IntVar(&opts.n, "n", 10000, "Number of elements in the list.")
	cmd.Flags().StringVar(&opts.seed, "seed", "oskl", "Seed for the elements and the level generator.")
	return cmd
}

func runLevels(w io.Writer, opts levelsOptions, logger *slog.Logger) error {
	if opts.n <= 0 {
		return errors.New("--n must be positive")
	}

	gen := pcg.NewFromString(opts.seed)
	l := ordskiplist.NewOrdered[int](
		ordskiplist.WithSource(pcg.NewFromString(opts.seed+"/levels")),
		ordskiplist.WithLogger(logger))
	for i := 0; i < opts.n; i++ {
		l.Add(gen.Intn(opts.n * 4))
	}
	// Popping the front and adding at the back leaves the low end of the
	// list thinner than the coin flips would.
	for i := 0; i < opts.n/2; i++ {
		if _, err := l.PopFront(); err != nil {
			return err
		}
		l.Add(opts.n*4 + i)
	}

	before := histogram(l.LevelCounts(), l.Height())
	l.Preen()
	after := histogram(l.LevelCounts(), l.Height())

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "levels\tbefore\tafter\t\n")
	for i := range max(len(before), len(after)) {
		fmt.Fprintf(tw, "%d\t%d\t%d\t\n", i+1, at(before, i), at(after, i))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "length %d, height %d\n", l.Length(), l.Height())
	return err
}

// histogram returns, for each level count 1..height, the number of elements
// with exactly that many levels.
func histogram(counts []int, height int) []int {
	h := make([]int, height)
	for _, c := range counts {
		h[c-1]++
	}
	return h
}

func at(a []int, i int) int {
	if i < len(a) {
		return a[i]
	}
	return 0
}
