package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/addrummond/ordskiplist"
	"github.com/addrummond/ordskiplist/cmd/oskl/internal/benchconf"
	"github.com/addrummond/ordskiplist/pcg"
	"github.com/addrummond/ordskiplist/sliceutils"
)

type benchResult struct {
	Ops      int
	Failed   int // ops rejected by both the list and the model
	Checks   int
	Preens   int
	Length   int
	Height   int
	Duration time.Duration
}

func newBenchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a randomized workload against a list and a sorted slice",
		Long: `Runs random adds, removals, deletions, pops and preens against an
OSkipList and a sorted slice model, comparing the two as it goes. The workload
is described by a YAML file; see benchconf.Config for the fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := benchconf.Default()
			if configPath != "" {
				var err error
				if cfg, err = benchconf.Load(configPath); err != nil {
					return err
				}
			}

			res, err := runBench(cfg, slog.Default())
			if err != nil {
				return err
			}
			printBenchResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML workload file.")
	return cmd
}

func runBench(cfg benchconf.Config, logger *slog.Logger) (benchResult, error) {
	if err := cfg.Validate(); err != nil {
		return benchResult{}, err
	}

	gen := pcg.NewFromString(cfg.Seed)
	l := ordskiplist.NewOrdered[int](
		ordskiplist.WithSource(pcg.NewFromString(cfg.Seed+"/levels")),
		ordskiplist.WithLogger(logger))
	model := make([]int, 0, cfg.InitialLength)

	for i := 0; i < cfg.InitialLength; i++ {
		v := gen.Intn(cfg.MaxElem)
		l.Add(v)
		sliceutils.SliceAdd(&model, v)
	}
	logger.Info("initial list built", "length", l.Length(), "height", l.Height())

	res := benchResult{Ops: cfg.Ops}
	start := time.Now()
	for i := 1; i <= cfg.Ops; i++ {
		op := sliceutils.GenOp(model, cfg.MaxElem, gen)
		if op.Kind == sliceutils.OpPreen {
			res.Preens++
		}
		want := sliceutils.ApplyOpToSlice(&op, &model)
		got, err := applyOp(l, &op)
		if got != want {
			return res, fmt.Errorf("op %d (%s): model succeeded=%v, list error=%v", i, strings.TrimSpace(sliceutils.PrintOp(&op)), want, err)
		}
		if !got {
			res.Failed++
		}

		if cfg.PreenEvery > 0 && i%cfg.PreenEvery == 0 {
			l.Preen()
			res.Preens++
		}
		if cfg.CheckEvery > 0 && i%cfg.CheckEvery == 0 {
			if err := compareWithModel(l, model); err != nil {
				return res, fmt.Errorf("after op %d: %w", i, err)
			}
			res.Checks++
		}
	}
	res.Duration = time.Since(start)

	if err := compareWithModel(l, model); err != nil {
		return res, fmt.Errorf("after workload: %w", err)
	}
	res.Checks++
	res.Length = l.Length()
	res.Height = l.Height()

	logger.Info("workload finished",
		"ops", res.Ops,
		"failed_ops", res.Failed,
		"preens", res.Preens,
		"length", res.Length,
		"height", res.Height,
		"duration", res.Duration)
	return res, nil
}

func applyOp(l *ordskiplist.OSkipList[int], op *sliceutils.Op) (bool, error) {
	var err error
	switch op.Kind {
	case sliceutils.OpAdd:
		l.Add(op.Elem)
	case sliceutils.OpRemove:
		err = l.Remove(op.Elem)
	case sliceutils.OpDeleteAt:
		err = l.DeleteAt(op.Index)
	case sliceutils.OpPopFront:
		_, err = l.PopFront()
	case sliceutils.OpPop:
		_, err = l.Pop()
	case sliceutils.OpPreen:
		l.Preen()
	}
	return err == nil, err
}

func compareWithModel(l *ordskiplist.OSkipList[int], model []int) error {
	if l.Length() != len(model) {
		return fmt.Errorf("list has length %d, model has length %d", l.Length(), len(model))
	}
	if vs := l.Values(); !slices.Equal(vs, model) {
		return fmt.Errorf("list contents differ from model")
	}

	// Spot check positional and rank lookups.
	step := len(model)/100 + 1
	for i := 0; i < len(model); i += step {
		v, err := l.At(i)
		if err != nil {
			return err
		}
		if v != model[i] {
			return fmt.Errorf("At(%d) = %d, model has %d", i, v, model[i])
		}
		j, err := l.Index(v)
		if err != nil {
			return err
		}
		if want := sliceutils.SliceIndex(model, v); j != want {
			return fmt.Errorf("Index(%d) = %d, model has %d", v, j, want)
		}
	}
	return nil
}

func printBenchResult(w io.Writer, res benchResult) {
	fmt.Fprintf(w, "ops:      %d (%d rejected)\n", res.Ops, res.Failed)
	fmt.Fprintf(w, "preens:   %d\n", res.Preens)
	fmt.Fprintf(w, "checks:   %d\n", res.Checks)
	fmt.Fprintf(w, "length:   %d\n", res.Length)
	fmt.Fprintf(w, "height:   %d\n", res.Height)
	fmt.Fprintf(w, "duration: %v\n", res.Duration)
	if res.Ops > 0 {
		fmt.Fprintf(w, "per op:   %v\n", res.Duration/time.Duration(res.Ops))
	}
}
