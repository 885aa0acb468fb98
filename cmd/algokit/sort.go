package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/sorting"
)

func newSortCmd(p *printer) *cobra.Command {
	var (
		algo     string
		maxRange uint64
	)
	cmd := &cobra.Command{
		Use:   "sort [--algo name] [--max-range k] N...",
		Short: "Sort integers with quick, merge, heap, insertion, counting or radix sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := sorting.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			xs, err := parseInts(args)
			if err != nil {
				return err
			}
			var opts []sorting.Option
			if cmd.Flags().Changed("max-range") {
				if maxRange == 0 {
					return errors.New("--max-range must be positive")
				}
				opts = append(opts, sorting.WithMaxRange(maxRange))
			}
			tracer().Debugf("sort: %s over %d values (stable=%v)", a, len(xs), a.Stable())

			sorted, err := sorting.SortInts(xs, a, opts...)
			if err != nil {
				return err
			}

			return p.emit(cmd, sorted)
		},
	}
	cmd.Flags().StringVar(&algo, "algo", sorting.MergeSort.String(), "quick, merge, heap, insertion, counting or radix")
	cmd.Flags().Uint64Var(&maxRange, "max-range", sorting.DefaultMaxRange, "largest value range counting sort accepts")

	return cmd
}
