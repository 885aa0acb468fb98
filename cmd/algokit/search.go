package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/search"
	"github.com/katalvlaran/algokit/sorting"
)

// searchers maps algorithm names to int searches; all but linear need sorted input.
var searchers = map[string]func([]int, int) int{
	"binary":        search.Binary[int],
	"first":         search.First[int],
	"last":          search.Last[int],
	"linear":        search.Linear[int],
	"jump":          search.Jump[int],
	"interpolation": search.Interpolation[int],
	"exponential":   search.Exponential[int],
}

func newSearchCmd(p *printer) *cobra.Command {
	var (
		algo    string
		target  int
		presort bool
	)
	cmd := &cobra.Command{
		Use:   "search --target T [--algo name] [--presort] N...",
		Short: "Find the index of a target value, -1 if absent",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(strings.TrimSpace(algo))
			find, ok := searchers[name]
			if !ok {
				names := lo.Keys(searchers)
				slices.Sort(names)
				return fmt.Errorf("unknown search algorithm %q (want one of %s)", algo, strings.Join(names, ", "))
			}
			xs, err := parseInts(args)
			if err != nil {
				return err
			}
			if name != "linear" {
				if presort {
					xs = sorting.Merge(xs)
				} else if !sorting.IsSorted(xs) {
					tracer().Infof("search: %s expects sorted input, result is unspecified", name)
				}
			}
			idx := find(xs, target)
			tracer().Debugf("search: %s for %d in %d values -> %d", name, target, len(xs), idx)

			return p.emit(cmd, idx)
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "binary", "binary, first, last, linear, jump, interpolation or exponential")
	cmd.Flags().IntVar(&target, "target", 0, "value to look for")
	cmd.Flags().BoolVar(&presort, "presort", false, "sort the input before searching")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
