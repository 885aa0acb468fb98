package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/schuko/tracing"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// tracer traces with key 'algokit.cli'.
func tracer() tracing.Trace {
	return tracing.Select("algokit.cli")
}

// rootOptions holds the persistent flags shared by every sub-command.
type rootOptions struct {
	trace string
	json  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "algokit",
		Short:        "Sorting, searching, matching, dynamic programming and number theory",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Flags().Changed("trace") {
				tracer().SetTraceLevel(tracing.TraceLevelFromString(opts.trace))
			}
			tracer().Debugf("running %q", cmd.CommandPath())
		},
	}
	root.PersistentFlags().StringVar(&opts.trace, "trace", "Error", "trace level: Error, Info or Debug")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, `print {"result": ...} as JSON`)

	p := &printer{opts: opts}
	root.AddCommand(
		newSortCmd(p),
		newSearchCmd(p),
		newMatchCmd(p),
		newDPCmd(p),
		newNumCmd(p),
	)

	return root
}

// printer writes a command's result in the format selected on the root command.
type printer struct {
	opts *rootOptions
}

type envelope struct {
	Result any `json:"result"`
}

func (p *printer) emit(cmd *cobra.Command, result any) error {
	switch s := result.(type) {
	case []int:
		if s == nil {
			result = []int{}
		}
	case []int64:
		if s == nil {
			result = []int64{}
		}
	}
	w := cmd.OutOrStdout()
	if p.opts.json {
		data, err := json.Marshal(envelope{Result: result})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, plain(result))

	return err
}

// plain renders slices space separated and everything else with fmt.
func plain(v any) string {
	switch v := v.(type) {
	case []int:
		return joinInts(v)
	case []int64:
		return strings.Join(lo.Map(v, func(x int64, _ int) string { return strconv.FormatInt(x, 10) }), " ")
	case *big.Int:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func joinInts(s []int) string {
	return strings.Join(lo.Map(s, func(x int, _ int) string { return strconv.Itoa(x) }), " ")
}

// parseArgs converts every positional argument with parse, reporting the
// first one that fails.
func parseArgs[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	var err error
	out := lo.Map(args, func(a string, i int) T {
		v, e := parse(strings.TrimSpace(a))
		if e != nil && err == nil {
			err = fmt.Errorf("argument %d (%q): %w", i+1, a, e)
		}
		return v
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func parseInts(args []string) ([]int, error) {
	return parseArgs(args, strconv.Atoi)
}

func parseInt64s(args []string) ([]int64, error) {
	return parseArgs(args, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
}

func parseUint64s(args []string) ([]uint64, error) {
	return parseArgs(args, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) })
}
