package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/match"
)

func newMatchCmd(p *printer) *cobra.Command {
	var (
		algo          string
		base, modulus uint64
	)
	cmd := &cobra.Command{
		Use:   "match [--algo name] TEXT PATTERN",
		Short: "Find every occurrence of PATTERN in TEXT, or compare two strings",
		Long: `Without a sub-command, match prints the start offsets of every
(possibly overlapping) occurrence of PATTERN in TEXT. The sub-commands lcs,
substring and edit compare two strings instead.

A TEXT that spells one of those sub-command names is routed to the
sub-command; put "--" before the operands to search it literally:

	algokit match --algo z -- lcs "lcs or lcs"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern := args[0], args[1]
			var hits []int
			switch name := strings.ToLower(strings.TrimSpace(algo)); name {
			case "kmp":
				hits = match.KMP(text, pattern)
			case "z":
				hits = match.Z(text, pattern)
			case "naive":
				hits = match.Naive(text, pattern)
			case "rabin-karp", "rk":
				if !match.ValidHashParam(base) || !match.ValidHashParam(modulus) {
					return errors.New("--base and --modulus must lie in [2, 2^32)")
				}
				hits = match.RabinKarp(text, pattern, match.WithBase(base), match.WithModulus(modulus))
			default:
				return fmt.Errorf("unknown match algorithm %q (want kmp, rabin-karp, z or naive)", algo)
			}
			tracer().Debugf("match: %s found %d occurrences", algo, len(hits))

			return p.emit(cmd, hits)
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "kmp", "kmp, rabin-karp, z or naive")
	cmd.Flags().Uint64Var(&base, "base", match.DefaultBase, "Rabin-Karp polynomial base")
	cmd.Flags().Uint64Var(&modulus, "modulus", match.DefaultModulus, "Rabin-Karp modulus")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "lcs A B",
			Short: "Longest common subsequence",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return p.emit(cmd, match.LCS(args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "substring A B",
			Short: "Longest common contiguous substring",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return p.emit(cmd, match.LongestCommonSubstring(args[0], args[1]))
			},
		},
		newEditCmd(p),
	)

	return cmd
}

func newEditCmd(p *printer) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "edit [--full-matrix] A B",
		Short: "Levenshtein distance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := match.TwoRows
			if full {
				mode = match.FullMatrix
			}
			return p.emit(cmd, match.EditDistance(args[0], args[1], match.WithMemoryMode(mode)))
		},
	}
	cmd.Flags().BoolVar(&full, "full-matrix", false, "keep the whole DP table instead of two rows")

	return cmd
}
