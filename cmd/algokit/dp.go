package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/dp"
)

// knapsackResult is printed by "dp knapsack --items".
type knapsackResult struct {
	Best  int   `json:"best"`
	Items []int `json:"items"`
}

func (r knapsackResult) String() string {
	if len(r.Items) == 0 {
		return strconv.Itoa(r.Best)
	}
	return strconv.Itoa(r.Best) + " " + joinInts(r.Items)
}

// chainResult is printed by "dp chain --order".
type chainResult struct {
	Cost  int    `json:"cost"`
	Order string `json:"order"`
}

func (r chainResult) String() string {
	return fmt.Sprintf("%d %s", r.Cost, r.Order)
}

func newDPCmd(p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dp",
		Short: "Dynamic-programming problems",
	}
	cmd.AddCommand(
		newFibCmd(p),
		newCoinsCmd(p),
		newLISCmd(p),
		newKnapsackCmd(p),
		newChainCmd(p),
		newRodCmd(p),
	)

	return cmd
}

func newFibCmd(p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "N-th Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			f, err := dp.Fibonacci(n)
			if errors.Is(err, dp.ErrOverflow) {
				tracer().Infof("fib: F(%d) exceeds uint64, switching to big integers", n)
				big, err := dp.FibonacciBig(n)
				if err != nil {
					return err
				}
				return p.emit(cmd, big)
			}
			if err != nil {
				return err
			}
			return p.emit(cmd, f)
		},
	}
}

func newCoinsCmd(p *printer) *cobra.Command {
	var (
		amount int
		ways   bool
	)
	cmd := &cobra.Command{
		Use:   "coins --amount A [--ways] C...",
		Short: "Fewest coins summing to A (-1 if impossible), or the number of ways with --ways",
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := parseInts(args)
			if err != nil {
				return err
			}
			if ways {
				n, err := dp.CoinChangeWays(coins, amount)
				if err != nil {
					return err
				}
				return p.emit(cmd, n)
			}
			return p.emit(cmd, dp.CoinChange(coins, amount))
		},
	}
	cmd.Flags().IntVar(&amount, "amount", 0, "target amount")
	cmd.Flags().BoolVar(&ways, "ways", false, "count combinations instead of minimizing coins")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newLISCmd(p *printer) *cobra.Command {
	var sequence bool
	cmd := &cobra.Command{
		Use:   "lis [--sequence] X...",
		Short: "Length of the longest strictly increasing subsequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}
			if sequence {
				return p.emit(cmd, dp.LISSequence(xs))
			}
			return p.emit(cmd, dp.LIS(xs))
		},
	}
	cmd.Flags().BoolVar(&sequence, "sequence", false, "print one longest subsequence instead of its length")

	return cmd
}

func newKnapsackCmd(p *printer) *cobra.Command {
	var (
		capacity        int
		weights, values []int
		items           bool
	)
	cmd := &cobra.Command{
		Use:   "knapsack --capacity W --weights w1,w2,.. --values v1,v2,.. [--items]",
		Short: "Best total value of a 0/1 knapsack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if items {
				best, chosen, err := dp.KnapsackItems(weights, values, capacity)
				if err != nil {
					return err
				}
				if chosen == nil {
					chosen = []int{}
				}
				return p.emit(cmd, knapsackResult{Best: best, Items: chosen})
			}
			best, err := dp.Knapsack(weights, values, capacity)
			if err != nil {
				return err
			}
			return p.emit(cmd, best)
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "knapsack capacity")
	cmd.Flags().IntSliceVar(&weights, "weights", nil, "item weights")
	cmd.Flags().IntSliceVar(&values, "values", nil, "item values")
	cmd.Flags().BoolVar(&items, "items", false, "also print the chosen item indices")
	_ = cmd.MarkFlagRequired("capacity")

	return cmd
}

func newChainCmd(p *printer) *cobra.Command {
	var order bool
	cmd := &cobra.Command{
		Use:   "chain [--order] D0 D1 ... Dn",
		Short: "Minimum scalar multiplications for a matrix chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := parseInts(args)
			if err != nil {
				return err
			}
			if order {
				cost, parens, err := dp.MatrixChainOrder(dims)
				if err != nil {
					return err
				}
				return p.emit(cmd, chainResult{Cost: cost, Order: parens})
			}
			cost, err := dp.MatrixChain(dims)
			if err != nil {
				return err
			}
			return p.emit(cmd, cost)
		},
	}
	cmd.Flags().BoolVar(&order, "order", false, "also print an optimal parenthesization")

	return cmd
}

func newRodCmd(p *printer) *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "rod --length N P1 P2 ...",
		Short: "Best revenue from cutting a rod; Pi is the price of a piece of length i",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := parseInts(args)
			if err != nil {
				return err
			}
			best, err := dp.RodCutting(prices, length)
			if err != nil {
				return err
			}
			return p.emit(cmd, best)
		},
	}
	cmd.Flags().IntVar(&length, "length", 0, "rod length")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
