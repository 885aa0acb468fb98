package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/numtheory"
)

func newNumCmd(p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "num",
		Short: "Number theory: gcd, lcm, primes, powers, factorials, nCr, nPr",
	}
	cmd.AddCommand(
		int64Cmd(p, "gcd A B", "Greatest common divisor", 2, func(v []int64) (any, error) {
			return numtheory.GCD(v[0], v[1]), nil
		}),
		int64Cmd(p, "lcm A B", "Least common multiple", 2, func(v []int64) (any, error) {
			return numtheory.LCM(v[0], v[1])
		}),
		int64Cmd(p, "modinv A M", "Inverse of A modulo M", 2, func(v []int64) (any, error) {
			return numtheory.ModInverse(v[0], v[1])
		}),
		int64Cmd(p, "prime N", "Report whether N is prime", 1, func(v []int64) (any, error) {
			return numtheory.IsPrime(v[0]), nil
		}),
		int64Cmd(p, "factors N", "Prime factorization of N", 1, func(v []int64) (any, error) {
			return numtheory.PrimeFactors(v[0]), nil
		}),
		int64Cmd(p, "sieve N", "All primes up to N", 1, func(v []int64) (any, error) {
			return numtheory.Sieve(int(v[0])), nil
		}),
		int64Cmd(p, "fact N", "N factorial", 1, func(v []int64) (any, error) {
			f, err := numtheory.Factorial(int(v[0]))
			if errors.Is(err, numtheory.ErrOverflow) {
				tracer().Infof("fact: %d! exceeds uint64, switching to big integers", v[0])
				return numtheory.FactorialBig(int(v[0]))
			}
			return f, err
		}),
		int64Cmd(p, "ncr N R", "Binomial coefficient C(N, R)", 2, func(v []int64) (any, error) {
			return numtheory.Combinations(int(v[0]), int(v[1]))
		}),
		int64Cmd(p, "npr N R", "Arrangements P(N, R)", 2, func(v []int64) (any, error) {
			return numtheory.Permutations(int(v[0]), int(v[1]))
		}),
		newPowCmd(p),
	)

	return cmd
}

// int64Cmd builds a sub-command taking exactly n integer arguments.
func int64Cmd(p *printer, use, short string, n int, run func([]int64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt64s(args)
			if err != nil {
				return err
			}
			result, err := run(v)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			return p.emit(cmd, result)
		},
	}
}

func newPowCmd(p *printer) *cobra.Command {
	var mod uint64
	cmd := &cobra.Command{
		Use:   "pow B E [--mod M]",
		Short: "B raised to E, exactly or modulo M",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("mod") {
				v, err := parseUint64s(args)
				if err != nil {
					return err
				}
				r, err := numtheory.ModPow(v[0], v[1], mod)
				if err != nil {
					return err
				}
				return p.emit(cmd, r)
			}

			base, err := parseInt64s(args[:1])
			if err != nil {
				return err
			}
			exp, err := parseUint64s(args[1:])
			if err != nil {
				return err
			}
			r, err := numtheory.Pow(base[0], exp[0])
			if errors.Is(err, numtheory.ErrOverflow) {
				tracer().Infof("pow: %d^%d exceeds int64, switching to big integers", base[0], exp[0])
				return p.emit(cmd, numtheory.PowBig(base[0], exp[0]))
			}
			if err != nil {
				return err
			}
			return p.emit(cmd, r)
		},
	}
	cmd.Flags().Uint64Var(&mod, "mod", 0, "modulus")

	return cmd
}
