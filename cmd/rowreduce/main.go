// Package main is the entry point for the rowreduce binary.
// It reads a rational matrix from stdin (one row per line, entries as
// integers or p/q fractions), runs the Row Reduction Algorithm with a
// step-by-step trace, and — for augmented systems — reports the
// solution set.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/parse"
	"github.com/dschell3/ReducedEchelonFormAlgo/reduce"
	"github.com/dschell3/ReducedEchelonFormAlgo/render"
	"github.com/dschell3/ReducedEchelonFormAlgo/solve"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for rowreduce.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowreduce",
		Short: "Exact row reduction over rational matrices",
		Long: `Reduce a matrix of exact rationals to echelon and reduced echelon
form, narrating every elementary row operation.

Rows are read from stdin, one per line; entries are whitespace-separated
integers or fractions like 3/4. With --augmented the last column is
treated as the right-hand side of [A | b] and the solution set is
classified (inconsistent, unique, or an infinite parametric family).

Example:
  rowreduce --augmented <<'IN'
  2  1 0 3
  1 -1 2 1
  0  1 1 2
  IN`,
		Args: cobra.NoArgs,
		RunE: runReduce,
	}

	rootCmd.Flags().BoolP("augmented", "a", false, "Treat the last column as the right-hand side of [A | b]")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress the per-step operation trace")

	return rootCmd
}

// readLines drains r into a line slice for the parser.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	return lines, sc.Err()
}

// runReduce executes the full pipeline: parse → echelon → RREF →
// (optionally) classify, printing through the render package.
func runReduce(cmd *cobra.Command, _ []string) error {
	augmented, err := cmd.Flags().GetBool("augmented")
	if err != nil {
		return fmt.Errorf("failed to get augmented flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	lines, err := readLines(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	g, err := parse.Grid(lines)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Original matrix:")
	fmt.Fprint(out, render.Matrix(g))

	// One hook serves both phases; quiet mode keeps the default no-op.
	var opts []reduce.Option
	if !quiet {
		opts = append(opts, reduce.WithOperationHook(func(op reduce.RowOp) {
			fmt.Fprintln(out, "  "+render.Op(op))
		}))
	}

	pivots, err := reduce.Echelon(g, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Echelon form:")
	fmt.Fprint(out, render.MatrixWithPivots(g, pivots))

	if err = reduce.RREF(g, pivots, opts...); err != nil {
		return err
	}
	fmt.Fprintln(out, "Reduced echelon form (RREF):")
	fmt.Fprint(out, render.MatrixWithPivots(g, pivots))

	if !augmented {
		return nil
	}

	sol, err := classify(g, pivots)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render.Verdict(sol))

	return nil
}

// classify wraps solve.Classify for the CLI.
func classify(g *matrix.Grid, pivots []reduce.Pivot) (*solve.Solution, error) {
	sol, err := solve.Classify(g, pivots)
	if err != nil {
		return nil, fmt.Errorf("classifying solution set: %w", err)
	}

	return sol, nil
}
