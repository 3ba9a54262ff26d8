package command

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/nmoseley/fplib"
	"github.com/nmoseley/fplib/fpmath"
)

var (
	sqrtArgs = struct {
		IntBits    int32
		Precision  int32
		Iterations int
		Value      uint32
		Hi         uint32
	}{}

	// Sqrt approximates sqrt(c) for a command-line supplied c.
	Sqrt = &cobra.Command{
		Use:   "sqrt",
		Short: "Approximate sqrt(c) by bisection.",
		RunE:  runSqrt,
	}
)

func init() {
	Sqrt.Flags().Int32Var(&sqrtArgs.IntBits, "int-bits", 8, "integer bits of the working format, including the sign bit")
	Sqrt.Flags().Int32Var(&sqrtArgs.Precision, "precision", 32, "fractional bits carried through every iteration")
	Sqrt.Flags().IntVar(&sqrtArgs.Iterations, "iterations", 40, "number of bisection iterations to run")
	Sqrt.Flags().Uint32Var(&sqrtArgs.Value, "value", 2, "the value c in sqrt(c)")
	Sqrt.Flags().Uint32Var(&sqrtArgs.Hi, "hi", 4, "initial upper bracket bound, must satisfy hi*hi >= c")

	Root.AddCommand(Sqrt)
}

func runSqrt(cmd *cobra.Command, args []string) error {
	precision := sqrtArgs.Precision

	c := fplib.New(sqrtArgs.IntBits, 0)
	c.SetInternalLimb(0, sqrtArgs.Value)
	c = c.ExtendLSBs(precision)

	lo := fplib.New(sqrtArgs.IntBits, 0).ExtendLSBs(precision)

	hi := fplib.New(sqrtArgs.IntBits, 0)
	hi.SetInternalLimb(0, sqrtArgs.Hi)
	hi = hi.ExtendLSBs(precision)

	logger.Info().
		Uint32("value", sqrtArgs.Value).
		Int32("precision", precision).
		Int("iterations", sqrtArgs.Iterations).
		Msg("starting bisection")

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.OutOrStdout()))
	s.Start()

	result := fpmath.SqrtSteps(c, lo, hi, precision, sqrtArgs.Iterations, func(step int, x fplib.Value) {
		logger.Debug().Int("step", step).Str("x", x.ToHexString()).Msg("bisection iteration")
		s.Suffix = fmt.Sprintf(" iteration %d/%d", step, sqrtArgs.Iterations)
	})
	s.Stop()

	logger.Info().Str("result", result.ToHexString()).Msg("converged")
	fmt.Fprintf(cmd.OutOrStdout(), "sqrt(%d) ~= %s\n", sqrtArgs.Value, result.ToHexString())
	return nil
}
