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
	recipArgs = struct {
		IntBits    int32
		Precision  int32
		Iterations int
		Divisor    uint32
		Start      uint32
	}{}

	// Recip approximates 1/b for a command-line supplied b.
	Recip = &cobra.Command{
		Use:   "recip",
		Short: "Approximate 1/b by Newton-Raphson iteration.",
		RunE:  runRecip,
	}
)

func init() {
	Recip.Flags().Int32Var(&recipArgs.IntBits, "int-bits", 8, "integer bits of the working format, including the sign bit")
	Recip.Flags().Int32Var(&recipArgs.Precision, "precision", 64, "fractional bits carried through every iteration")
	Recip.Flags().IntVar(&recipArgs.Iterations, "iterations", 30, "number of Newton iterations to run")
	Recip.Flags().Uint32Var(&recipArgs.Divisor, "divisor", 14, "the value b in 1/b")
	Recip.Flags().Uint32Var(&recipArgs.Start, "start", 1, "numerator of the initial guess x0, scaled by 2^-precision")

	Root.AddCommand(Recip)
}

func runRecip(cmd *cobra.Command, args []string) error {
	b := fplib.New(recipArgs.IntBits, 0)
	b.SetInternalLimb(0, recipArgs.Divisor)

	x0 := fplib.New(recipArgs.IntBits, recipArgs.Precision)
	x0.SetInternalLimb(0, recipArgs.Start)

	logger.Info().
		Uint32("divisor", recipArgs.Divisor).
		Int32("precision", recipArgs.Precision).
		Int("iterations", recipArgs.Iterations).
		Msg("starting reciprocal iteration")

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.OutOrStdout()))
	s.Start()

	result := fpmath.ReciprocalSteps(b, x0, recipArgs.Precision, recipArgs.Iterations, func(step int, x fplib.Value) {
		logger.Debug().Int("step", step).Str("x", x.ToHexString()).Msg("newton iteration")
		s.Suffix = fmt.Sprintf(" iteration %d/%d", step, recipArgs.Iterations)
	})
	s.Stop()

	logger.Info().Str("result", result.ToHexString()).Msg("converged")
	fmt.Fprintf(cmd.OutOrStdout(), "1/%d ~= %s\n", recipArgs.Divisor, result.ToHexString())
	return nil
}
