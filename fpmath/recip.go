// Package fpmath implements the iterative demo algorithms the fixed-
// point core leaves as external collaborators: reciprocal via Newton
// iteration and square root via bisection. Both consume only fplib's
// public API.
package fpmath

import "github.com/nmoseley/fplib"

// Reciprocal approximates 1/b using Newton-Raphson iteration
// x <- x*(2 - b*x), which converges quadratically for any starting
// guess x0 with 0 < x0 < 2/b. x0's intBits fixes the format's integer
// width for every iteration; precision fixes the fractional width.
// Doubling x is done by reinterpreting its top fractional bit as an
// integer bit rather than by an addition, mirroring the original
// iteration's own trick.
func Reciprocal(b, x0 fplib.Value, precision int32, iterations int) fplib.Value {
	x := x0.ExtendLSBs(precision - x0.FracBits())
	intBits := x0.IntBits()

	for i := 0; i < iterations; i++ {
		doubled := x.Reinterpret(x.IntBits()+1, x.FracBits()-1)
		x = doubled.Sub(x.Mul(x).Mul(b))
		x = x.RemoveMSBs(x.IntBits() - intBits)
		x = x.RemoveLSBs(x.FracBits() - precision)
	}
	return x
}

// ReciprocalSteps behaves like Reciprocal but calls report after every
// iteration with the 1-indexed iteration number and the current
// approximation, letting a caller show progress without re-running the
// iteration itself.
func ReciprocalSteps(b, x0 fplib.Value, precision int32, iterations int, report func(step int, x fplib.Value)) fplib.Value {
	x := x0.ExtendLSBs(precision - x0.FracBits())
	intBits := x0.IntBits()

	for i := 0; i < iterations; i++ {
		doubled := x.Reinterpret(x.IntBits()+1, x.FracBits()-1)
		x = doubled.Sub(x.Mul(x).Mul(b))
		x = x.RemoveMSBs(x.IntBits() - intBits)
		x = x.RemoveLSBs(x.FracBits() - precision)
		if report != nil {
			report(i+1, x)
		}
	}
	return x
}
