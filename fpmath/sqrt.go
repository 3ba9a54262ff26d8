package fpmath

import "github.com/nmoseley/fplib"

// Sqrt approximates the square root of a non-negative c by bisecting
// [lo, hi] for the given number of iterations, halving the
// bracket by reinterpreting one integer bit as a fractional bit
// instead of by division. The result keeps lo's original intBits and
// precision fractional bits.
func Sqrt(c, lo, hi fplib.Value, precision int32, iterations int) fplib.Value {
	intBits := lo.IntBits()
	lo = lo.ExtendLSBs(precision - lo.FracBits())
	hi = hi.ExtendLSBs(precision - hi.FracBits())

	for i := 0; i < iterations; i++ {
		mid := halve(lo.Add(hi))
		mid = mid.RemoveMSBs(mid.IntBits() - intBits)
		mid = mid.RemoveLSBs(mid.FracBits() - precision)

		if less(c, mid.Mul(mid)) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// SqrtSteps behaves like Sqrt but calls report after every iteration
// with the 1-indexed iteration number and the current lower bound lo,
// which is what Sqrt would return if it stopped at that iteration.
func SqrtSteps(c, lo, hi fplib.Value, precision int32, iterations int, report func(step int, x fplib.Value)) fplib.Value {
	intBits := lo.IntBits()
	lo = lo.ExtendLSBs(precision - lo.FracBits())
	hi = hi.ExtendLSBs(precision - hi.FracBits())

	for i := 0; i < iterations; i++ {
		mid := halve(lo.Add(hi))
		mid = mid.RemoveMSBs(mid.IntBits() - intBits)
		mid = mid.RemoveLSBs(mid.FracBits() - precision)

		if less(c, mid.Mul(mid)) {
			hi = mid
		} else {
			lo = mid
		}
		if report != nil {
			report(i+1, lo)
		}
	}
	return lo
}

// halve divides v by two by relabeling its lowest integer bit as a
// fractional bit; no bit in v's storage changes.
func halve(v fplib.Value) fplib.Value {
	return v.Reinterpret(v.IntBits()-1, v.FracBits()+1)
}

// less reports whether a < b, derived from subtraction's sign bit
// rather than a dedicated comparison operator: Sub already grows its
// result by one bit so a-b can never overflow regardless of a and b's
// relative formats.
func less(a, b fplib.Value) bool {
	return a.Sub(b).IsNegative()
}
