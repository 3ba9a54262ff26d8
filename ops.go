package fplib

// Q-format algebra: every operation here derives its result format from
// its operands' formats before touching a single bit, then delegates the
// bit-level work to arith.go.

// alignFrac returns v re-expressed with fracBits fractional bits, using
// ExtendLSBs. fracBits must be >= v.fracBits.
func (v Value) alignFrac(fracBits int32) Value {
	if fracBits == v.fracBits {
		return v
	}
	return v.ExtendLSBs(fracBits - v.fracBits)
}

// alignWidth returns v re-expressed with the given total width, sign
// extending into the extra integer bits. width must be >= v.width().
func (v Value) alignWidth(width int32) Value {
	if width == v.width() {
		return v
	}
	return v.ExtendMSBs(width - v.width())
}

// Add returns a + b in Q(max(ai,bi)+1, max(af,bf)) format.
func (a Value) Add(b Value) Value {
	fracBits := max32(a.fracBits, b.fracBits)
	intBits := max32(a.intBits, b.intBits) + 1

	aa := a.alignFrac(fracBits).alignWidth(intBits + fracBits)
	bb := b.alignFrac(fracBits).alignWidth(intBits + fracBits)

	out := Value{intBits: intBits, fracBits: fracBits, limb: make([]uint32, len(aa.limb))}
	rawAdd(out.limb, aa.limb, bb.limb, out.width())
	return out
}

// Sub returns a - b in Q(max(ai,bi)+1, max(af,bf)) format.
func (a Value) Sub(b Value) Value {
	fracBits := max32(a.fracBits, b.fracBits)
	intBits := max32(a.intBits, b.intBits) + 1

	aa := a.alignFrac(fracBits).alignWidth(intBits + fracBits)
	bb := b.alignFrac(fracBits).alignWidth(intBits + fracBits)

	out := Value{intBits: intBits, fracBits: fracBits, limb: make([]uint32, len(aa.limb))}
	rawSub(out.limb, aa.limb, bb.limb, out.width())
	return out
}

// Mul returns a * b in Q(ai+bi-1, af+bf) format: the product of two
// n1- and n2-bit two's-complement numbers fits exactly in n1+n2-1 bits
// (the two sign bits of the operands collapse into one in the product),
// except when both operands are the most negative value of their format;
// that one product wraps to the most negative value of the result format.
func (a Value) Mul(b Value) Value {
	fracBits := a.fracBits + b.fracBits
	intBits := a.intBits + b.intBits - 1
	width := intBits + fracBits

	limbWidth := max32(a.width(), b.width())
	av := a.alignWidth(limbWidth)
	bv := b.alignWidth(limbWidth)

	full := make([]uint32, 2*len(av.limb))
	rawMul(full, av.limb, bv.limb, limbWidth)

	out := Value{intBits: intBits, fracBits: fracBits, limb: make([]uint32, numLimbs(width))}
	copy(out.limb, full[:min32i(len(out.limb), len(full))])
	signExtend(out.limb, width)
	return out
}

// Negate returns -v in v's own format.
func (v Value) Negate() Value {
	out := v.clone()
	rawNegate(out.limb, v.limb, v.width())
	return out
}

// ExtendLSBs returns v widened by k fractional bits, with k zero bits
// appended at the bottom. The represented real value is unchanged.
func (v Value) ExtendLSBs(k int32) Value {
	if k < 0 {
		panic(&Error{Op: "ExtendLSBs", Kind: InvalidArgument, Msg: "k must be >= 0"})
	}
	if k == 0 {
		return v.clone()
	}
	newWidth := v.width() + k
	out := Value{intBits: v.intBits, fracBits: v.fracBits + k, limb: make([]uint32, numLimbs(newWidth))}
	shiftLimbsLeft(out.limb, v.limb, uint(k))
	signExtend(out.limb, newWidth)
	return out
}

// ExtendMSBs returns v widened by k integer bits, sign-extended at the
// top. The represented real value is unchanged.
func (v Value) ExtendMSBs(k int32) Value {
	if k < 0 {
		panic(&Error{Op: "ExtendMSBs", Kind: InvalidArgument, Msg: "k must be >= 0"})
	}
	if k == 0 {
		return v.clone()
	}
	newWidth := v.width() + k
	out := Value{intBits: v.intBits + k, fracBits: v.fracBits, limb: make([]uint32, numLimbs(newWidth))}
	copy(out.limb, v.limb)
	// Fill every whole new limb beyond the original top one with the sign
	// pattern before trimming the final limb's slack bits: signExtend alone
	// only ever touches the top limb, so a multi-limb widening needs this
	// extra pass or the newly grown limbs stay zero regardless of sign.
	sign := uint32(0)
	if v.IsNegative() {
		sign = ^uint32(0)
	}
	for i := len(v.limb); i < len(out.limb); i++ {
		out.limb[i] = sign
	}
	signExtend(out.limb, newWidth)
	return out
}

// RemoveLSBs returns v narrowed by discarding its k least significant
// bits outright (no rounding). fracBits shrinks by k; the represented
// value changes.
func (v Value) RemoveLSBs(k int32) Value {
	if k < 0 || k > v.fracBits {
		panic(&Error{Op: "RemoveLSBs", Kind: InvalidArgument, Msg: "k out of range"})
	}
	if k == 0 {
		return v.clone()
	}
	newWidth := v.width() - k
	out := Value{intBits: v.intBits, fracBits: v.fracBits - k, limb: make([]uint32, numLimbs(newWidth))}
	shiftLimbsRight(out.limb, v.limb, uint(k))
	signExtend(out.limb, newWidth)
	return out
}

// RemoveMSBs returns v narrowed by discarding its k most significant
// bits outright. intBits shrinks by k; the represented value changes and
// the sign bit may flip.
func (v Value) RemoveMSBs(k int32) Value {
	if k < 0 || k > v.intBits {
		panic(&Error{Op: "RemoveMSBs", Kind: InvalidArgument, Msg: "k out of range"})
	}
	if k == 0 {
		return v.clone()
	}
	newWidth := v.width() - k
	out := Value{intBits: v.intBits - k, fracBits: v.fracBits, limb: make([]uint32, numLimbs(newWidth))}
	copy(out.limb, v.limb)
	signExtend(out.limb, newWidth)
	return out
}

// Reinterpret relabels v's intBits/fracBits split without touching a
// single stored bit. i+f must equal v's existing total width.
func (v Value) Reinterpret(intBits, fracBits int32) Value {
	if intBits+fracBits != v.width() {
		panic(&Error{Op: "Reinterpret", Kind: InvalidArgument, Msg: "total width must be unchanged"})
	}
	out := v.clone()
	out.intBits = intBits
	out.fracBits = fracBits
	return out
}

// AddPowerOfTwo adds or subtracts 2**p from v in place, leaving v's
// format unchanged. p is measured in the same units as fracBits, so
// p == -fracBits targets the least significant bit. It returns false and
// leaves v unmodified if p does not fall within v's representable range.
func (v *Value) AddPowerOfTwo(p int32, negative bool) bool {
	bit := p + v.fracBits
	if bit < 0 || bit >= v.width() {
		return false
	}
	delta := make([]uint32, len(v.limb))
	delta[bit/limbBits] = 1 << uint(bit%limbBits)
	if negative {
		rawNegate(delta, delta, v.width())
	}
	rawAdd(v.limb, v.limb, delta, v.width())
	return true
}

// DetermineMinimumIntegerBits returns the smallest intBits for which v's
// current value still fits in Q(intBits, v.FracBits()) format, i.e. the
// number of integer bits obtained after stripping v's redundant leading
// sign-duplicate bits. It never returns less than 2, since a single bit
// can only ever encode the sign itself.
func (v Value) DetermineMinimumIntegerBits() int32 {
	w := v.width()
	sign := v.IsNegative()
	dup := int32(0)
	// Bit w-1 is the sign bit itself; scan the bits directly below it and
	// count how many duplicate it before the first bit that doesn't, so
	// one bit of the run stays behind to serve as the narrower sign bit.
	for b := w - 2; b >= v.fracBits; b-- {
		bitSet := v.limb[b/limbBits]&(1<<uint(b%limbBits)) != 0
		if bitSet != sign {
			break
		}
		dup++
	}
	min := v.intBits - dup
	if min < 2 {
		min = 2
	}
	return min
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32i(a, b int) int {
	if a < b {
		return a
	}
	return b
}
