package fplib

// limbBits is the width of a single limb word.
const limbBits = 32

// Value is a two's-complement fixed-point number in Q(intBits,fracBits)
// format: intBits+fracBits total bits, scaled by 2**(-fracBits). Bit 0 of
// limb[0] is the least significant bit; the most significant limb carries
// any unused high bits of its top word as sign-extension (the canonical
// form invariant: every bit above bit width-1 mirrors the sign bit).
//
// The zero Value is not usable; construct one with New.
type Value struct {
	intBits  int32
	fracBits int32
	limb     []uint32
}

// New returns a zero-valued Q(intBits,fracBits) number. It panics with
// InvalidArgument if intBits+fracBits is not positive.
func New(intBits, fracBits int32) Value {
	if intBits+fracBits <= 0 {
		panic(&Error{Op: "New", Kind: InvalidArgument, Msg: "intBits+fracBits must be positive"})
	}
	v := Value{intBits: intBits, fracBits: fracBits}
	v.limb = make([]uint32, numLimbs(intBits+fracBits))
	return v
}

// numLimbs returns the number of 32-bit limbs needed to hold w bits.
func numLimbs(w int32) int {
	return int((w + limbBits - 1) / limbBits)
}

// width returns the total number of bits, integer plus fractional.
func (v Value) width() int32 {
	return v.intBits + v.fracBits
}

// IntBits returns the number of integer bits, including the sign bit.
func (v Value) IntBits() int32 { return v.intBits }

// FracBits returns the number of fractional bits.
func (v Value) FracBits() int32 { return v.fracBits }

// topLimbMask is the mask of valid bits within the most significant limb
// (the limb may be partially unused when width is not a multiple of 32).
func topLimbMask(width int32) uint32 {
	bitsInTop := width % limbBits
	if bitsInTop == 0 {
		bitsInTop = limbBits
	}
	if bitsInTop == limbBits {
		return ^uint32(0)
	}
	return 1<<uint(bitsInTop) - 1
}

// GetInternalLimb returns the i-th 32-bit limb of the internal
// representation, least significant first. Intended for debugging,
// fuzzing and differential comparison against the reference engine, not
// for ordinary arithmetic use.
func (v Value) GetInternalLimb(i int) uint32 { return v.limb[i] }

// SetInternalLimb overwrites the i-th limb directly, bypassing every
// format rule this package otherwise enforces. It exists for the same
// debug/fuzz/differential purposes as GetInternalLimb; callers that use
// it are responsible for re-establishing canonical form (see IsOk).
func (v *Value) SetInternalLimb(i int, w uint32) { v.limb[i] = w }

// NumLimb returns the number of limbs backing v.
func (v Value) NumLimb() int { return len(v.limb) }

// IsNegative reports whether v's sign bit is set.
func (v Value) IsNegative() bool {
	top := v.limb[len(v.limb)-1]
	w := v.width()
	signPos := uint((w - 1) % limbBits)
	return top&(1<<signPos) != 0
}

// IsOk reports whether v is in canonical form: every bit above bit
// width-1, including any slack bits in the top limb, mirrors the sign
// bit. A Value built exclusively through this package's operations is
// always canonical; IsOk exists to validate values assembled by other
// means (tests, codecs, differential fixtures).
func (v Value) IsOk() bool {
	w := v.width()
	top := v.limb[len(v.limb)-1]
	mask := topLimbMask(w)
	signPos := uint((w - 1) % limbBits)
	var sign uint32
	if top&(1<<signPos) != 0 {
		sign = ^uint32(0)
	}
	return top&^mask == sign&^mask
}

// clone makes an independent copy of v's limbs with v's own format,
// used internally whenever an operation must not alias its operand.
func (v Value) clone() Value {
	out := Value{intBits: v.intBits, fracBits: v.fracBits, limb: make([]uint32, len(v.limb))}
	copy(out.limb, v.limb)
	return out
}

// Equal reports whether a and b have the same format and the same bit
// pattern. Value contains a slice and so cannot be compared with ==.
func (a Value) Equal(b Value) bool {
	if a.intBits != b.intBits || a.fracBits != b.fracBits {
		return false
	}
	for i := range a.limb {
		if a.limb[i] != b.limb[i] {
			return false
		}
	}
	return true
}

// String returns v's canonical hexadecimal form, as produced by
// ToHexString.
func (v Value) String() string {
	return v.ToHexString()
}
