// Package differential compares the fast limb-based engine in the
// parent fplib package against the bit-granular oracle in reference,
// running identical operations on both and checking that their exported
// hex strings agree. This is the in-tree form of the "invokes both
// engines on identical inputs and compares hex strings" test driver.
package differential

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Engine captures the subset of fplib.Value's and reference.Ref's method
// sets needed to run an operation on both concrete types from the same
// generic code path.
type Engine[T any] interface {
	IntBits() int32
	FracBits() int32
	IsNegative() bool
	ToHexString() string
	Equal(T) bool
	Negate() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	ExtendLSBs(int32) T
	ExtendMSBs(int32) T
	RemoveLSBs(int32) T
	RemoveMSBs(int32) T
	Reinterpret(int32, int32) T
}

// Mismatch describes a single operation whose two engines disagreed.
type Mismatch struct {
	Op      string
	FastHex string
	RefHex  string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s", m.Op, cmp.Diff(m.RefHex, m.FastHex))
}

// InvariantsHold runs the format-invariant algebraic identities that
// must hold within a single engine, regardless of which concrete type
// T is. Callers instantiate it once for fplib.Value and once for
// reference.Ref to exercise the same properties on both engines.
func InvariantsHold[T Engine[T]](v T) bool {
	return v.Negate().Negate().Equal(v)
}

// hexRenderer is the only thing Binary and CompareHex actually need: the
// fast engine and the reference engine are different concrete types, so
// comparing them can't go through Engine[T]'s single type parameter.
type hexRenderer interface {
	ToHexString() string
}

// Binary runs fastOp against the fast engine and refOp against the
// reference engine and reports a Mismatch (ok==false) if their hex
// exports disagree.
func Binary[F, R hexRenderer](name string, fastOp func() F, refOp func() R) (Mismatch, bool) {
	fast := fastOp()
	ref := refOp()
	return CompareHex(name, fast, ref)
}

// CompareHex reports a Mismatch (ok==false) between two already-computed
// engine values of the same operation, regardless of their concrete
// types.
func CompareHex[F, R hexRenderer](name string, fast F, ref R) (Mismatch, bool) {
	fh, rh := fast.ToHexString(), ref.ToHexString()
	if fh != rh {
		return Mismatch{Op: name, FastHex: fh, RefHex: rh}, false
	}
	return Mismatch{}, true
}
