package differential_test

import (
	"testing"

	"github.com/nmoseley/fplib"
	"github.com/nmoseley/fplib/differential"
	"github.com/nmoseley/fplib/reference"
)

func fastVal(intBits, fracBits int32, limbs ...uint32) fplib.Value {
	v := fplib.New(intBits, fracBits)
	for i, w := range limbs {
		v.SetInternalLimb(i, w)
	}
	return v
}

func refVal(v fplib.Value) reference.Ref {
	r := reference.New(v.IntBits(), v.FracBits())
	r.FromHexString(v.ToHexString())
	return r
}

func TestBinaryMulAgreesOnBoundaryB1(t *testing.T) {
	fast := fastVal(1, 63, 0xFFFFFFFF, 0x7FFFFFFF)
	ref := refVal(fast)

	mismatch, ok := differential.Binary("mul", func() fplib.Value {
		return fast.Mul(fast)
	}, func() reference.Ref {
		return ref.Mul(ref)
	})
	if !ok {
		t.Fatal(mismatch.String())
	}
}

func TestBinaryAddAgreesOnBoundaryB3(t *testing.T) {
	fast := fastVal(1, 63, 0xFFFFFFFF, 0x7FFFFFFF)
	ref := refVal(fast)

	mismatch, ok := differential.Binary("add", func() fplib.Value {
		return fast.Add(fast)
	}, func() reference.Ref {
		return ref.Add(ref)
	})
	if !ok {
		t.Fatal(mismatch.String())
	}
}

func TestBinarySubAgreesOnBoundaryB4(t *testing.T) {
	fastA := fastVal(74, 0, 0xcdef0123, 0x456789ab, 0x123)
	fastB := fastVal(74, 0, 0x37439183, 0x47381958, 0x0000007E)
	refA, refB := refVal(fastA), refVal(fastB)

	mismatch, ok := differential.Binary("sub", func() fplib.Value {
		return fastA.Sub(fastB)
	}, func() reference.Ref {
		return refA.Sub(refB)
	})
	if !ok {
		t.Fatal(mismatch.String())
	}
}

func TestBinaryExtendMSBsAgreesOnBoundaryB5(t *testing.T) {
	fast := fastVal(1, 31, 0x8A5A5A5A)
	ref := refVal(fast)

	mismatch, ok := differential.Binary("extendMSBs", func() fplib.Value {
		return fast.ExtendMSBs(11)
	}, func() reference.Ref {
		return ref.ExtendMSBs(11)
	})
	if !ok {
		t.Fatal(mismatch.String())
	}
}

func TestBinaryRemoveLSBsAgreesOnBoundaryB6(t *testing.T) {
	fast := fastVal(1, 32, 0x5A5A5A5A, 0x00000001)
	ref := refVal(fast)

	mismatch, ok := differential.Binary("removeLSBs", func() fplib.Value {
		return fast.RemoveLSBs(1)
	}, func() reference.Ref {
		return ref.RemoveLSBs(1)
	})
	if !ok {
		t.Fatal(mismatch.String())
	}
}

func TestBinarySelfProductAgreesOnBoundaryB7(t *testing.T) {
	fast := fastVal(74, 0, 0xcdef0123, 0x456789ab, 0x123)
	ref := refVal(fast)

	mismatch, ok := differential.Binary("mul", func() fplib.Value {
		return fast.Mul(fast)
	}, func() reference.Ref {
		return ref.Mul(ref)
	})
	if !ok {
		t.Fatal(mismatch.String())
	}
}

func TestInvariantsHoldOnBothEngines(t *testing.T) {
	fast := fastVal(4, 4, 0x5A)
	ref := refVal(fast)

	if !differential.InvariantsHold(fast) {
		t.Error("negate involution failed on the fast engine")
	}
	if !differential.InvariantsHold(ref) {
		t.Error("negate involution failed on the reference engine")
	}
}

func TestCompareHexDetectsMismatch(t *testing.T) {
	fast := fastVal(4, 4, 0x12)
	ref := refVal(fast)
	ref = ref.Add(reference.New(4, 4)) // still equal, sanity check first

	if _, ok := differential.CompareHex("identity", fast, ref); !ok {
		t.Fatal("expected matching hex strings to compare equal")
	}

	wrongRef := reference.New(4, 4)
	wrongRef.FromHexString("ff")
	mismatch, ok := differential.CompareHex("deliberate mismatch", fast, wrongRef)
	if ok {
		t.Fatal("expected differing values to be reported as a mismatch")
	}
	if mismatch.Op != "deliberate mismatch" {
		t.Errorf("unexpected mismatch op: %s", mismatch.Op)
	}
}
