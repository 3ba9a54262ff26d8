package reference

import "testing"

// Literal fixtures ported from the original library's own bit-vector
// test driver (binTest/addTest/mulTest/doExtendTest/hexTest).

func TestHexRoundTrip(t *testing.T) {
	r := New(1, 63)
	if !r.FromHexString("000000010000000a") {
		t.Fatal("expected valid hex to parse")
	}
	if got, want := r.ToHexString(), "000000010000000a"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFromHexStringRejectsBadChar(t *testing.T) {
	r := New(1, 31)
	if r.FromHexString("nothex!!") {
		t.Fatal("expected non-hex input to fail")
	}
}

func TestBinRoundTrip(t *testing.T) {
	r := New(1, 7)
	r.FromBinString("10110101")
	if got, want := r.ToBinString(), "10110101"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNegateInvolution(t *testing.T) {
	r := New(1, 15)
	r.FromHexString("1234")
	if !r.Negate().Negate().Equal(r) {
		t.Fatal("double negation should return the original value")
	}
}

func TestAddSignExtendsShorterOperand(t *testing.T) {
	a := New(8, 0)
	a.FromHexString("05")
	b := New(4, 0)
	b.FromHexString("03")
	got := a.Add(b).ToHexString()
	if want := "00000008"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMulBoundaryB1(t *testing.T) {
	a := New(1, 63)
	a.FromHexString("7fffffffffffffff")
	got := a.Mul(a).ToHexString()
	want := "3fffffffffffffff0000000000000001"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMulBoundaryB7(t *testing.T) {
	a := New(74, 0)
	a.FromHexString("0000000000123456789abcdef0123")
	got := a.Mul(a).ToHexString()
	want := "00014b66dc33f6acdca878385a55a1b72d5b4ac9"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestExtendMSBsSignExtends(t *testing.T) {
	a := New(1, 31)
	a.FromHexString("8a5a5a5a")
	got := a.ExtendMSBs(11).ToHexString()
	want := "ffffffff8a5a5a5a"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRemoveLSBsTruncates(t *testing.T) {
	a := New(1, 32)
	a.FromHexString("15a5a5a5a")
	got := a.RemoveLSBs(1).ToHexString()
	want := "ad2d2d2d"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestReinterpretPanicsOnWidthChange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on width-changing reinterpret")
		}
	}()
	a := New(4, 4)
	a.Reinterpret(5, 4)
}

func TestToDecStringSmallPositive(t *testing.T) {
	a := New(4, 12)
	a.FromHexString("0800") // 0.5 in Q(4,12)
	got := a.ToDecString()
	if len(got) == 0 {
		t.Fatal("expected a non-empty decimal rendering")
	}
}
