package bigint

import "testing"

func TestMulBasic(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{6, 7, 42},
		{-6, 7, -42},
		{6, -7, -42},
		{-6, -7, 42},
		{0, 999, 0},
		{1, 1, 1},
	}
	for _, c := range cases {
		got := New[uint32](c.a).Mul(New[uint32](c.b))
		if got.Cmp(New[uint32](c.want)) != 0 {
			t.Errorf("%d * %d = %s, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestPlainMulEqAgreesWithFFTMulEq(t *testing.T) {
	old := FFTMulThreshold
	defer func() { FFTMulThreshold = old }()

	// force every multiplication below through FFTMulEq directly,
	// bypassing MulEq's threshold dispatch, and compare against the
	// schoolbook path on the same operands.
	cases := []struct{ a, b int64 }{
		{123456789, 987654321},
		{-123456789, 987654321},
		{0, 42},
		{1, -1},
		{999999999999, 999999999999},
	}
	for _, c := range cases {
		schoolbook := New[uint32](c.a).Clone().PlainMulEq(New[uint32](c.b))
		fft := New[uint32](c.a).Clone().FFTMulEq(New[uint32](c.b))
		if schoolbook.Cmp(fft) != 0 {
			t.Errorf("%d * %d: schoolbook = %s, fft = %s", c.a, c.b, schoolbook, fft)
		}
	}
}

func TestMulEqDispatchesToFFTAboveThreshold(t *testing.T) {
	old := FFTMulThreshold
	FFTMulThreshold = 8
	defer func() { FFTMulThreshold = old }()

	a := New[uint32](123456789)
	b := New[uint32](987654321)
	want := a.Clone().PlainMulEq(b)
	got := a.Clone().MulEq(b)
	if got.Cmp(want) != 0 {
		t.Errorf("MulEq with low threshold = %s, want %s", got, want)
	}
	if a.BitLen() < FFTMulThreshold {
		t.Fatalf("test setup invalid: operand bit length %d below threshold %d", a.BitLen(), FFTMulThreshold)
	}
}

func TestBitLenMatchesKnownValues(t *testing.T) {
	cases := []struct {
		v    int64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{255, 8},
		{256, 9},
		{-1, 0},
	}
	for _, c := range cases {
		got := New[uint32](c.v).BitLen()
		if got != c.want {
			t.Errorf("BitLen(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
