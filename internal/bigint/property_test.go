package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRingLaws_PropertyBased verifies that Add/Sub/Mul over Int[uint32]
// satisfy commutative ring laws (commutativity of Add and Mul, associativity
// of Add, distributivity, zero as additive identity, and x-x == 0) for
// signed operands of 16 to 48 bits, depending on the law.
func TestRingLaws_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b int64) bool {
			x, y := New[uint32](a), New[uint32](b)
			return x.Add(y).Cmp(y.Add(x)) == 0
		},
		gen.Int64Range(-(1<<47), 1<<47),
		gen.Int64Range(-(1<<47), 1<<47),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b int64) bool {
			x, y := New[uint32](a), New[uint32](b)
			return x.Mul(y).Cmp(y.Mul(x)) == 0
		},
		gen.Int64Range(-(1<<23), 1<<23),
		gen.Int64Range(-(1<<23), 1<<23),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c int64) bool {
			x, y, z := New[uint32](a), New[uint32](b), New[uint32](c)
			left := x.Add(y).Add(z)
			right := x.Add(y.Add(z))
			return left.Cmp(right) == 0
		},
		gen.Int64Range(-(1<<40), 1<<40),
		gen.Int64Range(-(1<<40), 1<<40),
		gen.Int64Range(-(1<<40), 1<<40),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c int64) bool {
			x, y, z := New[uint32](a), New[uint32](b), New[uint32](c)
			left := x.Mul(y.Add(z))
			right := x.Mul(y).Add(x.Mul(z))
			return left.Cmp(right) == 0
		},
		gen.Int64Range(-(1<<15), 1<<15),
		gen.Int64Range(-(1<<15), 1<<15),
		gen.Int64Range(-(1<<15), 1<<15),
	))

	properties.Property("zero is the additive identity", prop.ForAll(
		func(a int64) bool {
			x := New[uint32](a)
			return x.Add(Zero[uint32]()).Cmp(x) == 0
		},
		gen.Int64Range(-(1<<47), 1<<47),
	))

	properties.Property("x - x is zero", prop.ForAll(
		func(a int64) bool {
			x := New[uint32](a)
			return x.Sub(x).IsZero()
		},
		gen.Int64Range(-(1<<47), 1<<47),
	))

	properties.TestingRun(t)
}

// TestDivisionIdentity_PropertyBased verifies that for every nonzero rhs,
// x == (x/rhs)*rhs + (x mod rhs), and the remainder's magnitude never
// reaches rhs's.
func TestDivisionIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("x = q*rhs + r, |r| < |rhs|", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				b = 1
			}
			x := New[uint32](a)
			rhs := New[uint32](b)
			q, r := x.Clone().DivMod(rhs)

			reconstructed := q.Mul(rhs).Add(r)
			if reconstructed.Cmp(x) != 0 {
				return false
			}
			absR := r.Clone()
			absR.Abs()
			absRhs := rhs.Clone()
			absRhs.Abs()
			return absR.Lt(absRhs)
		},
		gen.Int64Range(-(1<<40), 1<<40),
		gen.Int64Range(-(1<<40), 1<<40),
	))

	properties.TestingRun(t)
}

// TestTwosComplementIdentities_PropertyBased verifies De Morgan-style
// two's-complement identities that hold for any signed integer: ~x = -x-1,
// and Neg is its own inverse.
func TestTwosComplementIdentities_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("~x == -x-1", prop.ForAll(
		func(a int64) bool {
			x := New[uint32](a)
			notX := x.Not()
			negXMinus1 := x.Neg().Sub(New[uint32](1))
			return notX.Cmp(negXMinus1) == 0
		},
		gen.Int64Range(-(1<<47), 1<<47),
	))

	properties.Property("Neg is its own inverse", prop.ForAll(
		func(a int64) bool {
			x := New[uint32](a)
			return x.Neg().Neg().Cmp(x) == 0
		},
		gen.Int64Range(-(1<<47), 1<<47),
	))

	properties.TestingRun(t)
}

// TestShiftLaws_PropertyBased verifies that left-shifting by k bits is the
// same as multiplying by 2^k, for shift amounts small enough to stay well
// clear of the saturation boundary.
func TestShiftLaws_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("x << k == x * 2^k", prop.ForAll(
		func(a int64, k uint64) bool {
			x := New[uint32](a)
			shifted := x.Shl(k)
			two := New[uint32](2)
			multiplied := x.Clone()
			for i := uint64(0); i < k; i++ {
				multiplied = multiplied.Mul(two)
			}
			return shifted.Cmp(multiplied) == 0
		},
		gen.Int64Range(-(1<<20), 1<<20),
		gen.UInt64Range(0, 24),
	))

	properties.Property("(x << k) >> k == x for non-negative x", prop.ForAll(
		func(a int64, k uint64) bool {
			if a < 0 {
				a = -a
			}
			x := New[uint32](a)
			round := x.Shl(k).Shr(k)
			return round.Cmp(x) == 0
		},
		gen.Int64Range(0, 1<<20),
		gen.UInt64Range(0, 24),
	))

	properties.TestingRun(t)
}

// TestBaseConversionRoundTrip_PropertyBased verifies that rendering a
// value in any supported base and parsing it back recovers the original
// value, for every base from 2 to 36.
func TestBaseConversionRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("ToString/TryParseInt round-trips for any base", prop.ForAll(
		func(a int64, base int) bool {
			x := New[uint32](a)
			s := x.ToString(base, false, ShowBaseNone)
			got, ok := TryParseInt[uint32](s, base)
			return ok && got.Cmp(x) == 0
		},
		gen.Int64Range(-(1<<47), 1<<47),
		gen.IntRange(2, 36),
	))

	properties.TestingRun(t)
}

// TestMultiplicationAlgorithmsAgree_PropertyBased verifies that the
// schoolbook and FFT multiplication paths agree on every operand pair,
// regardless of which one MulEq's threshold would actually dispatch to.
func TestMultiplicationAlgorithmsAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("PlainMulEq and FFTMulEq agree", prop.ForAll(
		func(a, b int64) bool {
			x, y := New[uint32](a), New[uint32](b)
			schoolbook := x.Clone().PlainMulEq(y)
			fft := x.Clone().FFTMulEq(y)
			return schoolbook.Cmp(fft) == 0
		},
		gen.Int64Range(-(1<<30), 1<<30),
		gen.Int64Range(-(1<<30), 1<<30),
	))

	properties.TestingRun(t)
}

// TestDivisionDispatchAgrees_PropertyBased verifies DivEq and PlainDivEq
// agree on operand pairs that fit 64 bits, the range in which DivEq
// dispatches to PlainDivEq itself.
func TestDivisionDispatchAgrees_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("DivEq and PlainDivEq agree for 64-bit-safe operands", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				b = 1
			}
			x1, x2 := New[uint32](a), New[uint32](a)
			r1, r2 := Zero[uint32](), Zero[uint32]()
			x1.DivEq(New[uint32](b), r1)
			x2.PlainDivEq(New[uint32](b), r2)
			return x1.Cmp(x2) == 0 && r1.Cmp(r2) == 0
		},
		gen.Int64Range(-(1<<40), 1<<40),
		gen.Int64Range(-(1<<40), 1<<40),
	))

	properties.TestingRun(t)
}

// TestCanonicalForm_PropertyBased verifies ShrinkLen's invariant: two
// Ints built from differently-shaped limb buffers that represent the same
// value compare equal and round-trip through ToString identically.
func TestCanonicalForm_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("sign-extended and canonical forms compare equal", prop.ForAll(
		func(a int64) bool {
			x := New[uint32](a)
			padded := x.Clone()
			padded.SetLen(padded.Len()+3, padded.Signed && padded.Sign())
			return x.Cmp(padded) == 0 && x.ToString(10, false, ShowBaseNone) == padded.ToString(10, false, ShowBaseNone)
		},
		gen.Int64Range(-(1<<47), 1<<47),
	))

	properties.TestingRun(t)
}
