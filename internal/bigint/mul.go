package bigint

// FFTMulThreshold is the operand bit length above which MulEq switches
// from the quadratic schoolbook path to FFTMulEq. It is a package
// variable rather than a constant so a calibration profile can retarget
// it at startup; the core package itself never reads outside config for
// this value.
var FFTMulThreshold = 1 << 14

// bitLen reports the length of x's minimal two's-complement representation
// excluding the sign bit: the magnitude's bit length for x >= 0, and that
// of |x|-1 for x < 0 (so bitLen(0) == bitLen(-1) == 0).
func (x *Int[L]) bitLen() int {
	bits := uint(limbBits[L]())
	top := x.val[x.len-1]
	if x.Sign() {
		top = ^top
	}
	n := int(bits)
	for n > 0 && (top>>(uint(n-1)))&1 == 0 {
		n--
	}
	return (x.len-1)*int(bits) + n
}

// BitLen reports x's two's-complement bit length as bitLen defines it,
// the same count MulEq consults against FFTMulThreshold to choose an
// algorithm, exposed so callers outside the package can report or
// reproduce that dispatch decision.
func (x *Int[L]) BitLen() int { return x.bitLen() }

// PlainMulEq multiplies x by rhs in place using schoolbook long
// multiplication: an O(len(x)*len(rhs)) limb-by-limb accumulation with a
// 64-bit partial-product-plus-carry chain, the same shape as
// BasicMulEq generalized to a multi-limb multiplier.
func (x *Int[L]) PlainMulEq(rhs *Int[L]) *Int[L] {
	negResult := x.Sign() != rhs.Sign()
	xm := x.Clone()
	xm.Abs()
	rm := rhs.Clone()
	rm.Abs()

	bits := uint(limbBits[L]())
	resLen := xm.len + rm.len
	acc := make([]uint64, resLen)
	for i := 0; i < xm.len; i++ {
		if xm.val[i] == 0 {
			continue
		}
		a := uint64(xm.val[i])
		var carry uint64
		for j := 0; j < rm.len; j++ {
			p := a*uint64(rm.val[j]) + acc[i+j] + carry
			acc[i+j] = p & (uint64(1)<<bits - 1)
			carry = p >> bits
		}
		k := i + rm.len
		for carry != 0 {
			p := acc[k] + carry
			acc[k] = p & (uint64(1)<<bits - 1)
			carry = p >> bits
			k++
		}
	}

	x.Signed = true
	x.autoExpandSize(resLen)
	for i := 0; i < resLen; i++ {
		x.val[i] = L(acc[i])
	}
	for i := resLen; i < len(x.val); i++ {
		x.val[i] = 0
	}
	x.len = resLen
	x.ShrinkLen()
	if negResult {
		x.NegEq()
	}
	return x
}

// MulEq multiplies x by rhs in place, dispatching to FFTMulEq once either
// operand's bit length crosses FFTMulThreshold and to the quadratic
// PlainMulEq otherwise.
func (x *Int[L]) MulEq(rhs *Int[L]) *Int[L] {
	if x.bitLen() >= FFTMulThreshold || rhs.bitLen() >= FFTMulThreshold {
		return x.FFTMulEq(rhs)
	}
	return x.PlainMulEq(rhs)
}

// Mul returns x*rhs as a new Int.
func (x *Int[L]) Mul(rhs *Int[L]) *Int[L] { return x.Clone().MulEq(rhs) }
