package bigint

import (
	"context"
	"math"

	"github.com/agbru/bigint/internal/parallel"
)

// FFTParallelThreshold is the operand bit length above which FFTMulEq
// transforms the two operands' digit vectors concurrently instead of
// sequentially. Like FFTMulThreshold, it is a package variable so a
// calibration profile can retarget it; the default favors single-threaded
// execution for anything small enough that goroutine handoff would
// dominate the transform cost.
var FFTParallelThreshold = 1 << 18

// fftDigitBits is the base (2^fftDigitBits) used to re-chunk a limb vector
// into FFT-friendly digits. Each pointwise product digit*digit is below
// 2^32, so a convolution sum over n terms stays below 2^(32+log2 n); that
// fits a float64's 53-bit mantissa only while n stays under about 2^21
// (two million) terms.
const fftDigitBits = 16

// toFFTDigits re-chunks x's magnitude (x must already be non-negative)
// into little-endian base-2^fftDigitBits digits.
func (x *Int[L]) toFFTDigits() []uint64 {
	bits := uint(limbBits[L]())
	var accum uint64
	var accBits uint
	digits := make([]uint64, 0, x.len*int(bits)/fftDigitBits+2)
	for i := 0; i < x.len; i++ {
		accum |= uint64(x.val[i]) << accBits
		accBits += bits
		for accBits >= fftDigitBits {
			digits = append(digits, accum&(1<<fftDigitBits-1))
			accum >>= fftDigitBits
			accBits -= fftDigitBits
		}
	}
	if accBits > 0 {
		digits = append(digits, accum&(1<<accBits-1))
	}
	for len(digits) > 1 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	return digits
}

// fromFFTDigits packs little-endian base-2^fftDigitBits digits back into
// x's limb representation, assuming each digit already fits in
// fftDigitBits bits (the caller must carry-propagate first).
func (x *Int[L]) fromFFTDigits(digits []uint64) {
	bits := uint(limbBits[L]())
	limbs := make([]L, 0, len(digits)*fftDigitBits/int(bits)+2)
	var accum uint64
	var accBits uint
	for _, d := range digits {
		accum |= d << accBits
		accBits += fftDigitBits
		for accBits >= bits {
			limbs = append(limbs, L(accum&(1<<bits-1)))
			accum >>= bits
			accBits -= bits
		}
	}
	if accBits > 0 {
		limbs = append(limbs, L(accum&(1<<accBits-1)))
	}
	if len(limbs) == 0 {
		limbs = []L{0}
	}
	x.Signed = true
	x.autoExpandSize(len(limbs))
	copy(x.val, limbs)
	for i := len(limbs); i < len(x.val); i++ {
		x.val[i] = 0
	}
	x.len = len(limbs)
	if limbs[len(limbs)-1]>>(bits-1) != 0 {
		x.SetLen(x.len+1, false)
	}
	x.ShrinkLen()
}

func nextPow2FFT(n int) int {
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}

// bitReverse permutes a in place by reversed index bits, the standard
// precursor to an iterative Cooley-Tukey transform.
func bitReverse(a []complex128) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// transform runs an iterative in-place Cooley-Tukey FFT (invert=false) or
// its inverse (invert=true, scaling by 1/n included) over a, whose length
// must be a power of two.
func transform(a []complex128, invert bool) {
	n := len(a)
	bitReverse(a)
	for length := 2; length <= n; length <<= 1 {
		ang := 2 * math.Pi / float64(length)
		if invert {
			ang = -ang
		}
		wlen := complex(math.Cos(ang), math.Sin(ang))
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			half := length / 2
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
				w *= wlen
			}
		}
	}
	if invert {
		for i := range a {
			a[i] /= complex(float64(n), 0)
		}
	}
}

// FFTMulEq multiplies x by rhs in place via a complex-double Cooley-Tukey
// convolution: both magnitudes are re-chunked into base-2^16 digits,
// transformed, multiplied pointwise, inverse-transformed, rounded, and
// carry-propagated back into x's limb representation. The sign is applied
// afterward exactly as PlainMulEq does.
func (x *Int[L]) FFTMulEq(rhs *Int[L]) *Int[L] {
	negResult := x.Sign() != rhs.Sign()
	xm := x.Clone()
	xm.Abs()
	rm := rhs.Clone()
	rm.Abs()

	da := xm.toFFTDigits()
	db := rm.toFFTDigits()

	resultDigits := len(da) + len(db)
	n := nextPow2FFT(resultDigits)

	fa := make([]complex128, n)
	fb := make([]complex128, n)
	for i, d := range da {
		fa[i] = complex(float64(d), 0)
	}
	for i, d := range db {
		fb[i] = complex(float64(d), 0)
	}

	if xm.bitLen() >= FFTParallelThreshold || rm.bitLen() >= FFTParallelThreshold {
		_ = parallel.ExecuteTwo(context.Background(),
			func() error { transform(fa, false); return nil },
			func() error { transform(fb, false); return nil },
		)
	} else {
		transform(fa, false)
		transform(fb, false)
	}
	for i := range fa {
		fa[i] *= fb[i]
	}
	transform(fa, true)

	digits := make([]uint64, n)
	var carry uint64
	base := uint64(1) << fftDigitBits
	for i := 0; i < n; i++ {
		v := carry + uint64(math.Round(real(fa[i])))
		digits[i] = v % base
		carry = v / base
	}
	for carry != 0 {
		digits = append(digits, carry%base)
		carry /= base
	}
	for len(digits) > 1 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}

	x.fromFFTDigits(digits)
	if negResult {
		x.NegEq()
	}
	return x
}
