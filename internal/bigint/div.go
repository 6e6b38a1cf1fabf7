package bigint

// fits64 reports whether x's value (magnitude and sign) fits in an int64,
// the precondition for PlainDivEq's native-division fast path.
func (x *Int[L]) fits64() bool {
	bits := limbBits[L]()
	limbsPer64 := 64 / bits
	return x.len <= limbsPer64
}

func (x *Int[L]) toInt64() int64 {
	bits := uint(limbBits[L]())
	var u uint64
	for i := x.len - 1; i >= 0; i-- {
		u = u<<bits | uint64(x.val[i])
	}
	if x.len*int(bits) < 64 && x.Sign() {
		u |= ^uint64(0) << (uint(x.len) * bits)
	}
	return int64(u)
}

func fromInt64[L Limb](v int64) *Int[L] {
	return New[L](v)
}

// magnitudeDigits returns x's limbs widened to uint64, little-endian, with
// no sign applied (the caller is expected to have already taken Abs).
func (x *Int[L]) magnitudeDigits() []uint64 {
	d := make([]uint64, x.len)
	for i := 0; i < x.len; i++ {
		d[i] = uint64(x.val[i])
	}
	return trimLeadingZeroDigits(d)
}

func (x *Int[L]) setFromDigits(digits []uint64) {
	digits = trimLeadingZeroDigits(digits)
	x.Signed = true
	x.autoExpandSize(len(digits))
	for i, d := range digits {
		x.val[i] = L(d)
	}
	for i := len(digits); i < len(x.val); i++ {
		x.val[i] = 0
	}
	x.len = len(digits)
	if x.val[x.len-1]>>(uint(limbBits[L]())-1) != 0 {
		x.SetLen(x.len+1, false)
	}
	x.ShrinkLen()
}

// PlainDivEq divides x by rhs in place using native int64 division. It is
// only ever invoked by DivEq/ModEq once both operands are confirmed to fit
// in 64 bits; callers outside this package that want the guard should use
// DivEq instead of calling this directly.
func (x *Int[L]) PlainDivEq(rhs *Int[L], modOut *Int[L]) *Int[L] {
	a := x.toInt64()
	b := rhs.toInt64()
	q := a / b
	r := a % b
	x.Set(fromInt64[L](q))
	if modOut != nil {
		modOut.Set(fromInt64[L](r))
	}
	return x
}

// knuthDivMod runs Knuth's Algorithm D (normalized, two-limb trial
// quotient with refinement and add-back correction) over u (m digits) and
// v (n>=2 digits), both base 2^bits, returning the n-digit remainder and
// an (m-n+1)-digit quotient.
func knuthDivMod(u, v []uint64, bits uint) (q, r []uint64) {
	b := uint64(1) << bits
	n := len(v)
	m := len(u)

	s := uint(0)
	top := v[n-1]
	for top < b/2 {
		top <<= 1
		s++
	}
	vn := shiftDigitsLeft(v, s, bits, b)[:n]
	un := shiftDigitsLeft(u, s, bits, b)

	q = make([]uint64, m-n+1)
	for j := m - n; j >= 0; j-- {
		num := un[j+n]*b + un[j+n-1]
		qhat := num / vn[n-1]
		rhat := num % vn[n-1]
		for qhat >= b || qhat*vn[n-2] > rhat*b+un[j+n-2] {
			qhat--
			rhat += vn[n-1]
			if rhat >= b {
				break
			}
		}
		if mulSubAtOffset(un, vn, qhat, j, bits, b) < 0 {
			qhat--
			addBackAtOffset(un, vn, j, bits, b)
		}
		q[j] = qhat
	}
	r = shiftDigitsRight(un, n, s, bits, b)
	return trimLeadingZeroDigits(q), trimLeadingZeroDigits(r)
}

// knuthDivModUnnormalized implements the two-limb-divisor/three-limb
// -dividend-window estimator (Algorithm B): it skips the normalization
// shift entirely, relying on 3*bits <= 63 to keep the three-digit
// dividend window and the multiply-subtract arithmetic inside a uint64.
// Callers must ensure bits <= 21.
func knuthDivModUnnormalized(u, v []uint64, bits uint) (q, r []uint64) {
	b := uint64(1) << bits
	n := len(v)
	m := len(u)

	un := make([]uint64, m+1)
	copy(un, u)
	vHigh := v[n-1]*b + v[n-2]

	q = make([]uint64, m-n+1)
	for j := m - n; j >= 0; j-- {
		uHigh := (un[j+n]*b+un[j+n-1])*b + un[j+n-2]
		qhat := uHigh / vHigh
		if qhat >= b {
			qhat = b - 1
		}
		if mulSubAtOffset(un, v, qhat, j, bits, b) < 0 {
			qhat--
			addBackAtOffset(un, v, j, bits, b)
		}
		q[j] = qhat
	}
	r = make([]uint64, n)
	copy(r, un[:n])
	return trimLeadingZeroDigits(q), trimLeadingZeroDigits(r)
}

// DivEqAlgA divides x by rhs in place using Knuth's Algorithm D with a
// normalized two-limb trial-quotient estimator. It assumes rhs has at
// least two active digits (single-limb divisors go through BasicDivEq).
func (x *Int[L]) DivEqAlgA(rhs *Int[L], modOut *Int[L]) *Int[L] {
	bits := uint(limbBits[L]())
	negQ := x.Sign() != rhs.Sign()
	negR := x.Sign()

	xm := x.Clone()
	xm.Abs()
	rm := rhs.Clone()
	rm.Abs()

	u := xm.magnitudeDigits()
	v := rm.magnitudeDigits()
	if len(u) < len(v) {
		x.Set(Zero[L]())
		if modOut != nil {
			modOut.Set(xm)
			if negR {
				modOut.NegEq()
			}
		}
		return x
	}
	q, r := knuthDivMod(u, v, bits)

	x.setFromDigits(q)
	if negQ {
		x.NegEq()
	}
	if modOut != nil {
		modOut.setFromDigits(r)
		if negR {
			modOut.NegEq()
		}
	}
	return x
}

// DivEqAlgB divides x by rhs in place using the unnormalized three-limb
// window estimator, valid only when LIMB <= 21; for wider limbs it
// redirects to DivEqAlgA.
func (x *Int[L]) DivEqAlgB(rhs *Int[L], modOut *Int[L]) *Int[L] {
	bits := uint(limbBits[L]())
	if bits > 21 {
		return x.DivEqAlgA(rhs, modOut)
	}

	negQ := x.Sign() != rhs.Sign()
	negR := x.Sign()

	xm := x.Clone()
	xm.Abs()
	rm := rhs.Clone()
	rm.Abs()

	u := xm.magnitudeDigits()
	v := rm.magnitudeDigits()
	if len(u) < len(v) {
		x.Set(Zero[L]())
		if modOut != nil {
			modOut.Set(xm)
			if negR {
				modOut.NegEq()
			}
		}
		return x
	}
	q, r := knuthDivModUnnormalized(u, v, bits)

	x.setFromDigits(q)
	if negQ {
		x.NegEq()
	}
	if modOut != nil {
		modOut.setFromDigits(r)
		if negR {
			modOut.NegEq()
		}
	}
	return x
}

// DivEq divides x by rhs in place, dispatching across the four-way
// strategy: a zero divisor leaves x unchanged; operands that both fit a
// machine word go through PlainDivEq; a single-limb divisor goes through
// BasicDivEq; everything else goes to DivEqAlgA (LIMB > 21) or DivEqAlgB
// (LIMB <= 21, which falls back to Algorithm A itself when needed).
// modOut, if non-nil, receives the remainder.
func (x *Int[L]) DivEq(rhs *Int[L], modOut *Int[L]) *Int[L] {
	if rhs.IsZero() {
		if modOut != nil {
			modOut.Set(Zero[L]())
		}
		return x
	}
	if x.fits64() && rhs.fits64() {
		return x.PlainDivEq(rhs, modOut)
	}
	absRhs := rhs.Clone()
	absRhs.Abs()
	// A canonical non-negative Int pads with one extra zero limb whenever
	// the magnitude's own top limb has its sign bit set (e.g. 128 for an
	// 8-bit limb), so the true single-limb-magnitude case is len==1 or
	// len==2-with-a-zero-high-limb, not just len==1.
	fitsOneLimb := absRhs.len == 1 || (absRhs.len == 2 && absRhs.val[1] == 0)
	if fitsOneLimb {
		rv := absRhs.val[0]
		negQ := x.Sign() != rhs.Sign()
		negR := x.Sign()
		var rem L
		x.Abs()
		x.BasicDivEq(rv, &rem)
		if negQ {
			x.NegEq()
		}
		if modOut != nil {
			modOut.Set(New[L](int64(rem)))
			if negR {
				modOut.NegEq()
			}
		}
		return x
	}
	bits := limbBits[L]()
	if bits > 21 {
		return x.DivEqAlgA(rhs, modOut)
	}
	return x.DivEqAlgB(rhs, modOut)
}

// ModEq sets x to x mod rhs in place; the quotient is discarded. A zero
// rhs leaves x unchanged.
func (x *Int[L]) ModEq(rhs *Int[L]) *Int[L] {
	if rhs.IsZero() {
		return x
	}
	q := x.Clone()
	r := Zero[L]()
	q.DivEq(rhs, r)
	x.Set(r)
	return x
}

// Div returns x/rhs as a new Int.
func (x *Int[L]) Div(rhs *Int[L]) *Int[L] { return x.Clone().DivEq(rhs, nil) }

// Mod returns x mod rhs as a new Int.
func (x *Int[L]) Mod(rhs *Int[L]) *Int[L] { return x.Clone().ModEq(rhs) }

// DivMod returns (x/rhs, x mod rhs) as new Ints.
func (x *Int[L]) DivMod(rhs *Int[L]) (*Int[L], *Int[L]) {
	q := x.Clone()
	r := Zero[L]()
	q.DivEq(rhs, r)
	return q, r
}
