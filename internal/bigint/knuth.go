package bigint

// This file holds the low-level digit-vector primitives shared by
// DivEqAlgA and DivEqAlgB: both algorithms reduce to the same
// multiply-subtract-and-correct inner loop over base-2^bits digit
// vectors (stored as []uint64, one value per limb for headroom during
// the intermediate products); only the trial-quotient estimate differs
// between the two.

// mulSubAtOffset computes un[j:j+n+1] -= qhat*vn[0:n] in place (un has at
// least n+1 digits starting at offset j) and returns the final borrow out
// of the top digit, before any add-back correction.
func mulSubAtOffset(un, vn []uint64, qhat uint64, j int, bits uint, b uint64) int64 {
	n := len(vn)
	var mulCarry uint64
	var borrow int64
	for i := 0; i < n; i++ {
		p := qhat*vn[i] + mulCarry
		mulCarry = p >> bits
		plow := p & (b - 1)
		t := int64(un[j+i]) - int64(plow) - borrow
		if t < 0 {
			t += int64(b)
			borrow = 1
		} else {
			borrow = 0
		}
		un[j+i] = uint64(t)
	}
	t := int64(un[j+n]) - int64(mulCarry) - borrow
	un[j+n] = uint64(t)
	if t < 0 {
		return -1
	}
	return 0
}

// addBackAtOffset adds vn back into un[j:j+n] (used after mulSubAtOffset
// overshot and the caller decremented qhat), and folds the resulting
// carry into un[j+n].
func addBackAtOffset(un, vn []uint64, j int, bits uint, b uint64) {
	n := len(vn)
	var carry uint64
	for i := 0; i < n; i++ {
		s := un[j+i] + vn[i] + carry
		un[j+i] = s & (b - 1)
		carry = s >> bits
	}
	un[j+n] += carry
}

// shiftDigitsLeft returns u (m digits, base b=2^bits) shifted left by s
// bits (0 <= s < bits), as m+1 digits.
func shiftDigitsLeft(u []uint64, s uint, bits uint, b uint64) []uint64 {
	m := len(u)
	un := make([]uint64, m+1)
	if s == 0 {
		copy(un, u)
		return un
	}
	un[m] = u[m-1] >> (bits - s)
	for i := m - 1; i > 0; i-- {
		un[i] = ((u[i] << s) | (u[i-1] >> (bits - s))) & (b - 1)
	}
	un[0] = (u[0] << s) & (b - 1)
	return un
}

// shiftDigitsRight returns the first n digits of un (base b=2^bits)
// shifted right by s bits (the inverse of shiftDigitsLeft, applied to a
// remainder in normalized form).
func shiftDigitsRight(un []uint64, n int, s uint, bits uint, b uint64) []uint64 {
	r := make([]uint64, n)
	if s == 0 {
		copy(r, un[:n])
		return r
	}
	for i := 0; i < n-1; i++ {
		r[i] = ((un[i] >> s) | (un[i+1] << (bits - s))) & (b - 1)
	}
	r[n-1] = un[n-1] >> s
	return r
}

func trimLeadingZeroDigits(d []uint64) []uint64 {
	for len(d) > 1 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	return d
}
