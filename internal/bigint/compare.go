package bigint

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than
// rhs, honoring sign when either operand is in Signed mode.
func (x *Int[L]) Cmp(rhs *Int[L]) int {
	xNeg := x.Sign()
	rNeg := rhs.Sign()
	if xNeg != rNeg {
		if xNeg {
			return -1
		}
		return 1
	}
	return cmpMagnitude(x, rhs)
}

// cmpMagnitude compares the raw limb patterns of x and rhs, most
// significant limb first, reading sign-extended virtual limbs past the
// shorter operand's length so two differently-lengthed-but-equal-valued
// representations still compare equal. When x and rhs carry the same
// sign, pattern order already equals signed order, so Cmp uses this
// directly instead of negating it for negative operands.
func cmpMagnitude[L Limb](x, rhs *Int[L]) int {
	n := x.len
	if rhs.len > n {
		n = rhs.len
	}
	for i := n - 1; i >= 0; i-- {
		a := x.limbAt(i)
		b := rhs.limbAt(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Eq reports whether x and rhs represent the same value.
func (x *Int[L]) Eq(rhs *Int[L]) bool { return x.Cmp(rhs) == 0 }

// Lt reports whether x < rhs.
func (x *Int[L]) Lt(rhs *Int[L]) bool { return x.Cmp(rhs) < 0 }

// Gt reports whether x > rhs.
func (x *Int[L]) Gt(rhs *Int[L]) bool { return x.Cmp(rhs) > 0 }

// Le reports whether x <= rhs.
func (x *Int[L]) Le(rhs *Int[L]) bool { return x.Cmp(rhs) <= 0 }

// Ge reports whether x >= rhs.
func (x *Int[L]) Ge(rhs *Int[L]) bool { return x.Cmp(rhs) >= 0 }
