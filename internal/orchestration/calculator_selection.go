package orchestration

import (
	"github.com/agbru/bigint/internal/bigint"
)

// DivStrategy names one way of computing x/rhs (and x mod rhs).
type DivStrategy[L bigint.Limb] struct {
	Name string
	Run  func(x, rhs *bigint.Int[L]) (*bigint.Int[L], *bigint.Int[L])
}

// MulStrategy names one way of computing x*rhs.
type MulStrategy[L bigint.Limb] struct {
	Name string
	Run  func(x, rhs *bigint.Int[L]) *bigint.Int[L]
}

func fits64[L bigint.Limb](v *bigint.Int[L]) bool {
	return v.Len()*bigint.LimbBits[L]() <= 64
}

// GetDivisionStrategiesToRun returns every division strategy that is
// actually well-defined for the given operands, in the same order DivEq's
// four-way dispatch would consider them: the full Dispatch is always
// included as a baseline; PlainDiv only applies when both operands fit 64
// bits; BasicDiv only when rhs has a single limb; AlgA/AlgB only when rhs
// has two or more limbs (AlgB is omitted entirely, rather than silently
// aliasing AlgA, when the limb width is too wide for its unnormalized
// estimator).
func GetDivisionStrategiesToRun[L bigint.Limb](x, rhs *bigint.Int[L]) []DivStrategy[L] {
	if rhs.IsZero() {
		return nil
	}

	strategies := []DivStrategy[L]{{
		Name: "Dispatch",
		Run: func(x, rhs *bigint.Int[L]) (*bigint.Int[L], *bigint.Int[L]) {
			q := x.Clone()
			r := bigint.Zero[L]()
			q.DivEq(rhs, r)
			return q, r
		},
	}}

	if fits64(x) && fits64(rhs) {
		strategies = append(strategies, DivStrategy[L]{
			Name: "PlainDiv",
			Run: func(x, rhs *bigint.Int[L]) (*bigint.Int[L], *bigint.Int[L]) {
				q := x.Clone()
				r := bigint.Zero[L]()
				q.PlainDivEq(rhs, r)
				return q, r
			},
		})
	}

	if rhs.Len() == 1 {
		strategies = append(strategies, DivStrategy[L]{
			Name: "BasicDiv",
			Run: func(x, rhs *bigint.Int[L]) (*bigint.Int[L], *bigint.Int[L]) {
				q := x.Clone()
				var rem L
				neg := q.Sign() != rhs.Sign()
				negR := q.Sign()
				q.Abs()
				d := rhs.Clone()
				d.Abs()
				q.BasicDivEq(d.Data()[0], &rem)
				if neg {
					q.NegEq()
				}
				r := bigint.New[L](int64(rem))
				if negR {
					r.NegEq()
				}
				return q, r
			},
		})
	}

	if rhs.Len() >= 2 {
		strategies = append(strategies, DivStrategy[L]{
			Name: "AlgA",
			Run: func(x, rhs *bigint.Int[L]) (*bigint.Int[L], *bigint.Int[L]) {
				q := x.Clone()
				r := bigint.Zero[L]()
				q.DivEqAlgA(rhs, r)
				return q, r
			},
		})
		if bigint.LimbBits[L]() <= 21 {
			strategies = append(strategies, DivStrategy[L]{
				Name: "AlgB",
				Run: func(x, rhs *bigint.Int[L]) (*bigint.Int[L], *bigint.Int[L]) {
					q := x.Clone()
					r := bigint.Zero[L]()
					q.DivEqAlgB(rhs, r)
					return q, r
				},
			})
		}
	}

	return strategies
}

// GetMultiplicationStrategiesToRun returns both multiplication strategies:
// the quadratic schoolbook path always applies, and the FFT path is worth
// comparing against it regardless of operand size (small operands just
// finish the comparison quickly).
func GetMultiplicationStrategiesToRun[L bigint.Limb](x, rhs *bigint.Int[L]) []MulStrategy[L] {
	return []MulStrategy[L]{
		{Name: "Schoolbook", Run: func(x, rhs *bigint.Int[L]) *bigint.Int[L] {
			return x.Clone().PlainMulEq(rhs)
		}},
		{Name: "FFT", Run: func(x, rhs *bigint.Int[L]) *bigint.Int[L] {
			return x.Clone().FFTMulEq(rhs)
		}},
	}
}

// DispatchedDivisionName names the algorithm DivEq would actually pick for
// x/rhs, without running it: PlainDiv when both operands fit 64 bits,
// BasicDiv for a single-limb divisor, otherwise AlgA or AlgB depending on
// limb width. Mirrors DivEq's branching in bigint/div.go exactly, for
// callers (the TUI dashboard) that want to report the dispatch decision
// without paying for a second, strategy-comparison run.
func DispatchedDivisionName[L bigint.Limb](x, rhs *bigint.Int[L]) string {
	if rhs.IsZero() {
		return "none"
	}
	if fits64(x) && fits64(rhs) {
		return "PlainDiv"
	}
	if rhs.Len() == 1 {
		return "BasicDiv"
	}
	if bigint.LimbBits[L]() > 21 {
		return "AlgA"
	}
	return "AlgB"
}

// DispatchedMultiplicationName names the algorithm MulEq would actually
// pick for x*rhs: FFT once either operand's bit length crosses
// bigint.FFTMulThreshold, Schoolbook otherwise.
func DispatchedMultiplicationName[L bigint.Limb](x, rhs *bigint.Int[L]) string {
	if x.BitLen() >= bigint.FFTMulThreshold || rhs.BitLen() >= bigint.FFTMulThreshold {
		return "FFT"
	}
	return "Schoolbook"
}
