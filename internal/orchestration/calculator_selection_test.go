package orchestration

import (
	"testing"

	"github.com/agbru/bigint/internal/bigint"
)

func TestGetDivisionStrategiesToRun(t *testing.T) {
	t.Parallel()

	t.Run("zero divisor yields no strategies", func(t *testing.T) {
		strategies := GetDivisionStrategiesToRun(bigint.New[uint32](10), bigint.Zero[uint32]())
		if strategies != nil {
			t.Errorf("expected nil, got %d strategies", len(strategies))
		}
	})

	t.Run("single-limb divisor includes BasicDiv but not AlgA/AlgB", func(t *testing.T) {
		strategies := GetDivisionStrategiesToRun(bigint.New[uint32](1000), bigint.New[uint32](7))
		names := strategyNames(strategies)
		if !contains(names, "Dispatch") || !contains(names, "PlainDiv") || !contains(names, "BasicDiv") {
			t.Errorf("missing expected strategy in %v", names)
		}
		if contains(names, "AlgA") || contains(names, "AlgB") {
			t.Errorf("AlgA/AlgB should not run against a single-limb divisor: %v", names)
		}
	})

	t.Run("multi-limb divisor includes AlgA, and AlgB only for narrow limbs", func(t *testing.T) {
		big1 := bigint.GenRandom[uint32](256)
		big2 := bigint.GenRandom[uint32](192)
		names := strategyNames(GetDivisionStrategiesToRun(big1, big2))
		if !contains(names, "AlgA") {
			t.Errorf("expected AlgA for a multi-limb divisor: %v", names)
		}
		if contains(names, "AlgB") {
			t.Errorf("AlgB should not run for LIMB=32: %v", names)
		}

		small1 := bigint.GenRandom[uint8](64)
		small2 := bigint.GenRandom[uint8](48)
		namesSmall := strategyNames(GetDivisionStrategiesToRun(small1, small2))
		if !contains(namesSmall, "AlgB") {
			t.Errorf("expected AlgB for LIMB=8: %v", namesSmall)
		}
	})
}

func TestGetMultiplicationStrategiesToRun(t *testing.T) {
	t.Parallel()
	names := strategyMulNames(GetMultiplicationStrategiesToRun(bigint.New[uint32](3), bigint.New[uint32](4)))
	if !contains(names, "Schoolbook") || !contains(names, "FFT") {
		t.Errorf("expected both Schoolbook and FFT, got %v", names)
	}
}

func strategyNames[L bigint.Limb](s []DivStrategy[L]) []string {
	names := make([]string, len(s))
	for i, v := range s {
		names[i] = v.Name
	}
	return names
}

func strategyMulNames[L bigint.Limb](s []MulStrategy[L]) []string {
	names := make([]string, len(s))
	for i, v := range s {
		names[i] = v.Name
	}
	return names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
