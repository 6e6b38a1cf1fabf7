package bigint

import (
	"math/rand"
	"sync"
	"time"
)

var (
	randMu     sync.Mutex
	randSrc    *rand.Rand
	randSrcSet bool
)

func sharedRand() *rand.Rand {
	randMu.Lock()
	defer randMu.Unlock()
	if !randSrcSet {
		randSrc = rand.New(rand.NewSource(time.Now().UnixNano()))
		randSrcSet = true
	}
	return randSrc
}

// SeedRandom reseeds the package-wide generator GenRandom draws from,
// primarily for reproducible tests.
func SeedRandom(seed int64) {
	randMu.Lock()
	defer randMu.Unlock()
	randSrc = rand.New(rand.NewSource(seed))
	randSrcSet = true
}

// GenRandom returns a uniformly random non-negative Int with exactly
// bitLen bits of magnitude (the top bit of the top limb set), or zero if
// bitLen <= 0. The shared generator is lazily seeded on first use and
// every draw is serialized behind a mutex, so GenRandom is safe to call
// from multiple goroutines.
func GenRandom[L Limb](bitLen int) *Int[L] {
	if bitLen <= 0 {
		return Zero[L]()
	}
	bits := limbBits[L]()
	nLimbs := (bitLen + bits - 1) / bits

	r := sharedRand()
	randMu.Lock()
	vals := make([]L, nLimbs)
	for i := 0; i < nLimbs; i++ {
		vals[i] = L(r.Uint64())
	}
	randMu.Unlock()

	topBits := bitLen - (nLimbs-1)*bits
	if topBits < bits {
		mask := L(1)<<uint(topBits) - 1
		vals[nLimbs-1] &= mask
	}
	vals[nLimbs-1] |= L(1) << uint(topBits-1)

	x := &Int[L]{Signed: true, cap: nextPow2(nLimbs), len: nLimbs, val: make([]L, nextPow2(nLimbs))}
	copy(x.val, vals)
	if x.Sign() {
		x.SetLen(x.len+1, false)
	}
	x.ShrinkLen()
	return x
}

// GenRandomRange returns a uniformly random Int in [0, bound). bound must
// be positive; a non-positive bound yields zero.
func GenRandomRange[L Limb](bound *Int[L]) *Int[L] {
	if bound.IsZero() || bound.Sign() {
		return Zero[L]()
	}
	bl := bound.bitLen()
	offset := New[L](1).ShlEq(uint64(bl))
	for {
		// GenRandom(bl+1) is uniform over [2^bl, 2^(bl+1)); subtracting
		// 2^bl makes the candidate uniform over [0, 2^bl).
		cand := GenRandom[L](bl + 1).SubEq(offset)
		if cand.Lt(bound) {
			return cand
		}
	}
}
