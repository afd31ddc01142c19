package participation

import (
	"github.com/aminnizamdev/obex/primitives"
)

// nextPow2 returns the smallest power of two ≥ n.
func nextPow2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// ChallengeIndices derives the Q distinct challenge indices for seed
// by rejection sampling (spec §4.2 step 7): for counter c = 0, 1, …,
// draw 32 bytes from H("obex.chal",[seed, LE(c,8)]), take the leading
// 8 bytes modulo the smallest power of two ≥ N_LABELS, and accept the
// result if it is < N_LABELS and not already chosen. The returned
// slice preserves draw order, which is also the order the PartRec's
// challenge openings must appear in.
func ChallengeIndices(seed primitives.Hash) []uint64 {
	mask := nextPow2(primitives.NLabels) - 1
	seen := make(map[uint64]struct{}, primitives.ChallengesQ)
	out := make([]uint64, 0, primitives.ChallengesQ)

	for c := uint64(0); len(out) < primitives.ChallengesQ; c++ {
		draw := primitives.H(primitives.TagChal, seed.Bytes(), primitives.LE(c, 8))
		candidate := primitives.U64FromLE(draw.Bytes()) & mask
		if candidate >= primitives.NLabels {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}
	return out
}
