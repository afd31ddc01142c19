package tokenomics

import (
	"bytes"
	"sort"

	"github.com/aminnizamdev/obex/primitives"
)

// DrpWinners is the frozen top-M winner count (SPEC_FULL §5.5
// resolution 3: "DRP_K_WINNERS = 16", taken from the original source).
const DrpWinners = 16

// RewardPayout is one winning recipient's share of the deterministic
// reward pool for a slot, in strictly ascending rank order (spec §3
// "SysTx" RewardPayout variant).
type RewardPayout struct {
	Recipient  [32]byte
	AmountUobx uint64
	Rank       uint64
}

// drawFor computes the per-recipient draw d_k = H("obex.reward.draw",
// [slot_bytes, pk_k]) (spec §4.5 "Deterministic Reward Pool").
func drawFor(slot uint64, pk [32]byte) primitives.Hash {
	return primitives.H(primitives.TagRewardDraw, primitives.LE(slot, 8), pk[:])
}

// DistributeDRP ranks every eligible recipient's draw for slot in
// ascending byte-lex order (ties broken by pk byte-lex), pays the
// top-DrpWinners an equal share of poolUobx, and burns the integer
// remainder left after the equal split. Fewer than DrpWinners eligible
// recipients pays all of them; zero recipients burns the whole pool.
func DistributeDRP(slot uint64, recipients [][32]byte, poolUobx uint64) (payouts []RewardPayout, burned uint64) {
	if len(recipients) == 0 {
		return nil, poolUobx
	}

	type ranked struct {
		pk   [32]byte
		draw primitives.Hash
	}
	rs := make([]ranked, len(recipients))
	for i, pk := range recipients {
		rs[i] = ranked{pk: pk, draw: drawFor(slot, pk)}
	}
	sort.Slice(rs, func(i, j int) bool {
		if c := bytes.Compare(rs[i].draw[:], rs[j].draw[:]); c != 0 {
			return c < 0
		}
		return bytes.Compare(rs[i].pk[:], rs[j].pk[:]) < 0
	})

	winners := rs
	if len(winners) > DrpWinners {
		winners = winners[:DrpWinners]
	}

	share := poolUobx / uint64(len(winners))
	burned = poolUobx - share*uint64(len(winners))

	payouts = make([]RewardPayout, len(winners))
	for i, w := range winners {
		payouts[i] = RewardPayout{Recipient: w.pk, AmountUobx: share, Rank: uint64(i)}
	}
	return payouts, burned
}
