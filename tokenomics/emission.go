// Package tokenomics implements the α-T Tokenomics Engine: the
// per-slot emission accumulator with halving-period schedule, NLB fee
// routing with epoch-stable split ratios, the deterministic reward
// pool, and the canonical system-transaction codec.
package tokenomics

import (
	"math/big"

	"github.com/aminnizamdev/obex/primitives"
)

// HalvingCount and SlotsPerHalving fix the geometric halving schedule
// (SPEC_FULL §5.5 "Halving schedule"): the original source's
// HalvingCount=20 shapes the accumulator, and SlotsPerHalving is
// derived from the frozen LastEmissionSlot constant so the schedule
// divides evenly across exactly 20 periods.
const (
	HalvingCount    = 20
	SlotsPerHalving = primitives.LastEmissionSlot / HalvingCount
)

var (
	// r0Num and r0Den are the period-0 emission rate's numerator and
	// denominator: R0_NUM = TOTAL_SUPPLY * 2^(HalvingCount-1),
	// R0_DEN = SlotsPerHalving * (2^HalvingCount - 1).
	r0Num = new(big.Int).Mul(
		big.NewInt(primitives.TotalSupplyUobx),
		new(big.Int).Lsh(big.NewInt(1), HalvingCount-1),
	)
	r0Den = new(big.Int).Mul(
		big.NewInt(SlotsPerHalving),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), HalvingCount), big.NewInt(1)),
	)
)

// EmissionState is the per-slot emission accumulator (spec §3
// "EmissionState"): total_emitted_uobx plus the 256-bit remainder
// accumulator that carries fractional emission across slots within a
// halving period. The zero value is the correct genesis state.
type EmissionState struct {
	TotalEmittedUobx uint64
	accNum           *big.Int
}

func (s *EmissionState) acc() *big.Int {
	if s.accNum == nil {
		s.accNum = new(big.Int)
	}
	return s.accNum
}

// PeriodIndex returns the halving period (0-based) containing the
// 1-based slot.
func PeriodIndex(slot uint64) uint64 {
	return (slot - 1) / SlotsPerHalving
}

// RewardDenForPeriod returns the emission-rate denominator for
// halving period p: R0_DEN * 2^p.
func RewardDenForPeriod(p uint64) *big.Int {
	return new(big.Int).Lsh(r0Den, uint(p))
}

// OnSlotEmission advances state by one slot (spec §4.5 "Emission
// schedule"): it adds the period's emission rate to the remainder
// accumulator, mints the accumulator's integer quotient (capped at
// the remaining unminted supply), and returns the amount minted for
// slot. Slot 0 and any slot past LastEmissionSlot mint nothing. At
// exactly LastEmissionSlot any residual shortfall against
// TotalSupplyUobx is flushed so the cumulative total lands exactly on
// TotalSupplyUobx.
func OnSlotEmission(state *EmissionState, slot uint64) uint64 {
	if slot == 0 || slot > primitives.LastEmissionSlot {
		return 0
	}

	den := RewardDenForPeriod(PeriodIndex(slot))
	acc := state.acc()
	acc.Add(acc, r0Num)

	payout := new(big.Int).Div(acc, den)
	var minted uint64

	if payout.Sign() > 0 {
		remaining := primitives.TotalSupplyUobx - state.TotalEmittedUobx
		pay := payout.Uint64()
		if pay > remaining {
			pay = remaining
		}
		if pay > 0 {
			minted = pay
			state.TotalEmittedUobx += pay
			acc.Sub(acc, new(big.Int).Mul(big.NewInt(int64(pay)), den))
		}
	}

	if slot == primitives.LastEmissionSlot {
		remaining := primitives.TotalSupplyUobx - state.TotalEmittedUobx
		if remaining > 0 {
			minted += remaining
			state.TotalEmittedUobx = primitives.TotalSupplyUobx
			acc.SetInt64(0)
		}
	}

	return minted
}
