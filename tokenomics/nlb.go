package tokenomics

import "github.com/aminnizamdev/obex/primitives"

// NLB epoch and split-ratio constants (SPEC_FULL §5.5 "NLB split
// ratios"), grounded on the original source's threshold table but
// scaled to spec.md's frozen TotalSupplyUobx rather than the
// original's absolute OBX figures.
const (
	NlbEpochSlots = 10_000

	EscrowHoldbackPercent = 10

	baseTreasuryPercent = 40
	baseVerifierPercent = 40
	initialBurnPercent  = 20
	burnFloorPercent    = 1
)

// thresholdRow is one row of the burn-percentage table: an effective
// (unburned) supply fraction of TotalSupplyUobx at or above
// supplyFractionPct selects burnPercent.
type thresholdRow struct {
	supplyFractionPct uint64
	burnPercent       uint8
}

var burnThresholds = []thresholdRow{
	{50, 20},
	{40, 15},
	{30, 10},
	{20, 5},
}

// burnPercentFor returns the burn rate for an effective (unburned)
// supply of effUobx out of totalUobx.
func burnPercentFor(effUobx, totalUobx uint64) uint8 {
	for _, row := range burnThresholds {
		threshold := totalUobx / 100 * row.supplyFractionPct
		if effUobx >= threshold {
			return row.burnPercent
		}
	}
	return burnFloorPercent
}

// computeSplits returns (verifierPct, treasuryPct, burnPct) for an
// effective supply of effUobx. The shortfall between the initial 20%
// baseline burn and the threshold-selected burn rate is redirected
// into the verifier bucket; treasury stays fixed. The three always
// sum to 100.
func computeSplits(effUobx, totalUobx uint64) (verifierPct, treasuryPct, burnPct uint8) {
	b := burnPercentFor(effUobx, totalUobx)
	var redirect uint8
	if b < initialBurnPercent {
		redirect = initialBurnPercent - b
	}
	return baseVerifierPercent + redirect, baseTreasuryPercent, b
}

// NlbEpochState holds the split ratios frozen for one fee-routing
// epoch (spec §4.5 "Fee routing (NLB)").
type NlbEpochState struct {
	EpochIndex        uint64
	StartSlot         uint64
	EffSupplySnapshot uint64
	VerifierPct       uint8
	TreasuryPct       uint8
	BurnPct           uint8

	rolled bool
}

// FeeSplitState is the tokenomics engine's fee-routing state: the
// current NLB epoch, the running total burned (which feeds the next
// epoch's effective-supply snapshot), and the escrow holdback
// accumulated from fees not yet released.
type FeeSplitState struct {
	Nlb         NlbEpochState
	TotalBurned uint64
	FeeEscrow   uint64
}

// RollEpochIfNeeded recomputes the epoch's split ratios when slot
// crosses into a new NlbEpochSlots-sized epoch. Ratios are frozen for
// the whole epoch once computed; RouteFeeWithNLB always calls this
// first so callers never route a fee against a stale snapshot.
func (fs *FeeSplitState) RollEpochIfNeeded(slot uint64) {
	idx := slot / NlbEpochSlots
	if fs.Nlb.rolled && idx == fs.Nlb.EpochIndex {
		return
	}

	fs.Nlb.EpochIndex = idx
	fs.Nlb.StartSlot = idx * NlbEpochSlots
	effUobx := primitives.TotalSupplyUobx - fs.TotalBurned
	fs.Nlb.EffSupplySnapshot = effUobx
	fs.Nlb.VerifierPct, fs.Nlb.TreasuryPct, fs.Nlb.BurnPct = computeSplits(effUobx, primitives.TotalSupplyUobx)
	fs.Nlb.rolled = true
}

// FeeSplit is the result of routing one fee through the current
// epoch's ratios (spec §4.5: "splits sum to the original fee with
// remainder assigned deterministically smallest-bucket-first").
type FeeSplit struct {
	Escrow   uint64
	Verifier uint64
	Treasury uint64
	Burn     uint64
}

// RouteFeeWithNLB partitions feeUobx into {escrow, verifier, treasury,
// burn} at slot: a fixed EscrowHoldbackPercent is held back up front,
// then the remainder is split by the current epoch's ratios, with any
// integer-division remainder assigned to the smallest of the three
// percentage buckets first (SPEC_FULL §5.5 resolution 2).
func (fs *FeeSplitState) RouteFeeWithNLB(slot uint64, feeUobx uint64) FeeSplit {
	fs.RollEpochIfNeeded(slot)

	escrow := feeUobx * EscrowHoldbackPercent / 100
	remaining := feeUobx - escrow

	v := remaining * uint64(fs.Nlb.VerifierPct) / 100
	t := remaining * uint64(fs.Nlb.TreasuryPct) / 100
	b := remaining * uint64(fs.Nlb.BurnPct) / 100
	assignRemainder(remaining-(v+t+b), &v, &t, &b)

	fs.TotalBurned += b
	fs.FeeEscrow += escrow

	return FeeSplit{Escrow: escrow, Verifier: v, Treasury: t, Burn: b}
}

// assignRemainder distributes rem one unit at a time to whichever of
// v, t, b is currently smallest, breaking ties verifier-then-treasury-
// then-burn, until rem is exhausted.
func assignRemainder(rem uint64, v, t, b *uint64) {
	for ; rem > 0; rem-- {
		switch {
		case *v <= *t && *v <= *b:
			*v++
		case *t <= *v && *t <= *b:
			*t++
		default:
			*b++
		}
	}
}
