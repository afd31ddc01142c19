package tokenomics_test

import (
	"testing"

	"github.com/aminnizamdev/obex/primitives"
	"github.com/aminnizamdev/obex/tokenomics"
	"github.com/stretchr/testify/require"
)

func TestRouteFeeWithNLBSplitsSumToFee(t *testing.T) {
	fs := &tokenomics.FeeSplitState{}
	for _, fee := range []uint64{0, 1, 999, 1_000_000, 7, 123456789} {
		split := fs.RouteFeeWithNLB(1, fee)
		require.Equal(t, fee, split.Escrow+split.Verifier+split.Treasury+split.Burn)
	}
}

func TestRouteFeeWithNLBEscrowFixedAtTenPercent(t *testing.T) {
	fs := &tokenomics.FeeSplitState{}
	split := fs.RouteFeeWithNLB(1, 1000)
	require.Equal(t, uint64(100), split.Escrow)
}

func TestRouteFeeWithNLBEpochRatiosFrozenWithinEpoch(t *testing.T) {
	fs := &tokenomics.FeeSplitState{}
	fs.RollEpochIfNeeded(5)
	first := fs.Nlb

	fs.RollEpochIfNeeded(tokenomics.NlbEpochSlots - 1)
	require.Equal(t, first, fs.Nlb)

	fs.RollEpochIfNeeded(tokenomics.NlbEpochSlots)
	require.Equal(t, uint64(1), fs.Nlb.EpochIndex)
}

func TestRouteFeeWithNLBHighBurnAtFullSupply(t *testing.T) {
	fs := &tokenomics.FeeSplitState{}
	fs.RollEpochIfNeeded(1)
	require.Equal(t, uint8(20), fs.Nlb.BurnPct)
	require.Equal(t, uint8(40), fs.Nlb.VerifierPct)
	require.Equal(t, uint8(40), fs.Nlb.TreasuryPct)
}

func TestRouteFeeWithNLBRedirectsShortfallToVerifier(t *testing.T) {
	fs := &tokenomics.FeeSplitState{}
	// Burn enough of total supply that the threshold table selects a
	// burn rate below the 20% baseline, forcing a redirect.
	fs.TotalBurned = primitives.TotalSupplyUobx - primitives.TotalSupplyUobx/100*45
	fs.RollEpochIfNeeded(tokenomics.NlbEpochSlots)

	require.Equal(t, uint8(15), fs.Nlb.BurnPct)
	require.Equal(t, uint8(45), fs.Nlb.VerifierPct)
	require.Equal(t, uint8(40), fs.Nlb.TreasuryPct)
	require.EqualValues(t, 100, int(fs.Nlb.VerifierPct)+int(fs.Nlb.TreasuryPct)+int(fs.Nlb.BurnPct))
}

func TestRouteFeeWithNLBFloorBelowTwentyPercentEffective(t *testing.T) {
	fs := &tokenomics.FeeSplitState{}
	fs.TotalBurned = primitives.TotalSupplyUobx - primitives.TotalSupplyUobx/100*10
	fs.RollEpochIfNeeded(tokenomics.NlbEpochSlots)
	require.Equal(t, uint8(1), fs.Nlb.BurnPct)
}

func TestRouteFeeWithNLBRemainderAssignedDeterministically(t *testing.T) {
	fs1 := &tokenomics.FeeSplitState{}
	fs2 := &tokenomics.FeeSplitState{}
	a := fs1.RouteFeeWithNLB(1, 101)
	b := fs2.RouteFeeWithNLB(1, 101)
	require.Equal(t, a, b)
}
