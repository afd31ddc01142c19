package admission_test

import (
	"testing"

	"github.com/aminnizamdev/obex/admission"
	"github.com/stretchr/testify/require"
)

func TestFeeIntUobxBoundary(t *testing.T) {
	require.Equal(t, uint64(1000), admission.FeeIntUobx(999_999))
	require.Equal(t, uint64(1000), admission.FeeIntUobx(1_000_000))
	require.Equal(t, uint64(2500), admission.FeeIntUobx(2_500_000))
}

func TestFeeIntUobxMonotoneNonDecreasing(t *testing.T) {
	var prev uint64
	for _, amount := range []uint64{1, 1000, 999_999, 1_000_000, 1_000_001, 5_000_000, 1 << 40} {
		fee := admission.FeeIntUobx(amount)
		require.GreaterOrEqual(t, fee, prev)
		prev = fee
	}
}

func TestFeeIntUobxFlatBelowSwitch(t *testing.T) {
	require.Equal(t, uint64(1000), admission.FeeIntUobx(1))
	require.Equal(t, uint64(1000), admission.FeeIntUobx(500_000))
}
