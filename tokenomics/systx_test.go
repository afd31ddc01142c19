package tokenomics_test

import (
	"testing"

	"github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/tokenomics"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSysTxRoundTripCreditKinds(t *testing.T) {
	for _, kind := range []tokenomics.SysTxKind{
		tokenomics.SysTxEscrowCredit,
		tokenomics.SysTxEmissionCredit,
		tokenomics.SysTxVerifierCredit,
		tokenomics.SysTxTreasuryCredit,
		tokenomics.SysTxBurn,
	} {
		tx := &tokenomics.SysTx{Kind: kind, AmountUobx: 12345}
		got, err := tokenomics.DecodeSysTx(tokenomics.EncodeSysTx(tx))
		require.NoError(t, err)
		require.Equal(t, tx, got)
	}
}

func TestEncodeDecodeSysTxRoundTripRewardPayout(t *testing.T) {
	tx := &tokenomics.SysTx{
		Kind:       tokenomics.SysTxRewardPayout,
		AmountUobx: 50,
		Recipient:  [32]byte{1, 2, 3},
		Rank:       7,
	}
	got, err := tokenomics.DecodeSysTx(tokenomics.EncodeSysTx(tx))
	require.NoError(t, err)
	require.Equal(t, tx, got)
}

func TestDecodeSysTxRejectsBadDomainPrefix(t *testing.T) {
	tx := &tokenomics.SysTx{Kind: tokenomics.SysTxBurn, AmountUobx: 1}
	b := tokenomics.EncodeSysTx(tx)
	b[0] ^= 0xFF
	_, err := tokenomics.DecodeSysTx(b)
	require.ErrorIs(t, err, errors.KindInvalidDomainSeparator)
}

func TestDecodeSysTxRejectsUnknownKind(t *testing.T) {
	tx := &tokenomics.SysTx{Kind: tokenomics.SysTxBurn, AmountUobx: 1}
	b := tokenomics.EncodeSysTx(tx)
	b[32] = 0xFF
	_, err := tokenomics.DecodeSysTx(b)
	require.ErrorIs(t, err, errors.KindInvalidTag)
}

func TestDecodeSysTxRejectsTrailingBytes(t *testing.T) {
	tx := &tokenomics.SysTx{Kind: tokenomics.SysTxBurn, AmountUobx: 1}
	b := append(tokenomics.EncodeSysTx(tx), 0x00)
	_, err := tokenomics.DecodeSysTx(b)
	require.ErrorIs(t, err, errors.KindTrailingBytes)
}

func TestDecodeSysTxRejectsTruncated(t *testing.T) {
	tx := &tokenomics.SysTx{Kind: tokenomics.SysTxRewardPayout, AmountUobx: 1, Rank: 3}
	b := tokenomics.EncodeSysTx(tx)
	_, err := tokenomics.DecodeSysTx(b[:len(b)-1])
	require.Error(t, err)
}

func TestCanonicalSysTxOrderMatchesFrozenSequence(t *testing.T) {
	in := []*tokenomics.SysTx{
		{Kind: tokenomics.SysTxRewardPayout, Rank: 1},
		{Kind: tokenomics.SysTxBurn},
		{Kind: tokenomics.SysTxRewardPayout, Rank: 0},
		{Kind: tokenomics.SysTxTreasuryCredit},
		{Kind: tokenomics.SysTxVerifierCredit},
		{Kind: tokenomics.SysTxEmissionCredit},
		{Kind: tokenomics.SysTxEscrowCredit},
	}
	out := tokenomics.CanonicalSysTxOrder(in)

	wantKinds := []tokenomics.SysTxKind{
		tokenomics.SysTxEscrowCredit,
		tokenomics.SysTxEmissionCredit,
		tokenomics.SysTxVerifierCredit,
		tokenomics.SysTxTreasuryCredit,
		tokenomics.SysTxBurn,
		tokenomics.SysTxRewardPayout,
		tokenomics.SysTxRewardPayout,
	}
	for i, k := range wantKinds {
		require.Equal(t, k, out[i].Kind)
	}
	require.Equal(t, uint64(0), out[5].Rank)
	require.Equal(t, uint64(1), out[6].Rank)
}
