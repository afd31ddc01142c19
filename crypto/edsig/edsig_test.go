package edsig_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/aminnizamdev/obex/crypto/edsig"
	"github.com/stretchr/testify/require"
)

func TestVerifyValidSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	msg := []byte("obex consensus message")
	sig := ed25519.Sign(priv, msg)

	require.NoError(t, edsig.Verify(pub, msg, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	sig := ed25519.Sign(priv, []byte("original"))

	require.Error(t, edsig.Verify(pub, []byte("tampered"), sig))
}

func TestVerifyRejectsNonCanonicalS(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	msg := []byte("obex consensus message")
	sig := ed25519.Sign(priv, msg)

	// Add the group order L to S (little-endian), producing an
	// alternate encoding that still verifies under the naive formula
	// but must be rejected as non-canonical.
	l := [32]byte{
		0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	tampered := append([]byte{}, sig...)
	var carry uint16
	for i := 0; i < 32; i++ {
		sum := uint16(tampered[32+i]) + uint16(l[i]) + carry
		tampered[32+i] = byte(sum)
		carry = sum >> 8
	}

	require.Error(t, edsig.Verify(pub, msg, tampered))
}

func TestVerifyRejectsBadLengths(t *testing.T) {
	require.Error(t, edsig.Verify([]byte{1, 2, 3}, []byte("m"), make([]byte, 64)))
	require.Error(t, edsig.Verify(make([]byte, 32), []byte("m"), []byte{1, 2, 3}))
}
