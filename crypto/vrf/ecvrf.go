// Package vrf implements ECVRF-EDWARDS25519-SHA512-TAI (RFC 9381,
// suite 0x03) verification, the sole cryptographic oracle the
// participation engine treats as externally supplied: a participant's
// per-slot eligibility proof comes in as a (pk, alpha, proof) tuple
// that this package turns into a 64-byte output or an error.
package vrf

import (
	"crypto/sha512"

	ed "filippo.io/edwards25519"

	kerrors "github.com/aminnizamdev/obex/internal/errors"
)

const (
	suite byte = 3
	zero  byte = 0
	one   byte = 1
	two   byte = 2
	three byte = 3

	// PublicKeyLen is the compressed Edwards25519 point size.
	PublicKeyLen = 32
	// ProofLen is the fixed ECVRF proof size: 32-byte gamma, 16-byte c, 32-byte s.
	ProofLen = 80
	// OutputLen is the fixed VRF output size.
	OutputLen = 64
)

// PublicKey is a validated, decompressed VRF verification key.
type PublicKey struct {
	compressed [PublicKeyLen]byte
	point      *ed.Point
}

// DecodePublicKey validates an untrusted 32-byte key: it must decode
// to a curve point and must not lie in the small-order subgroup
// (ECVRF_validate_key, RFC 9381 §5.6).
func DecodePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyLen {
		return nil, kerrors.New(kerrors.KindSignatureInvalid, "vrf pubkey: want %d bytes, got %d", PublicKeyLen, len(b))
	}
	y, err := (&ed.Point{}).SetBytes(b)
	if err != nil {
		return nil, kerrors.New(kerrors.KindSignatureInvalid, "vrf pubkey: not a curve point")
	}
	if (&ed.Point{}).MultByCofactor(y).Equal(ed.NewIdentityPoint()) == 1 {
		return nil, kerrors.New(kerrors.KindSignatureInvalid, "vrf pubkey: small-order point")
	}
	pk := &PublicKey{point: y}
	copy(pk.compressed[:], b)
	return pk, nil
}

type decodedProof struct {
	gamma *ed.Point
	c     *ed.Scalar
	s     *ed.Scalar
}

func decodeProof(b []byte) (*decodedProof, error) {
	if len(b) != ProofLen {
		return nil, kerrors.New(kerrors.KindVrfVerifyFailed, "vrf proof: want %d bytes, got %d", ProofLen, len(b))
	}
	gamma, err := (&ed.Point{}).SetBytes(b[:32])
	if err != nil {
		return nil, kerrors.New(kerrors.KindVrfVerifyFailed, "vrf proof: gamma not a curve point")
	}
	cBuf := make([]byte, 32)
	copy(cBuf, b[32:48])
	c, err := (&ed.Scalar{}).SetCanonicalBytes(cBuf)
	if err != nil {
		return nil, kerrors.New(kerrors.KindVrfVerifyFailed, "vrf proof: non-canonical c")
	}
	s, err := (&ed.Scalar{}).SetCanonicalBytes(b[48:80])
	if err != nil {
		return nil, kerrors.New(kerrors.KindVrfVerifyFailed, "vrf proof: non-canonical s")
	}
	return &decodedProof{gamma: gamma, c: c, s: s}, nil
}

// Verify checks proof against alpha under pk and returns the 64-byte
// VRF output on success (ECVRF_verify, RFC 9381 §5.3).
func Verify(pk *PublicKey, alpha, proof []byte) ([]byte, error) {
	dp, err := decodeProof(proof)
	if err != nil {
		return nil, err
	}
	hPoint := encodeToCurve(pk.compressed[:], alpha)

	u := (&ed.Point{}).Subtract(
		(&ed.Point{}).ScalarBaseMult(dp.s),
		(&ed.Point{}).ScalarMult(dp.c, pk.point),
	)
	v := (&ed.Point{}).Subtract(
		(&ed.Point{}).ScalarMult(dp.s, hPoint),
		(&ed.Point{}).ScalarMult(dp.c, dp.gamma),
	)

	cPrime := challenge(pk.compressed[:], hPoint.Bytes(), []*ed.Point{dp.gamma, u, v})
	if dp.c.Equal(cPrime) == 0 {
		return nil, kerrors.New(kerrors.KindVrfVerifyFailed, "vrf: challenge mismatch")
	}
	return gammaToOutput(dp.gamma), nil
}

func encodeToCurve(pk, alpha []byte) *ed.Point {
	inLen := 1 + 1 + 32 + len(alpha) + 1 + 1
	hashIn := make([]byte, 0, inLen)
	hashIn = append(hashIn, suite, one)
	hashIn = append(hashIn, pk...)
	hashIn = append(hashIn, alpha...)

	ident := ed.NewIdentityPoint()
	for ctr := 0; ctr < 256; ctr++ {
		trial := append(append([]byte{}, hashIn...), byte(ctr), zero)
		sum := sha512.Sum512(trial)
		candidate := sum[:32]

		if p, err := (&ed.Point{}).SetBytes(candidate); err == nil {
			res := (&ed.Point{}).MultByCofactor(p)
			if res.Equal(ident) == 0 {
				return res
			}
		}
	}
	panic("vrf: encodeToCurve exhausted counter space")
}

func gammaToOutput(gamma *ed.Point) []byte {
	h := sha512.New()
	h.Write([]byte{suite, three})
	h.Write((&ed.Point{}).MultByCofactor(gamma).Bytes())
	h.Write([]byte{zero})
	return h.Sum(nil)
}

func challenge(pk, hPointBytes []byte, points []*ed.Point) *ed.Scalar {
	h := sha512.New()
	h.Write([]byte{suite, two})
	h.Write(pk)
	h.Write(hPointBytes)
	for _, p := range points {
		h.Write(p.Bytes())
	}
	h.Write([]byte{zero})

	sum := h.Sum(nil)[:32]
	for i := 16; i < 32; i++ {
		sum[i] = 0
	}
	s, err := (&ed.Scalar{}).SetCanonicalBytes(sum)
	if err != nil {
		panic(err)
	}
	return s
}
