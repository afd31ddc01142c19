package vrf

import (
	"crypto/rand"
	"crypto/sha512"
	"io"

	ed "filippo.io/edwards25519"
)

// PrivateKey is a VRF proving key. The kernel's consensus path never
// constructs one: proofs arrive pre-computed from the network. It
// exists here solely so tests can generate realistic (pk, alpha,
// proof, output) fixtures without a second implementation to keep in
// sync with Verify.
type PrivateKey struct {
	scalar *ed.Scalar
	pk     []byte
	nonce  []byte
}

// GenerateKey creates a fresh VRF keypair, reading randomness from rnd
// (crypto/rand.Reader if nil).
func GenerateKey(rnd io.Reader) (*PublicKey, *PrivateKey) {
	if rnd == nil {
		rnd = rand.Reader
	}
	seed := make([]byte, 32)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		panic(err)
	}
	h := sha512.Sum512(seed)
	s, err := (&ed.Scalar{}).SetBytesWithClamping(h[:32])
	if err != nil {
		panic(err)
	}
	point := (&ed.Point{}).ScalarBaseMult(s)
	compressed := point.Bytes()

	pk := &PublicKey{point: point}
	copy(pk.compressed[:], compressed)
	sk := &PrivateKey{scalar: s, pk: compressed, nonce: seed}
	return pk, sk
}

// Prove computes the VRF output and proof for alpha, following the
// overall ECVRF_prove structure of RFC 9381 §5.1 (hash-to-curve,
// nonce, challenge, response). The nonce here is plain
// SHA512(seed‖H) rather than the RFC's truncated-hash construction
// (§5.4.2.2) — fine for this package's own use generating
// self-consistent fixtures against Verify, since Verify never
// recomputes a prover's nonce, but this is not a byte-exact nonce
// generator for the suite.
func (sk *PrivateKey) Prove(alpha []byte) (output, proof []byte) {
	hPoint := encodeToCurve(sk.pk, alpha)
	hBytes := hPoint.Bytes()

	nonceIn := append(append([]byte{}, sk.nonce...), hBytes...)
	nonceSum := sha512.Sum512(nonceIn)
	k, err := (&ed.Scalar{}).SetUniformBytes(nonceSum[:])
	if err != nil {
		panic(err)
	}

	gamma := (&ed.Point{}).ScalarMult(sk.scalar, hPoint)
	kB := (&ed.Point{}).ScalarBaseMult(k)
	kH := (&ed.Point{}).ScalarMult(k, hPoint)

	c := challenge(sk.pk, hBytes, []*ed.Point{gamma, kB, kH})
	s := (&ed.Scalar{}).Add(k, (&ed.Scalar{}).Multiply(c, sk.scalar))

	output = gammaToOutput(gamma)
	proof = make([]byte, 0, ProofLen)
	proof = append(proof, gamma.Bytes()...)
	proof = append(proof, c.Bytes()[:16]...)
	proof = append(proof, s.Bytes()...)
	return output, proof
}

// Bytes returns the compressed public key.
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeyLen)
	copy(b, pk.compressed[:])
	return b
}
