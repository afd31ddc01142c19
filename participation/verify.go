package participation

import (
	"github.com/aminnizamdev/obex/crypto/edsig"
	"github.com/aminnizamdev/obex/crypto/memlabel"
	"github.com/aminnizamdev/obex/crypto/vrf"
	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/primitives"
)

// VrfVerifier is the external VRF oracle the kernel consumes (spec §6:
// "a VrfVerifier accepting (pk, alpha, pi) ⇒ y"). The kernel never
// implements the suite's internals itself; ECVRFVerifier below is the
// concrete RFC 9381 adapter used by production code and test fixtures
// alike.
type VrfVerifier interface {
	Verify(pk [32]byte, alpha []byte, pi [80]byte) (y [64]byte, err error)
}

// ECVRFVerifier implements VrfVerifier against the frozen
// ECVRF-EDWARDS25519-SHA512-TAI suite.
type ECVRFVerifier struct{}

// Verify decodes pk and checks pi over alpha, returning the 64-byte
// VRF output on success.
func (ECVRFVerifier) Verify(pk [32]byte, alpha []byte, pi [80]byte) (y [64]byte, err error) {
	decodedPk, err := vrf.DecodePublicKey(pk[:])
	if err != nil {
		return y, err
	}
	out, err := vrf.Verify(decodedPk, alpha, pi[:])
	if err != nil {
		return y, err
	}
	copy(y[:], out)
	return y, nil
}

// LabelDeriver computes the memory-hard label at a dataset index. The
// production implementation is Argon2id with the frozen parameters;
// the kernel can substitute a reduced Argon2id memory cost, and tests
// substitute reduced-cost Argon2id or a plain domain-tagged hash.
type LabelDeriver func(seed []byte, index uint64) primitives.Hash

// DefaultLabelDeriver derives labels with the frozen production
// Argon2id parameters (spec §4.2 "Memory-hard labeling").
func DefaultLabelDeriver(seed []byte, index uint64) primitives.Hash {
	return memlabel.DeriveDefault(seed, index)
}

// Verify runs the α-I verification pipeline for one decoded PartRec
// (spec §4.2, steps 3–9; the size gate and strict decode of steps 1–2
// are Decode's) at slot against parentID and the prior beacon edge
// yEdgePrev. vrfv and derive are injected so tests can substitute a
// cheaper LabelDeriver without touching this function.
func Verify(r *PartRec, parentID primitives.Hash, slot uint64, yEdgePrev primitives.Hash, vrfv VrfVerifier, derive LabelDeriver) error {
	alpha := primitives.H(primitives.TagAlpha, parentID.Bytes(), primitives.LE(slot, 8), yEdgePrev.Bytes(), r.VrfPk[:])

	vrfY, err := vrfv.Verify(r.VrfPk, alpha.Bytes(), r.VrfPi)
	if err != nil {
		return kerrors.Wrap(kerrors.KindVrfVerifyFailed, err)
	}
	if vrfY != r.VrfY {
		return kerrors.New(kerrors.KindVrfOutputMismatch, "partrec: vrf output mismatch")
	}

	sigMsg := primitives.H(primitives.TagPartRec, alpha.Bytes(), r.DatasetRoot.Bytes(), vrfY[:])
	if err := edsig.Verify(r.Ed25519Pk[:], sigMsg.Bytes(), r.Ed25519Sig[:]); err != nil {
		return err
	}

	seed := primitives.H(primitives.TagSeed, yEdgePrev.Bytes(), r.Ed25519Pk[:], vrfY[:])

	wantIndices := ChallengeIndices(seed)
	if len(wantIndices) != primitives.ChallengesQ {
		return kerrors.New(kerrors.KindChallengeCountMismatch, "partrec: derived %d indices, want %d", len(wantIndices), primitives.ChallengesQ)
	}
	for i, c := range r.Challenges {
		if c.Index != wantIndices[i] {
			return kerrors.New(kerrors.KindChallengeIndicesMismatch, "partrec: opening %d has index %d, want %d", i, c.Index, wantIndices[i])
		}
	}

	for i, c := range r.Challenges {
		got := derive(seed.Bytes(), c.Index)
		if !got.Equal(primitives.Hash(c.Label)) {
			return kerrors.New(kerrors.KindLabelMismatch, "partrec: opening %d label mismatch at index %d", i, c.Index)
		}
		if !primitives.MerkleVerifyLeaf(r.DatasetRoot, c.Label[:], c.Path) {
			return kerrors.New(kerrors.KindMerkleMismatch, "partrec: opening %d merkle path invalid at index %d", i, c.Index)
		}
	}

	return nil
}
