package participation

import (
	"github.com/aminnizamdev/obex/internal/codec"
	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/primitives"
)

// sizeHint is a representative encoded size, used only to pre-size the
// writer's backing buffer.
const sizeHint = 32 + 64 + 80 + 32 + 64 + 32 + primitives.ChallengesQ*(8+primitives.LabelBytes+primitives.MerkleDepth*32)

// Encode produces the canonical wire bytes of r. Every field is
// fixed-width; a ChallengeOpen's sibling count is always exactly
// MerkleDepth, so no length prefix is needed anywhere in this codec
// (spec §4.2 step 2: "path siblings whose count equals the fixed tree
// depth").
func Encode(r *PartRec) []byte {
	w := codec.NewWriter(sizeHint)
	w.Raw(r.VrfPk[:])
	w.Raw(r.VrfY[:])
	w.Raw(r.VrfPi[:])
	w.Raw(r.Ed25519Pk[:])
	w.Raw(r.Ed25519Sig[:])
	w.Hash(r.DatasetRoot)
	for _, c := range r.Challenges {
		w.U64(c.Index)
		w.Raw(c.Label[:])
		for _, s := range c.Path.Siblings {
			w.Hash(s)
		}
	}
	return w.Bytes()
}

// Decode strictly parses b into a PartRec. It rejects input exceeding
// MaxPartRecSize before doing any other work (spec §4.2 step 1, the
// pre-decode size gate), rejects any malformed fixed-width field, and
// rejects trailing bytes after the last challenge opening.
func Decode(b []byte) (*PartRec, error) {
	if len(b) > primitives.MaxPartRecSize {
		return nil, kerrors.New(kerrors.KindOversize, "partrec: %d bytes exceeds max %d", len(b), primitives.MaxPartRecSize)
	}

	r := codec.NewReader(b)
	var rec PartRec

	if v, err := r.Raw(32); err != nil {
		return nil, err
	} else {
		copy(rec.VrfPk[:], v)
	}
	if v, err := r.Raw(64); err != nil {
		return nil, err
	} else {
		copy(rec.VrfY[:], v)
	}
	if v, err := r.Raw(80); err != nil {
		return nil, err
	} else {
		copy(rec.VrfPi[:], v)
	}
	if v, err := r.Raw(32); err != nil {
		return nil, err
	} else {
		copy(rec.Ed25519Pk[:], v)
	}
	if v, err := r.Raw(64); err != nil {
		return nil, err
	} else {
		copy(rec.Ed25519Sig[:], v)
	}
	root, err := r.Hash()
	if err != nil {
		return nil, err
	}
	rec.DatasetRoot = root

	for i := 0; i < primitives.ChallengesQ; i++ {
		idx, err := r.U64()
		if err != nil {
			return nil, err
		}
		labelB, err := r.Raw(primitives.LabelBytes)
		if err != nil {
			return nil, err
		}
		var label [primitives.LabelBytes]byte
		copy(label[:], labelB)

		sibs := make([]primitives.Hash, primitives.MerkleDepth)
		for d := 0; d < primitives.MerkleDepth; d++ {
			sib, err := r.Hash()
			if err != nil {
				return nil, err
			}
			sibs[d] = sib
		}

		rec.Challenges[i] = ChallengeOpen{
			Index: idx,
			Label: label,
			Path:  primitives.MerklePath{Index: idx, Siblings: sibs},
		}
	}

	if !r.Done() {
		return nil, kerrors.New(kerrors.KindTrailingBytes, "partrec: %d trailing bytes", r.Remaining())
	}
	return &rec, nil
}
