package participation_test

import (
	"crypto/ed25519"

	"github.com/aminnizamdev/obex/crypto/vrf"
	"github.com/aminnizamdev/obex/participation"
	"github.com/aminnizamdev/obex/primitives"
)

// testDeriver stands in for DefaultLabelDeriver with a plain
// domain-tagged hash, which has no memory cost; it is used for both
// building and verifying a fixture PartRec so the two sides always
// agree.
func testDeriver(seed []byte, index uint64) primitives.Hash {
	salt := primitives.LE(index, 8)
	sum := primitives.H("test.label", seed, salt)
	return sum
}

// buildFixture constructs a fully self-consistent PartRec for
// (parentID, slot, yEdgePrev), using testDeriver in place of the real
// memory-hard function so tests run fast. It returns the record and
// the VrfVerifier that must be used to check it, since the VRF keypair
// is generated fresh per fixture.
func buildFixture(parentID primitives.Hash, slot uint64, yEdgePrev primitives.Hash) (*participation.PartRec, participation.VrfVerifier) {
	return buildFixtureWithDeriver(parentID, slot, yEdgePrev, testDeriver)
}

// buildFixtureWithDeriver is buildFixture generalized over the label
// deriver, so callers that want the real memory-hard function in the
// loop (at reduced cost) can get a fixture built consistently with it.
func buildFixtureWithDeriver(parentID primitives.Hash, slot uint64, yEdgePrev primitives.Hash, deriver participation.LabelDeriver) (*participation.PartRec, participation.VrfVerifier) {
	vrfPk, vrfSk := vrf.GenerateKey(nil)
	edPub, edPriv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}

	var vrfPkArr [32]byte
	copy(vrfPkArr[:], vrfPk.Bytes())

	alpha := primitives.H(primitives.TagAlpha, parentID.Bytes(), primitives.LE(slot, 8), yEdgePrev.Bytes(), vrfPkArr[:])
	vrfY, vrfPi := vrfSk.Prove(alpha.Bytes())

	var edPk [32]byte
	copy(edPk[:], edPub)

	datasetRoot, seed, openings := buildDataset(yEdgePrev, edPk, vrfY, deriver)

	sigMsg := primitives.H(primitives.TagPartRec, alpha.Bytes(), datasetRoot.Bytes(), vrfY)
	sig := ed25519.Sign(edPriv, sigMsg.Bytes())

	rec := &participation.PartRec{
		VrfPk:       vrfPkArr,
		Ed25519Pk:   edPk,
		DatasetRoot: datasetRoot,
		Challenges:  openings,
	}
	copy(rec.VrfY[:], vrfY)
	copy(rec.VrfPi[:], vrfPi)
	copy(rec.Ed25519Sig[:], sig)

	_ = seed
	return rec, participation.ECVRFVerifier{}
}

// buildDataset derives the challenge indices for seed and builds a
// full-depth (2^MerkleDepth-leaf) Merkle tree whose 96 opened leaves
// hold the labels derived with deriver and whose every other leaf is a
// fixed filler leaf. Only the subtrees containing an opened leaf are
// computed; every filler-only subtree at a given level has the same
// digest, so the tree is never materialized. Each opening's path has
// exactly MerkleDepth siblings and is keyed by the opening's dataset
// index, which is the shape the canonical codec encodes and decodes.
func buildDataset(yEdgePrev primitives.Hash, edPk [32]byte, vrfY []byte, deriver participation.LabelDeriver) (primitives.Hash, primitives.Hash, [primitives.ChallengesQ]participation.ChallengeOpen) {
	seed := primitives.H(primitives.TagSeed, yEdgePrev.Bytes(), edPk[:], vrfY)
	indices := participation.ChallengeIndices(seed)

	filler := make([]primitives.Hash, primitives.MerkleDepth+1)
	filler[0] = primitives.MerkleLeaf(nil)
	for d := 1; d <= primitives.MerkleDepth; d++ {
		filler[d] = primitives.MerkleNode(filler[d-1], filler[d-1])
	}
	nodeAt := func(level map[uint64]primitives.Hash, d int, pos uint64) primitives.Hash {
		if h, ok := level[pos]; ok {
			return h
		}
		return filler[d]
	}

	labels := make([][primitives.LabelBytes]byte, len(indices))
	levels := []map[uint64]primitives.Hash{make(map[uint64]primitives.Hash, len(indices))}
	for i, idx := range indices {
		label := deriver(seed.Bytes(), idx)
		copy(labels[i][:], label.Bytes())
		levels[0][idx] = primitives.MerkleLeaf(label.Bytes())
	}
	for d := 0; d < primitives.MerkleDepth; d++ {
		next := make(map[uint64]primitives.Hash, len(levels[d]))
		for pos := range levels[d] {
			parent := pos >> 1
			next[parent] = primitives.MerkleNode(nodeAt(levels[d], d, parent<<1), nodeAt(levels[d], d, parent<<1|1))
		}
		levels = append(levels, next)
	}
	root := levels[primitives.MerkleDepth][0]

	var openings [primitives.ChallengesQ]participation.ChallengeOpen
	for i, idx := range indices {
		sibs := make([]primitives.Hash, primitives.MerkleDepth)
		for d := range sibs {
			sibs[d] = nodeAt(levels[d], d, (idx>>uint(d))^1)
		}
		openings[i] = participation.ChallengeOpen{
			Index: idx,
			Label: labels[i],
			Path:  primitives.MerklePath{Index: idx, Siblings: sibs},
		}
	}

	return root, seed, openings
}
