package primitives

// MerkleLeaf hashes a single leaf payload under the leaf domain tag.
func MerkleLeaf(payload []byte) Hash {
	return H(TagMerkleLeaf, payload)
}

// MerkleNode hashes a pair of child digests under the node domain tag.
func MerkleNode(left, right Hash) Hash {
	return H(TagMerkleNode, left.Bytes(), right.Bytes())
}

// MerkleEmptyRoot is the canonical root of an empty leaf list.
func MerkleEmptyRoot() Hash {
	return H(TagMerkleEmpty)
}

// MerkleRoot builds a binary Merkle tree over leaves (already hashed
// by the caller, via MerkleLeaf or an engine-specific leaf tag) and
// returns its root. An odd level is
// completed by duplicating its last element before pairing (spec
// §4.1). An empty leaf set yields MerkleEmptyRoot.
func MerkleRoot(leaves []Hash) Hash {
	if len(leaves) == 0 {
		return MerkleEmptyRoot()
	}
	level := make([]Hash, len(leaves))
	copy(level, leaves)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]Hash, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next[i/2] = MerkleNode(level[i], level[i+1])
		}
		level = next
	}
	return level[0]
}

// MerklePath is a Merkle inclusion path: the leaf's position (only its
// low bits, one per level, are consumed) and the sibling digest at each
// level from the leaf up to the root.
type MerklePath struct {
	Index    uint64
	Siblings []Hash
}

// MerkleVerifyLeaf recomputes the leaf hash of payload and folds it
// with path's siblings according to the bits of path.Index (bit 0 is
// consumed first, at the leaf level: 0 means payload's hash is the left
// child at that level, 1 means it is the right child), comparing the
// result to root in constant time.
func MerkleVerifyLeaf(root Hash, payload []byte, path MerklePath) bool {
	cur := MerkleLeaf(payload)
	idx := path.Index
	for _, sib := range path.Siblings {
		if idx&1 == 0 {
			cur = MerkleNode(cur, sib)
		} else {
			cur = MerkleNode(sib, cur)
		}
		idx >>= 1
	}
	return cur.Equal(root)
}

// BuildMerklePaths builds every inclusion path for a full leaf set of
// the same tree MerkleRoot builds (each odd level completed by
// duplicating its last element), returning the root alongside a path
// for each original leaf index. It is a prover-side helper: production
// verification never materializes a full dataset's worth of leaves
// (spec §4.2, §9 "Large Merkle dataset without materialisation"), but
// tests and fixture generators need a concrete tree to derive fixtures
// from, at a scale far smaller than the protocol's real N_LABELS.
func BuildMerklePaths(leaves []Hash) (root Hash, paths []MerklePath) {
	n := len(leaves)
	if n == 0 {
		return MerkleEmptyRoot(), nil
	}
	level := make([]Hash, n)
	copy(level, leaves)
	// levels[d] holds the nodes of level d, including any duplicated last node.
	var levels [][]Hash
	levels = append(levels, level)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
			levels[len(levels)-1] = level
		}
		next := make([]Hash, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next[i/2] = MerkleNode(level[i], level[i+1])
		}
		levels = append(levels, next)
		level = next
	}
	root = levels[len(levels)-1][0]

	paths = make([]MerklePath, n)
	for leafIdx := 0; leafIdx < n; leafIdx++ {
		idx := leafIdx
		var sibs []Hash
		for d := 0; d < len(levels)-1; d++ {
			lvl := levels[d]
			var sibIdx int
			if idx%2 == 0 {
				sibIdx = idx + 1
			} else {
				sibIdx = idx - 1
			}
			sibs = append(sibs, lvl[sibIdx])
			idx /= 2
		}
		paths[leafIdx] = MerklePath{Index: uint64(leafIdx), Siblings: sibs}
	}
	return root, paths
}
