package participation

import (
	"bytes"
	"sort"

	"github.com/aminnizamdev/obex/primitives"
)

// BuildPartRoot computes part_root_s over the ed25519 public keys of
// every PartRec that verified for slot s (spec §4.2 "Slot
// participation root"): sort distinct keys byte-lex ascending, hash
// each under the participation leaf tag, and Merkle-root the result.
// An empty key set yields the empty-merkle tag.
func BuildPartRoot(keys [][32]byte) primitives.Hash {
	distinct := dedupSortKeys(keys)
	leaves := make([]primitives.Hash, len(distinct))
	for i, pk := range distinct {
		leaves[i] = primitives.H(primitives.TagPartLeaf, pk[:])
	}
	return primitives.MerkleRoot(leaves)
}

func dedupSortKeys(keys [][32]byte) [][32]byte {
	sorted := make([][32]byte, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	out := sorted[:0:0]
	for i, k := range sorted {
		if i == 0 || !bytes.Equal(k[:], sorted[i-1][:]) {
			out = append(out, k)
		}
	}
	return out
}
