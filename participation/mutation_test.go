package participation_test

import (
	"testing"

	"github.com/aminnizamdev/obex/participation"
	"github.com/aminnizamdev/obex/primitives"
	"github.com/stretchr/testify/require"
)

// TestVerifyRejectsSingleBitMutationsOfCanonicalBytes builds one valid
// fixture, encodes it to canonical wire bytes, and checks that
// flipping a single bit at a representative offset inside every field
// of the encoding — rather than in the in-memory struct, which is
// never exercised by Encode/Decode — causes Decode or Verify to
// reject the record. Exhaustively flipping all ~700,000 bit positions
// of the full encoding would run the verification pipeline, VRF check
// included, that many times over; sampling the first and last byte of
// every fixed field plus the boundary bytes of a handful of challenge
// openings exercises every field type the codec has without making
// the test impractically slow.
func TestVerifyRejectsSingleBitMutationsOfCanonicalBytes(t *testing.T) {
	parentID := primitives.H("test.parent.mutation")
	yEdgePrev := primitives.H("test.yedge.mutation")
	slot := uint64(11)

	rec, vrfv := buildFixture(parentID, slot, yEdgePrev)

	good := participation.Encode(rec)
	require.NoError(t, participation.Verify(rec, parentID, slot, yEdgePrev, vrfv, testDeriver))

	const (
		offVrfPk       = 0
		offVrfY        = offVrfPk + 32
		offVrfPi       = offVrfY + 64
		offEd25519Pk   = offVrfPi + 80
		offEd25519Sig  = offEd25519Pk + 32
		offDatasetRoot = offEd25519Sig + 64
		offChallenges  = offDatasetRoot + 32
		challengeSize  = 8 + primitives.LabelBytes + primitives.MerkleDepth*32
	)

	offsets := []int{
		offVrfPk, offVrfPk + 31,
		offVrfY, offVrfY + 63,
		offVrfPi, offVrfPi + 79,
		offEd25519Pk, offEd25519Pk + 31,
		offEd25519Sig, offEd25519Sig + 63,
		offDatasetRoot, offDatasetRoot + 31,
		len(good) - 1,
	}

	sampleChallenges := []int{0, primitives.ChallengesQ / 2, primitives.ChallengesQ - 1}
	for _, ci := range sampleChallenges {
		base := offChallenges + ci*challengeSize
		offsets = append(offsets,
			base,                         // index field
			base+8,                       // label field
			base+8+primitives.LabelBytes, // first sibling
			base+challengeSize-1,         // last sibling, last byte
		)
	}

	for _, byteIdx := range offsets {
		for _, bit := range []int{0, 7} {
			mutated := append([]byte(nil), good...)
			mutated[byteIdx] ^= 1 << bit

			decoded, err := participation.Decode(mutated)
			if err != nil {
				continue
			}
			err = participation.Verify(decoded, parentID, slot, yEdgePrev, vrfv, testDeriver)
			require.Error(t, err, "mutation at byte %d bit %d decoded and verified successfully", byteIdx, bit)
		}
	}
}
