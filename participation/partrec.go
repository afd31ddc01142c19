// Package participation implements the α-I Participation Engine: the
// canonical PartRec codec, the per-submission verification pipeline
// (VRF check, seed derivation, challenge-index derivation, memory-hard
// label recomputation, Merkle-path validation), and the slot-wide
// participation root over admitted keys.
package participation

import (
	"github.com/aminnizamdev/obex/primitives"
)

// ChallengeOpen is one opened label in a PartRec: the dataset index,
// the claimed label at that index, and its inclusion path against the
// declared dataset root.
type ChallengeOpen struct {
	Index uint64
	Label [primitives.LabelBytes]byte
	Path  primitives.MerklePath
}

// PartRec is a single participant's slot submission (spec §3
// "PartRec"). Field order here is the canonical wire order; see
// codec.go for the exact encoding.
type PartRec struct {
	VrfPk       [32]byte
	VrfY        [64]byte
	VrfPi       [80]byte
	Ed25519Pk   [32]byte
	Ed25519Sig  [64]byte
	DatasetRoot primitives.Hash
	Challenges  [primitives.ChallengesQ]ChallengeOpen
}
