// Package header implements the α-II Header Engine: the canonical
// Header codec, its identity hash, and the equality-based forkless
// validation protocol that binds a header to its parent, the beacon,
// and three externally supplied per-slot roots.
package header

import (
	"github.com/aminnizamdev/obex/primitives"
)

// Header is the frozen field order of spec §3: every field here
// appears in exactly this order in both the canonical encoding and the
// identity hash.
type Header struct {
	ParentID    primitives.Hash
	Slot        uint64
	ObexVersion uint32
	SeedCommit  primitives.Hash
	VdfYCore    primitives.Hash
	VdfYEdge    primitives.Hash
	VdfPi       []byte
	VdfEll      []byte
	TicketRoot  primitives.Hash
	PartRoot    primitives.Hash
	TxRootPrev  primitives.Hash
}

// ID computes obex_header_id(h), the frozen identity hash (spec
// §4.3):
//
//	H("obex.header.id", [parent_id, LE(slot,8), LE(version,4),
//	  seed_commit, vdf_y_core, vdf_y_edge,
//	  LE(|vdf_pi|,8), vdf_pi, LE(|vdf_ell|,8), vdf_ell,
//	  ticket_root, part_root, txroot_prev])
func (h *Header) ID() primitives.Hash {
	return primitives.H(primitives.TagHeaderID,
		h.ParentID.Bytes(),
		primitives.LE(h.Slot, 8),
		primitives.LE(uint64(h.ObexVersion), 4),
		h.SeedCommit.Bytes(),
		h.VdfYCore.Bytes(),
		h.VdfYEdge.Bytes(),
		primitives.LE(uint64(len(h.VdfPi)), 8),
		h.VdfPi,
		primitives.LE(uint64(len(h.VdfEll)), 8),
		h.VdfEll,
		h.TicketRoot.Bytes(),
		h.PartRoot.Bytes(),
		h.TxRootPrev.Bytes(),
	)
}

// Genesis builds the genesis header: parent_id = GENESIS_PARENT_ID,
// slot = GENESIS_SLOT, ticket and participation roots at the
// empty-merkle root, VDF outputs zero and VDF proofs empty,
// txroot_prev = TXROOT_GENESIS, and seed_commit derived from parent_id
// and slot exactly as Validate expects.
func Genesis() *Header {
	empty := primitives.MerkleEmptyRoot()
	h := &Header{
		ParentID:    primitives.GenesisParentID,
		Slot:        primitives.GenesisSlot,
		ObexVersion: primitives.ObexAlphaIIVersion,
		VdfYCore:    primitives.Hash{},
		VdfYEdge:    primitives.Hash{},
		VdfPi:       nil,
		VdfEll:      nil,
		TicketRoot:  empty,
		PartRoot:    empty,
		TxRootPrev:  primitives.TxRootGenesis,
	}
	h.SeedCommit = primitives.H(primitives.TagSlotSeed, h.ParentID.Bytes(), primitives.LE(h.Slot, 8))
	return h
}
