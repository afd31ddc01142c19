package header

import (
	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/primitives"
)

// BeaconVerifier is the external VDF oracle the kernel consumes (spec
// §6): it accepts a slot's full beacon tuple and reports whether the
// proof is valid for the claimed outputs. The kernel never implements
// the VDF's internals; this interface is the whole of its contract
// with the beacon.
type BeaconVerifier interface {
	VerifyBeacon(seedCommit, yCore, yEdge primitives.Hash, pi, ell []byte) error
}

// TicketRootProvider supplies the admission engine's per-slot ticket
// root.
type TicketRootProvider interface {
	ComputeTicketRoot(slot uint64) primitives.Hash
}

// PartRootProvider supplies the participation engine's per-slot
// participation root.
type PartRootProvider interface {
	ComputePartRoot(slot uint64) primitives.Hash
}

// TxRootProvider supplies the tokenomics/admission engines' per-slot
// transaction root, queried at slot-1 by the header at slot.
type TxRootProvider interface {
	ComputeTxRoot(slot uint64) primitives.Hash
}

// Validate checks h against its parent and the slot's externally
// supplied collaborators (spec §4.3, steps 1–5). Each equality fails
// with a distinct error kind so callers can tell exactly which
// binding broke.
func Validate(h, parent *Header, beacon BeaconVerifier, tickets TicketRootProvider, parts PartRootProvider, txs TxRootProvider) error {
	if !h.ParentID.Equal(parent.ID()) {
		return kerrors.New(kerrors.KindParentMismatch, "header: parent_id does not match parent's identity")
	}
	if h.Slot != parent.Slot+1 {
		return kerrors.New(kerrors.KindSlotMismatch, "header: slot %d is not parent.slot+1 (%d)", h.Slot, parent.Slot+1)
	}
	if h.ObexVersion != primitives.ObexAlphaIIVersion {
		return kerrors.New(kerrors.KindVersionMismatch, "header: version %d != %d", h.ObexVersion, primitives.ObexAlphaIIVersion)
	}

	wantSeedCommit := primitives.H(primitives.TagSlotSeed, h.ParentID.Bytes(), primitives.LE(h.Slot, 8))
	if !h.SeedCommit.Equal(wantSeedCommit) {
		return kerrors.New(kerrors.KindSeedCommitMismatch, "header: seed_commit mismatch")
	}

	if len(h.VdfPi) > primitives.MaxPiLen {
		return kerrors.New(kerrors.KindOversize, "header: vdf_pi %d bytes exceeds max %d", len(h.VdfPi), primitives.MaxPiLen)
	}
	if len(h.VdfEll) > primitives.MaxEllLen {
		return kerrors.New(kerrors.KindOversize, "header: vdf_ell %d bytes exceeds max %d", len(h.VdfEll), primitives.MaxEllLen)
	}

	if err := beacon.VerifyBeacon(h.SeedCommit, h.VdfYCore, h.VdfYEdge, h.VdfPi, h.VdfEll); err != nil {
		return err
	}

	if want := tickets.ComputeTicketRoot(h.Slot); !h.TicketRoot.Equal(want) {
		return kerrors.New(kerrors.KindTicketRootMismatch, "header: ticket_root mismatch at slot %d", h.Slot)
	}
	if want := parts.ComputePartRoot(h.Slot); !h.PartRoot.Equal(want) {
		return kerrors.New(kerrors.KindPartRootMismatch, "header: part_root mismatch at slot %d", h.Slot)
	}
	if want := txs.ComputeTxRoot(h.Slot - 1); !h.TxRootPrev.Equal(want) {
		return kerrors.New(kerrors.KindTxRootMismatch, "header: txroot_prev mismatch at slot %d", h.Slot-1)
	}

	return nil
}
