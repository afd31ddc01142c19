package header

import (
	"github.com/aminnizamdev/obex/internal/codec"
	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/primitives"
)

// Encode produces the canonical wire bytes of h, in the same frozen
// field order as ID (spec §4.3). VdfPi and VdfEll are length-prefixed
// since, unlike a PartRec's challenge siblings, their lengths vary
// submission to submission.
func Encode(h *Header) []byte {
	w := codec.NewWriter(32 + 8 + 4 + 32*3 + 8 + len(h.VdfPi) + 8 + len(h.VdfEll) + 32*3)
	w.Hash(h.ParentID)
	w.U64(h.Slot)
	w.U32(h.ObexVersion)
	w.Hash(h.SeedCommit)
	w.Hash(h.VdfYCore)
	w.Hash(h.VdfYEdge)
	w.LenPrefixed(h.VdfPi)
	w.LenPrefixed(h.VdfEll)
	w.Hash(h.TicketRoot)
	w.Hash(h.PartRoot)
	w.Hash(h.TxRootPrev)
	return w.Bytes()
}

// Decode strictly parses b into a Header, enforcing the VDF proof
// size gates (spec §4.3 step 3) during decode and rejecting trailing
// bytes.
func Decode(b []byte) (*Header, error) {
	r := codec.NewReader(b)
	var h Header

	parentID, err := r.Hash()
	if err != nil {
		return nil, err
	}
	h.ParentID = parentID

	if h.Slot, err = r.U64(); err != nil {
		return nil, err
	}
	if h.ObexVersion, err = r.U32(); err != nil {
		return nil, err
	}
	if h.SeedCommit, err = r.Hash(); err != nil {
		return nil, err
	}
	if h.VdfYCore, err = r.Hash(); err != nil {
		return nil, err
	}
	if h.VdfYEdge, err = r.Hash(); err != nil {
		return nil, err
	}

	vdfPi, err := r.LenPrefixed(primitives.MaxPiLen)
	if err != nil {
		return nil, err
	}
	h.VdfPi = copyNilIfEmpty(vdfPi)

	vdfEll, err := r.LenPrefixed(primitives.MaxEllLen)
	if err != nil {
		return nil, err
	}
	h.VdfEll = copyNilIfEmpty(vdfEll)

	if h.TicketRoot, err = r.Hash(); err != nil {
		return nil, err
	}
	if h.PartRoot, err = r.Hash(); err != nil {
		return nil, err
	}
	if h.TxRootPrev, err = r.Hash(); err != nil {
		return nil, err
	}

	if !r.Done() {
		return nil, kerrors.New(kerrors.KindTrailingBytes, "header: %d trailing bytes", r.Remaining())
	}
	return &h, nil
}

// copyNilIfEmpty copies b into an independent slice, except that a
// zero-length b decodes to nil rather than an empty non-nil slice, so
// Decode(Encode(h)) is a true identity for a header whose VDF fields
// are nil (e.g. the genesis header).
func copyNilIfEmpty(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte{}, b...)
}
