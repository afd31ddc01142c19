package admission

import (
	"bytes"
	"sort"

	"github.com/aminnizamdev/obex/crypto/edsig"
	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/primitives"
)

// TicketRecord is produced for every admitted transaction (spec §3
// "TicketRecord").
type TicketRecord struct {
	TxID   primitives.Hash
	Sender [32]byte
	Nonce  uint64
	Commit primitives.Hash
	Sig    [64]byte
}

// State is the admission engine's explicit per-sender last-nonce map
// (spec §5, §9: re-architected as an explicit state object rather than
// an ambient singleton). The zero value is ready to use.
type State struct {
	lastNonce map[[32]byte]uint64
}

// NewState returns an empty admission State.
func NewState() *State {
	return &State{lastNonce: make(map[[32]byte]uint64)}
}

// AdmitTx runs the single-transaction admission checks (spec §4.4
// "Admission (single)") and, on acceptance, advances s's last-nonce
// record for tx.Sender and returns the resulting TicketRecord.
func (s *State) AdmitTx(tx *TxBody, sig [64]byte) (*TicketRecord, error) {
	if tx.AmountUobx < primitives.MinTxUobx {
		return nil, kerrors.New(kerrors.KindAmountBelowMin, "admission: amount %d below minimum %d", tx.AmountUobx, primitives.MinTxUobx)
	}
	if want := FeeIntUobx(tx.AmountUobx); tx.FeeUobx != want {
		return nil, kerrors.New(kerrors.KindFeeMismatch, "admission: fee %d != expected %d", tx.FeeUobx, want)
	}

	txid := TxID(tx)
	commit := Commit(txid, tx.Bind1, tx.Bind2)
	sigMsg := SigMessage(commit)
	if err := edsig.Verify(tx.Sender[:], sigMsg.Bytes(), sig[:]); err != nil {
		return nil, err
	}

	if last, ok := s.lastNonce[tx.Sender]; ok && tx.Nonce <= last {
		return nil, kerrors.New(kerrors.KindNonceNotIncreasing, "admission: nonce %d does not exceed last accepted %d", tx.Nonce, last)
	}

	if s.lastNonce == nil {
		s.lastNonce = make(map[[32]byte]uint64)
	}
	s.lastNonce[tx.Sender] = tx.Nonce

	rec := &TicketRecord{
		TxID:   txid,
		Sender: tx.Sender,
		Nonce:  tx.Nonce,
		Commit: commit,
		Sig:    sig,
	}
	return rec, nil
}

// LastNonce returns the last accepted nonce for sender and whether any
// transaction from that sender has been accepted yet.
func (s *State) LastNonce(sender [32]byte) (uint64, bool) {
	n, ok := s.lastNonce[sender]
	return n, ok
}

// encTicket is the fixed-width encoding of a TicketRecord used only
// as the leaf payload for BuildTicketRoot (spec §4.4: "H("obex.ticket.leaf",[enc_ticket(rec)])").
func encTicket(rec *TicketRecord) []byte {
	out := make([]byte, 0, 32+32+8+32+64)
	out = append(out, rec.TxID.Bytes()...)
	out = append(out, rec.Sender[:]...)
	out = append(out, primitives.LE(rec.Nonce, 8)...)
	out = append(out, rec.Commit.Bytes()...)
	out = append(out, rec.Sig[:]...)
	return out
}

// BuildTicketRoot computes ticket_root_s (spec §4.4 "Ticket root for
// slot s"): sort accepted tickets by txid ascending, hash each leaf
// under the ticket leaf tag, and Merkle-root the result. An empty set
// yields the empty-merkle tag.
func BuildTicketRoot(tickets []*TicketRecord) primitives.Hash {
	sorted := make([]*TicketRecord, len(tickets))
	copy(sorted, tickets)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].TxID.Bytes(), sorted[j].TxID.Bytes()) < 0
	})

	leaves := make([]primitives.Hash, len(sorted))
	for i, rec := range sorted {
		leaves[i] = primitives.H(primitives.TagTicketLeaf, encTicket(rec))
	}
	return primitives.MerkleRoot(leaves)
}
