// Package admission implements the α-III Admission Engine: the
// canonical transaction body codec, the integer-exact fee rule,
// ticket construction, per-slot ticket Merkle root, and the
// strictly-increasing per-sender nonce applier.
package admission

import (
	"bytes"
	"sort"

	"github.com/aminnizamdev/obex/primitives"
)

// AccessList is a transaction's read/write account-access declaration.
// Sets are sorted and de-duplicated at encoding time, never by the
// caller (spec §3 "TxBody v1").
type AccessList struct {
	Read  [][32]byte
	Write [][32]byte
}

// TxBody is a transaction body v1 (spec §3).
type TxBody struct {
	Sender     [32]byte
	Recipient  [32]byte
	Nonce      uint64
	AmountUobx uint64
	FeeUobx    uint64
	Bind1      primitives.Hash
	Bind2      primitives.Hash
	Access     AccessList
	Memo       []byte
}

// FeeIntUobx computes the integer-exact fee rule (spec §4.4): a flat
// fee below the switch amount, then a flat 0.1% rate above it. The
// rule is total over uint64 and never overflows — division only ever
// shrinks the value.
func FeeIntUobx(amount uint64) uint64 {
	if amount < primitives.FlatSwitchUobx {
		return primitives.FlatFeeUobx
	}
	return amount / 1000
}

func sortDedupAccounts(accounts [][32]byte) [][32]byte {
	sorted := make([][32]byte, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})
	out := sorted[:0:0]
	for i, a := range sorted {
		if i == 0 || !bytes.Equal(a[:], sorted[i-1][:]) {
			out = append(out, a)
		}
	}
	return out
}

// accessEnc computes access_enc (spec §4.4):
//
//	H("obex.tx.access", [ LE(|R|,8) ‖ R_concat , LE(|W|,8) ‖ W_concat ])
//
// Each of the two parts passed to H is itself a concatenation of a
// length prefix and the sorted, de-duplicated account set; H frames
// each part independently, so the length prefix must be glued onto the
// set bytes before the call, not passed as its own part.
func accessEnc(access AccessList) primitives.Hash {
	r := sortDedupAccounts(access.Read)
	w := sortDedupAccounts(access.Write)

	rPart := primitives.LE(uint64(len(r)), 8)
	for _, a := range r {
		rPart = append(rPart, a[:]...)
	}
	wPart := primitives.LE(uint64(len(w)), 8)
	for _, a := range w {
		wPart = append(wPart, a[:]...)
	}

	return primitives.H(primitives.TagTxAccess, rPart, wPart)
}

// CanonicalBytes encodes tx in the frozen canonical order (spec §4.4):
//
//	sender || recipient || LE(nonce,8) || LE(amount,8) || LE(fee,8) ||
//	bind_1 || bind_2 || access_enc || LE(|memo|,8) || memo
func CanonicalBytes(tx *TxBody) []byte {
	enc := accessEnc(tx.Access)

	out := make([]byte, 0, 32+32+8+8+8+32+32+32+8+len(tx.Memo))
	out = append(out, tx.Sender[:]...)
	out = append(out, tx.Recipient[:]...)
	out = append(out, primitives.LE(tx.Nonce, 8)...)
	out = append(out, primitives.LE(tx.AmountUobx, 8)...)
	out = append(out, primitives.LE(tx.FeeUobx, 8)...)
	out = append(out, tx.Bind1.Bytes()...)
	out = append(out, tx.Bind2.Bytes()...)
	out = append(out, enc.Bytes()...)
	out = append(out, primitives.LE(uint64(len(tx.Memo)), 8)...)
	out = append(out, tx.Memo...)
	return out
}

// TxID computes txid = H("obex.tx.id",[canonical_tx_bytes]).
func TxID(tx *TxBody) primitives.Hash {
	return primitives.H(primitives.TagTxID, CanonicalBytes(tx))
}

// Commit computes commit = H("obex.tx.commit",[txid, bind_1, bind_2]).
func Commit(txid primitives.Hash, bind1, bind2 primitives.Hash) primitives.Hash {
	return primitives.H(primitives.TagTxCommit, txid.Bytes(), bind1.Bytes(), bind2.Bytes())
}

// SigMessage computes the message an Ed25519 signature over tx must
// cover: H("obex.tx.sig",[commit]).
func SigMessage(commit primitives.Hash) primitives.Hash {
	return primitives.H(primitives.TagTxSig, commit.Bytes())
}
