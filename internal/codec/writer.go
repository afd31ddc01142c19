// Package codec implements the kernel's fixed-width, little-endian wire
// format: every integer field is fixed-width LE, every variable-length
// field is length-prefixed with an LE8 count, and every strict decoder
// rejects trailing bytes (spec §6 "Wire codecs").
package codec

import (
	"encoding/binary"

	"github.com/aminnizamdev/obex/primitives"
)

// Writer accumulates canonical bytes for a consensus object. It never
// fails: every method it exposes operates on already-validated,
// fixed-size Go values, so there is nothing for it to reject.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with a pre-sized backing buffer.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated canonical bytes.
func (w *Writer) Bytes() []byte { return w.buf }

// Raw appends b verbatim, with no length prefix. Used for fixed-width
// fields whose length is implied by the field's type.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// Hash appends a 32-byte digest verbatim.
func (w *Writer) Hash(h primitives.Hash) { w.buf = append(w.buf, h[:]...) }

// U64 appends v as 8 bytes, little-endian.
func (w *Writer) U64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// U32 appends v as 4 bytes, little-endian.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// U8 appends a single byte.
func (w *Writer) U8(v uint8) { w.buf = append(w.buf, v) }

// LenPrefixed appends LE8(len(b)) followed by b.
func (w *Writer) LenPrefixed(b []byte) {
	w.U64(uint64(len(b)))
	w.buf = append(w.buf, b...)
}
