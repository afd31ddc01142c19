package codec

import (
	"encoding/binary"

	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/primitives"
)

// Reader is a strict, forward-only cursor over canonical bytes. Every
// read either succeeds or returns a KindTruncatedField error; callers
// are responsible for calling Done at the end of a decode and surfacing
// KindTrailingBytes if it returns false.
type Reader struct {
	buf []byte
	off int
}

// NewReader wraps b for strict decoding.
func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Done reports whether every byte has been consumed.
func (r *Reader) Done() bool { return r.Remaining() == 0 }

// Raw reads exactly n bytes and advances the cursor.
func (r *Reader) Raw(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, kerrors.New(kerrors.KindTruncatedField, "need %d bytes, have %d", n, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Hash reads a 32-byte digest.
func (r *Reader) Hash() (primitives.Hash, error) {
	b, err := r.Raw(32)
	if err != nil {
		return primitives.Hash{}, err
	}
	var h primitives.Hash
	copy(h[:], b)
	return h, nil
}

// U64 reads 8 little-endian bytes.
func (r *Reader) U64() (uint64, error) {
	b, err := r.Raw(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// U32 reads 4 little-endian bytes.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Raw(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U8 reads a single byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.Raw(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// LenPrefixed reads an LE8 length prefix followed by that many bytes.
// maxLen bounds the length to guard against a corrupt/adversarial
// prefix driving an oversized allocation; a length exceeding it is a
// KindInvalidLength error.
func (r *Reader) LenPrefixed(maxLen uint64) ([]byte, error) {
	n, err := r.U64()
	if err != nil {
		return nil, err
	}
	if n > maxLen {
		return nil, kerrors.New(kerrors.KindInvalidLength, "length %d exceeds max %d", n, maxLen)
	}
	return r.Raw(int(n))
}
