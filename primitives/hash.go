// Package primitives implements the consensus-critical byte encodings,
// domain-tagged hashing, and binary Merkle construction shared by every
// OBEX Alpha engine. Every function here is a pure function of its
// inputs; nothing in this package touches a clock, a file, or the
// network.
package primitives

import (
	"crypto/subtle"
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Hash is a 32-byte digest. The zero value is not a valid digest of any
// input; it only ever appears as a struct zero value before assignment.
type Hash [32]byte

// Bytes returns the digest's underlying bytes.
func (h Hash) Bytes() []byte { return h[:] }

// Copy returns an independent copy of h. Hash is a value type, so this
// is mostly useful for documenting intent at call sites that hand a
// hash off to a caller who must not be able to mutate the original.
func (h Hash) Copy() Hash { return h }

// Equal reports whether h and o are the same digest, in constant time.
// Every 32-byte digest comparison on a consensus path must go through
// this method rather than `==` or bytes.Equal.
func (h Hash) Equal(o Hash) bool {
	return ConstantTimeEqual(h[:], o[:])
}

// IsZero reports whether h is the all-zero digest (the genesis parent
// sentinel, nothing else).
func (h Hash) IsZero() bool {
	var z Hash
	return h.Equal(z)
}

func (h Hash) String() string {
	const hextable = "0123456789abcdef"
	out := make([]byte, 64)
	for i, b := range h {
		out[i*2] = hextable[b>>4]
		out[i*2+1] = hextable[b&0x0f]
	}
	return string(out)
}

// ConstantTimeEqual reports whether a and b hold the same bytes, without
// branching on their contents. Used for every digest comparison on a
// verification path (spec §4.1: "All 32-byte digest comparisons in
// consensus paths must be constant-time").
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// LE encodes x as an unsigned little-endian integer in w bytes. w must
// be 4 or 8; any other width panics, since the protocol never frames
// anything else.
func LE(x uint64, w int) []byte {
	switch w {
	case 4:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(x))
		return b
	case 8:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, x)
		return b
	default:
		panic("primitives: LE: unsupported width")
	}
}

// U64FromLE reads the first 8 bytes of b as an unsigned little-endian
// integer. It panics if b is shorter than 8 bytes; callers on a
// consensus path must size-check before calling.
func U64FromLE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b[:8])
}

// H computes the domain-tagged hash of parts under tag:
//
//	H(tag, parts) = SHA3-256( UTF8(tag) || Σ_i ( LE(|parts[i]|, 8) || parts[i] ) )
//
// This is the sole hash construction used anywhere in the kernel. tag
// must be one of the frozen tags in the Tag catalogue (see tags.go);
// passing an ad-hoc string is a consensus bug waiting to happen, but
// this function does not enforce that — callers are expected to use the
// Tag constants.
func H(tag string, parts ...[]byte) Hash {
	d := sha3.New256()
	d.Write([]byte(tag))
	var lenBuf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(p)))
		d.Write(lenBuf[:])
		d.Write(p)
	}
	var out Hash
	d.Sum(out[:0])
	return out
}
