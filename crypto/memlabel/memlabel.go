// Package memlabel computes the memory-hard per-label function that
// backs the participation engine's proof-of-work: Argon2id keyed on a
// participant's seed and a label index, frozen at 3 passes and 512 MiB
// in production so the work factor cannot be tuned away by a
// participant running cheaper hardware.
package memlabel

import (
	"github.com/aminnizamdev/obex/primitives"
	"golang.org/x/crypto/argon2"
)

// Params controls the Argon2id cost. Production code must use
// DefaultParams; the Passes/MemKiB fields are mutable so tests and
// non-production deployments (kernel.Config.MemlabelMemKiB) can shrink
// the cost and still run the real algorithm.
type Params struct {
	Passes uint32
	MemKiB uint32
	Lanes  uint8
	KeyLen uint32
}

// DefaultParams are the frozen production parameters: 3 passes, 512
// MiB, single lane, 32-byte output (spec §6 "Participation Engine").
var DefaultParams = Params{Passes: 3, MemKiB: 512 * 1024, Lanes: 1, KeyLen: 32}

// Derive computes the label at index under seed using p.
func Derive(seed []byte, index uint64, p Params) primitives.Hash {
	salt := primitives.LE(index, 8)
	out := argon2.IDKey(seed, salt, p.Passes, p.MemKiB, p.Lanes, p.KeyLen)
	var h primitives.Hash
	copy(h[:], out)
	return h
}

// DeriveDefault computes the label at index under seed using
// DefaultParams. This is the function referenced everywhere outside
// of tests.
func DeriveDefault(seed []byte, index uint64) primitives.Hash {
	return Derive(seed, index, DefaultParams)
}
