// Package edsig implements strict Ed25519 signature verification:
// crypto/ed25519.Verify alone accepts a malleable signature whose S
// scalar has been reduced mod a multiple of the group order, so every
// consensus-path verification here also rejects a non-canonical S
// before delegating to the standard library.
package edsig

import (
	"crypto/ed25519"

	ed "filippo.io/edwards25519"

	kerrors "github.com/aminnizamdev/obex/internal/errors"
)

// PublicKeyLen and SignatureLen match crypto/ed25519's fixed sizes;
// named here so callers don't reach into the stdlib package just for
// a size constant.
const (
	PublicKeyLen = ed25519.PublicKeySize
	SignatureLen = ed25519.SignatureSize
)

// Verify reports whether sig is a canonical, valid Ed25519 signature
// over msg under pk. Any malformed input is a KindSignatureInvalid
// error rather than a bare false, so callers get a distinguishable
// failure kind for metrics and logs.
func Verify(pk, msg, sig []byte) error {
	if len(pk) != PublicKeyLen {
		return kerrors.New(kerrors.KindSignatureInvalid, "ed25519 pubkey: want %d bytes, got %d", PublicKeyLen, len(pk))
	}
	if len(sig) != SignatureLen {
		return kerrors.New(kerrors.KindSignatureInvalid, "ed25519 sig: want %d bytes, got %d", SignatureLen, len(sig))
	}
	if !isCanonicalS(sig[32:64]) {
		return kerrors.New(kerrors.KindSignatureInvalid, "ed25519 sig: non-canonical S scalar")
	}
	if !ed25519.Verify(pk, msg, sig) {
		return kerrors.New(kerrors.KindSignatureInvalid, "ed25519 sig: verification failed")
	}
	return nil
}

// isCanonicalS reports whether s is a valid reduced scalar
// representation, i.e. s < L (the prime order of the Edwards25519
// group). SetCanonicalBytes rejects any encoding that does not
// round-trip, which is exactly the non-canonical case crypto/ed25519's
// Verify otherwise lets through.
func isCanonicalS(s []byte) bool {
	if len(s) != 32 {
		return false
	}
	_, err := (&ed.Scalar{}).SetCanonicalBytes(s)
	return err == nil
}
