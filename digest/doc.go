// Package digest implements message digests: Blake-256 and Blake-512,
// Keccak-256 and Keccak-512 (original Keccak padding, not FIPS-202
// SHA-3), SHA-256 and SHA-512, and Skein-256/512/1024.
//
// Every digest satisfies both the stdlib hash.Hash interface (so it drops
// straight into golang.org/x/crypto/pbkdf2 and crypto/hmac) and the
// spec-named Digest interface (BlockUpdate/Update/DoFinal/ComputeHash/
// Reset/Destroy) that the rest of the core calls through.
package digest

import "hash"

// Digest is the common incremental-hash contract every type in this
// package satisfies.
type Digest interface {
	hash.Hash

	// BlockUpdate absorbs length bytes of in starting at offset.
	BlockUpdate(in []byte, offset, length int) error

	// Update absorbs a single byte.
	Update(b byte)

	// DoFinal writes the digest into out at offset and implicitly
	// resets the digest to its initial chaining values.
	DoFinal(out []byte, offset int) (int, error)

	// ComputeHash is a one-shot convenience equal to
	// Reset + BlockUpdate(in) + DoFinal.
	ComputeHash(in []byte) []byte

	// Destroy zeroizes internal state. Idempotent.
	Destroy()
}
