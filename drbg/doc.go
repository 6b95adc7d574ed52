// Package drbg implements deterministic random bit generators: BCG
// (block-cipher counter mode), DCG (digest counter mode), HCG (HMAC,
// per NIST SP800-90A), PBR (passphrase based, buffered, grounded on
// CEX's PBR.cpp) and StreamCounterDRBG (a ChaCha20-backed counter
// stream for callers that want a DRBG without a block cipher
// dependency).
package drbg

// Generator is the shape every DRBG in this package satisfies.
type Generator interface {
	// Generate fills out with pseudorandom bytes.
	Generate(out []byte) error
	// Reseed mixes additional entropy into the generator's state.
	Reseed(seed []byte) error
	// Destroy zeroizes internal state. Idempotent.
	Destroy()
}
