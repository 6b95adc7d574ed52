// Package cex is the facade over the module's cryptographic primitive
// kernels: Rijndael/AES block ciphers, block-cipher modes, hash/MAC
// digests, key derivation, DRBGs and entropy providers. Each concern
// also has its own importable package; this file only wires digest
// enumerants to their constructors and names the two Rijndael block
// sizes, the way the teacher's
// CipherSuite enum selected an algorithm by name.
package cex

import (
	"hash"

	"github.com/cryptocex/cex/digest"
	"github.com/cryptocex/cex/errs"
)

// DigestKind selects a hash/MAC digest implementation by name.
type DigestKind uint8

const (
	// DigestBlake256 is the 256-bit BLAKE hash.
	DigestBlake256 DigestKind = iota
	// DigestBlake512 is the 512-bit BLAKE hash.
	DigestBlake512
	// DigestKeccak256 is the 256-bit-output Keccak sponge.
	DigestKeccak256
	// DigestKeccak512 is the 512-bit-output Keccak sponge.
	DigestKeccak512
	// DigestSHA256 is stdlib SHA-256.
	DigestSHA256
	// DigestSHA512 is stdlib SHA-512.
	DigestSHA512
	// DigestSkein256 is the 256-bit Skein hash.
	DigestSkein256
	// DigestSkein512 is the 512-bit Skein hash.
	DigestSkein512
	// DigestSkein1024 is the 1024-bit Skein hash.
	DigestSkein1024
)

// String returns the digest's lowercase name.
func (d DigestKind) String() string {
	switch d {
	case DigestBlake256:
		return "blake256"
	case DigestBlake512:
		return "blake512"
	case DigestKeccak256:
		return "keccak256"
	case DigestKeccak512:
		return "keccak512"
	case DigestSHA256:
		return "sha256"
	case DigestSHA512:
		return "sha512"
	case DigestSkein256:
		return "skein256"
	case DigestSkein512:
		return "skein512"
	case DigestSkein1024:
		return "skein1024"
	default:
		return "unknown"
	}
}

// NewHash returns the hash.Hash constructor for this digest kind.
func (d DigestKind) NewHash() (func() hash.Hash, error) {
	switch d {
	case DigestBlake256:
		return func() hash.Hash { return digest.NewBlake256() }, nil
	case DigestBlake512:
		return func() hash.Hash { return digest.NewBlake512() }, nil
	case DigestKeccak256:
		return func() hash.Hash { return digest.NewKeccak256() }, nil
	case DigestKeccak512:
		return func() hash.Hash { return digest.NewKeccak512() }, nil
	case DigestSHA256:
		return func() hash.Hash { return digest.NewSHA256() }, nil
	case DigestSHA512:
		return func() hash.Hash { return digest.NewSHA512() }, nil
	case DigestSkein256:
		return func() hash.Hash { return digest.NewSkein256() }, nil
	case DigestSkein512:
		return func() hash.Hash { return digest.NewSkein512() }, nil
	case DigestSkein1024:
		return func() hash.Hash { return digest.NewSkein1024() }, nil
	default:
		return nil, errs.NewUnsupportedConfiguration("DigestKind", uint8(d), "unknown digest enumerant")
	}
}

// BlockSize selects a Rijndael block size by name: 128 or 256 bits.
type BlockSize int

const (
	// Block128 is the standard 16-byte AES/Rijndael block.
	Block128 BlockSize = 16
	// Block256 is the 32-byte Rijndael-256 block.
	Block256 BlockSize = 32
)
