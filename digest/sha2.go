package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// SHA256 wraps the stdlib FIPS-180-4 SHA-256 implementation. Bit-exactness
// with the published standard is stdlib's job to own — the teacher leans
// on crypto/aes and crypto/cipher the same way rather than hand-rolling
// AEAD constructions stdlib already gets right.
type SHA256 struct {
	hash.Hash
	destroyed bool
}

// NewSHA256 creates a new SHA-256 digest.
func NewSHA256() *SHA256 { return &SHA256{Hash: sha256.New()} }

func (d *SHA256) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d.Hash, in, offset, length)
}
func (d *SHA256) Update(b byte)                               { d.Hash.Write([]byte{b}) }
func (d *SHA256) DoFinal(out []byte, offset int) (int, error)  { return doFinal(d.Hash, out, offset) }
func (d *SHA256) ComputeHash(in []byte) []byte                 { return computeHash(d.Hash, in) }
func (d *SHA256) Destroy() {
	if d.destroyed {
		return
	}
	d.Hash.Reset()
	d.destroyed = true
}

// SHA512 wraps the stdlib FIPS-180-4 SHA-512 implementation.
type SHA512 struct {
	hash.Hash
	destroyed bool
}

// NewSHA512 creates a new SHA-512 digest.
func NewSHA512() *SHA512 { return &SHA512{Hash: sha512.New()} }

func (d *SHA512) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d.Hash, in, offset, length)
}
func (d *SHA512) Update(b byte)                               { d.Hash.Write([]byte{b}) }
func (d *SHA512) DoFinal(out []byte, offset int) (int, error)  { return doFinal(d.Hash, out, offset) }
func (d *SHA512) ComputeHash(in []byte) []byte                 { return computeHash(d.Hash, in) }
func (d *SHA512) Destroy() {
	if d.destroyed {
		return
	}
	d.Hash.Reset()
	d.destroyed = true
}
