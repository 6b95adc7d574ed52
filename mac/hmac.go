package mac

import (
	"crypto/subtle"
	"hash"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// HMAC implements RFC 2104 HMAC over any digest produced by newHash,
// including the module's own digest.Blake256/Blake512/Keccak256/
// Keccak512/Skein256/Skein512/Skein1024 as well as stdlib sha256/sha512.
type HMAC struct {
	newHash   func() hash.Hash
	outer     hash.Hash
	inner     hash.Hash
	ipad      []byte
	opad      []byte
	destroyed bool
}

// NewHMAC builds an HMAC keyed MAC. Keys longer than the digest's block
// size are hashed down first, per RFC 2104 §2.
func NewHMAC(newHash func() hash.Hash, key []byte) (*HMAC, error) {
	if newHash == nil {
		return nil, errs.NewInvalidArgument("newHash", nil, "digest constructor must not be nil")
	}
	h0 := newHash()
	blockSize := h0.BlockSize()

	k := make([]byte, len(key))
	copy(k, key)
	if len(k) > blockSize {
		h0.Write(k)
		k = h0.Sum(nil)
		h0.Reset()
	}
	if len(k) < blockSize {
		padded := make([]byte, blockSize)
		copy(padded, k)
		k = padded
	}

	m := &HMAC{
		newHash: newHash,
		ipad:    make([]byte, blockSize),
		opad:    make([]byte, blockSize),
	}
	for i := 0; i < blockSize; i++ {
		m.ipad[i] = k[i] ^ 0x36
		m.opad[i] = k[i] ^ 0x5c
	}
	m.inner = newHash()
	m.outer = newHash()
	m.inner.Write(m.ipad)
	return m, nil
}

// Reset restarts the MAC computation with the same key.
func (m *HMAC) Reset() {
	m.inner = m.newHash()
	m.outer = m.newHash()
	m.inner.Write(m.ipad)
}

// Write absorbs more message bytes.
func (m *HMAC) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

// Sum appends the MAC tag to b without altering the streaming state,
// matching the hash.Hash contract.
func (m *HMAC) Sum(b []byte) []byte {
	innerSum := m.inner.Sum(nil)
	m.outer.Reset()
	m.outer.Write(m.opad)
	m.outer.Write(innerSum)
	return m.outer.Sum(b)
}

// Verify reports whether tag matches the MAC for the message written so
// far, comparing in constant time so a mismatch can't be used to probe
// the tag byte by byte.
func (m *HMAC) Verify(tag []byte) error {
	want := m.Sum(nil)
	if subtle.ConstantTimeCompare(tag, want) != 1 {
		return errs.ErrAuthFailed
	}
	return nil
}

// Size is the tag length in bytes.
func (m *HMAC) Size() int { return m.newHash().Size() }

// BlockSize is the underlying digest's block size.
func (m *HMAC) BlockSize() int { return len(m.ipad) }

// Destroy zeroizes the derived pad keys. Idempotent.
func (m *HMAC) Destroy() {
	if m.destroyed {
		return
	}
	util.SecureWipe(m.ipad)
	util.SecureWipe(m.opad)
	m.destroyed = true
}
