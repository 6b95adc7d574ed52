package mac

import (
	"crypto/subtle"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// CMAC implements NIST SP800-38B over any BlockTransformer (a
// *rijndael.Cipher in encrypt mode). Subkey generation is the same
// double-in-GF(2^n) construction the teacher's AES-SIV S2V used for
// 128-bit blocks, generalized here to the cipher's own block size so it
// also covers Rijndael-256.
type CMAC struct {
	block     BlockTransformer
	n         int
	k1, k2    []byte
	buf       []byte
	destroyed bool
}

// rb is the reduction constant XORed into the low end of the block when a
// left shift carries out of the top bit, one per supported block size
// (128-bit: 0x87 for x^128+x^7+x^2+x+1; 256-bit: 0x425 for
// x^256+x^10+x^5+x^2+1). SP800-38B itself defines only the 64- and
// 128-bit constants.
func rb(n int) uint16 {
	if n == 32 {
		return 0x425
	}
	return 0x87
}

func shiftLeftXorRB(b []byte) []byte {
	n := len(b)
	out := make([]byte, n)
	carry := byte(0)
	for i := n - 1; i >= 0; i-- {
		v := b[i]
		out[i] = (v << 1) | carry
		carry = v >> 7
	}
	if carry != 0 {
		r := rb(n)
		out[n-1] ^= byte(r)
		out[n-2] ^= byte(r >> 8)
	}
	return out
}

// NewCMAC derives the CMAC subkeys K1, K2 from block, an already-keyed
// cipher in encrypt mode.
func NewCMAC(block BlockTransformer) (*CMAC, error) {
	if block == nil {
		return nil, errs.NewInvalidArgument("block", nil, "cipher must not be nil")
	}
	n := block.BlockSize()
	zero := make([]byte, n)
	l := make([]byte, n)
	if err := block.EncryptBlock(zero, l); err != nil {
		return nil, errs.NewInternal("cmac subkey derivation failed", err)
	}
	k1 := shiftLeftXorRB(l)
	k2 := shiftLeftXorRB(k1)
	return &CMAC{block: block, n: n, k1: k1, k2: k2, buf: make([]byte, 0, n)}, nil
}

// Reset clears accumulated message bytes.
func (c *CMAC) Reset() { c.buf = c.buf[:0] }

// Write absorbs more message bytes.
func (c *CMAC) Write(p []byte) (int, error) {
	c.buf = append(c.buf, p...)
	return len(p), nil
}

// Sum appends the MAC tag for the message written so far, without
// mutating streaming state.
func (c *CMAC) Sum(b []byte) []byte {
	n := c.n
	msg := c.buf
	numBlocks := (len(msg) + n - 1) / n
	complete := numBlocks > 0 && len(msg)%n == 0

	last := make([]byte, n)
	if len(msg) == 0 {
		last[0] = 0x80
		util.XorBlock(last, c.k2, n)
	} else if complete {
		copy(last, msg[len(msg)-n:])
		util.XorBlock(last, c.k1, n)
	} else {
		rem := len(msg) % n
		copy(last, msg[len(msg)-rem:])
		last[rem] = 0x80
		util.XorBlock(last, c.k2, n)
	}

	y := make([]byte, n)
	full := numBlocks - 1
	if full < 0 {
		full = 0
	}
	for i := 0; i < full; i++ {
		util.Xor(y, y, msg[i*n:(i+1)*n], n)
		c.block.EncryptBlock(y, y)
	}
	util.Xor(y, y, last, n)
	c.block.EncryptBlock(y, y)

	return append(b, y...)
}

// Verify reports whether tag matches the MAC for the message written so
// far, comparing in constant time so a mismatch can't be used to probe
// the tag byte by byte.
func (c *CMAC) Verify(tag []byte) error {
	want := c.Sum(nil)
	if subtle.ConstantTimeCompare(tag, want) != 1 {
		return errs.ErrAuthFailed
	}
	return nil
}

// Size is the tag length (the cipher's block size).
func (c *CMAC) Size() int { return c.n }

// BlockSize is the underlying cipher's block size.
func (c *CMAC) BlockSize() int { return c.n }

// Destroy zeroizes the derived subkeys. Idempotent.
func (c *CMAC) Destroy() {
	if c.destroyed {
		return
	}
	util.SecureWipe(c.k1)
	util.SecureWipe(c.k2)
	c.destroyed = true
}
