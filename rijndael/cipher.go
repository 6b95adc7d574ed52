// Package rijndael implements the parametric Rijndael/AES block cipher
// engine: the standard FIPS-197 key schedule for 128/192/256-bit keys, the
// 512-bit-key extension with 22 rounds, the 32-byte-block Rijndael-256
// variant, and an HKDF-driven extended key schedule that derives round keys
// from an arbitrary digest rather than the classical expansion.
//
// Cipher is a keyed block cipher state machine: it must be Initialize'd
// before any Transform, and Destroy zeroizes the round-key schedule and
// marks the instance inert.
package rijndael

import (
	"hash"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/mac"
	"github.com/cryptocex/cex/util"
)

// Block sizes supported by the engine.
const (
	BlockSize128 = 16
	BlockSize256 = 32
)

// infoString is the fixed HKDF info tag for the extended key schedule.
// Changing it breaks interoperability with anything that keyed off the
// original string.
const infoString = "information string RHX version 1"

// ExtendedParams configures the HKDF-driven extended key schedule.
// NewHash selects the digest HKDF-Expand runs over; Rounds must be an
// even integer in [10, 38].
type ExtendedParams struct {
	NewHash func() hash.Hash
	Rounds  int
}

// Cipher is a parametric Rijndael block cipher instance. A zero Cipher is
// not usable; construct one with New or NewExtended.
type Cipher struct {
	blockSize int
	nb        int
	extended  ExtendedParams
	isExtended bool

	roundKeys   []uint32
	rounds      int
	encrypt     bool
	initialized bool
	destroyed   bool
}

// New creates a standard-schedule cipher for the given block size (16 or
// 32 bytes).
func New(blockSize int) (*Cipher, error) {
	if blockSize != BlockSize128 && blockSize != BlockSize256 {
		return nil, errs.NewUnsupportedConfiguration("blockSize", blockSize, "block size must be 16 or 32 bytes")
	}
	return &Cipher{blockSize: blockSize, nb: blockSize / 4}, nil
}

// NewExtended creates an HKDF-driven extended-schedule cipher. Rounds
// must be even and within [10, 38].
func NewExtended(blockSize int, p ExtendedParams) (*Cipher, error) {
	if blockSize != BlockSize128 && blockSize != BlockSize256 {
		return nil, errs.NewUnsupportedConfiguration("blockSize", blockSize, "block size must be 16 or 32 bytes")
	}
	if p.NewHash == nil {
		return nil, errs.NewInvalidArgument("NewHash", nil, "extended schedule requires a digest constructor")
	}
	if p.Rounds < 10 || p.Rounds > 38 || p.Rounds%2 != 0 {
		return nil, errs.NewUnsupportedConfiguration("Rounds", p.Rounds, "extended round count must be an even integer in [10, 38]")
	}
	return &Cipher{blockSize: blockSize, nb: blockSize / 4, extended: p, isExtended: true}, nil
}

// BlockSize returns the cipher's configured block size in bytes.
func (c *Cipher) BlockSize() int { return c.blockSize }

// legalStandardKeySize reports whether n is a legal standard-mode key size.
func legalStandardKeySize(n int) bool {
	return n == 16 || n == 24 || n == 32 || n == 64
}

// legalExtendedKeySize reports whether n is a legal extended-mode key size
// for a digest of output size h: {16, 24, 32, 64, 64+h, 64+2h, ...}.
func legalExtendedKeySize(n, h int) bool {
	if n == 16 || n == 24 || n == 32 || n == 64 {
		return true
	}
	if n > 64 && h > 0 {
		return (n-64)%h == 0
	}
	return false
}

// Initialize keys the cipher for encryption (encrypt=true) or decryption.
func (c *Cipher) Initialize(encrypt bool, key []byte) error {
	if c.destroyed {
		return errs.NewInvalidState("Initialize", "cipher has been destroyed", nil)
	}

	var rounds int
	var words []uint32

	if c.isExtended {
		h := c.extended.NewHash()
		hsize := h.Size()
		if !legalExtendedKeySize(len(key), hsize) {
			return errs.NewInvalidArgument("key", len(key), "key length is not a legal extended-mode size for this digest")
		}
		rounds = c.extended.Rounds
		n := c.nb * (rounds + 1)
		expanded, err := hkdfExpandWords(c.extended.NewHash, key, []byte(infoString), n)
		if err != nil {
			return err
		}
		words = expanded
	} else {
		if !legalStandardKeySize(len(key)) {
			return errs.NewInvalidArgument("key", len(key), "key length must be 16, 24, 32 or 64 bytes")
		}
		nk := len(key) / 4
		rounds = maxInt(c.nb, nk) + 6
		words = expandStandardKey(key, nk, c.nb, rounds)
	}

	c.roundKeys = words
	c.rounds = rounds
	c.encrypt = encrypt
	c.initialized = true
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// EncryptBlockAt encrypts one block of in starting at inOff into out
// starting at outOff.
func (c *Cipher) EncryptBlockAt(in []byte, inOff int, out []byte, outOff int) error {
	if !c.initialized {
		return errs.NewInvalidState("EncryptBlockAt", "cipher not initialized", nil)
	}
	if len(in)-inOff < c.blockSize || len(out)-outOff < c.blockSize {
		return errs.NewInvalidArgument("buffer", nil, "input/output shorter than block size")
	}
	encryptBlock(in[inOff:inOff+c.blockSize], out[outOff:outOff+c.blockSize], c.roundKeys, c.rounds, c.nb)
	return nil
}

// DecryptBlockAt decrypts one block of in starting at inOff into out
// starting at outOff.
func (c *Cipher) DecryptBlockAt(in []byte, inOff int, out []byte, outOff int) error {
	if !c.initialized {
		return errs.NewInvalidState("DecryptBlockAt", "cipher not initialized", nil)
	}
	if len(in)-inOff < c.blockSize || len(out)-outOff < c.blockSize {
		return errs.NewInvalidArgument("buffer", nil, "input/output shorter than block size")
	}
	decryptBlock(in[inOff:inOff+c.blockSize], out[outOff:outOff+c.blockSize], c.roundKeys, c.rounds, c.nb)
	return nil
}

// EncryptBlock encrypts exactly one block from in into out.
func (c *Cipher) EncryptBlock(in, out []byte) error { return c.EncryptBlockAt(in, 0, out, 0) }

// DecryptBlock decrypts exactly one block from in into out.
func (c *Cipher) DecryptBlock(in, out []byte) error { return c.DecryptBlockAt(in, 0, out, 0) }

// Transform dispatches to EncryptBlock or DecryptBlock based on the
// direction passed to Initialize.
func (c *Cipher) Transform(in, out []byte) error {
	if c.encrypt {
		return c.EncryptBlock(in, out)
	}
	return c.DecryptBlock(in, out)
}

// Destroy zeroizes the round-key schedule. Idempotent.
func (c *Cipher) Destroy() {
	if c.destroyed {
		return
	}
	for i := range c.roundKeys {
		c.roundKeys[i] = 0
	}
	c.roundKeys = nil
	c.initialized = false
	c.destroyed = true
}

// hkdfExpandWords runs HKDF-Expand(key as PRK, info, n*4 bytes) and packs
// the output big-endian into n words. The extended schedule treats the
// user key directly as the PRK, skipping HKDF-Extract — this matches
// the RHX construction and is intentional.
func hkdfExpandWords(newHash func() hash.Hash, prk, info []byte, n int) ([]uint32, error) {
	h, err := mac.NewHMAC(newHash, prk)
	if err != nil {
		return nil, err
	}
	defer h.Destroy()

	hashLen := newHash().Size()
	need := n * 4
	if need > 255*hashLen {
		return nil, errs.NewInvalidArgument("rounds", n, "requested expansion length exceeds HKDF's 255*H limit")
	}

	out := make([]byte, 0, need+hashLen)
	var t []byte
	var counter byte = 1
	for len(out) < need {
		h.Reset()
		h.Write(t)
		h.Write(info)
		h.Write([]byte{counter})
		t = h.Sum(nil)
		out = append(out, t...)
		counter++
	}
	out = out[:need]

	words := make([]uint32, n)
	for i := 0; i < n; i++ {
		words[i] = util.BE32(out, i*4)
	}
	return words, nil
}
