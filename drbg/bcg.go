package drbg

import (
	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/rijndael"
	"github.com/cryptocex/cex/util"
)

// maxReseedBlocks bounds how many blocks BCG will emit between reseeds
// before refusing further output, mirroring NIST SP800-90A's
// reseed_interval control.
const maxReseedBlocks = 1 << 24

// BCG is the block-cipher counter mode DRBG: a standard-schedule
// Rijndael instance (rijndael.New) keyed from seed material, generating output by encrypting an
// incrementing counter.
type BCG struct {
	cipher        *rijndael.Cipher
	counter       []byte
	blocksEmitted uint64
	destroyed     bool
}

// NewBCG creates a BCG seeded from key||nonce. key must be a legal
// Rijndael key size; nonce must equal the block size (16 or 32 bytes).
func NewBCG(blockSize int, key, nonce []byte) (*BCG, error) {
	c, err := rijndael.New(blockSize)
	if err != nil {
		return nil, err
	}
	if err := c.Initialize(true, key); err != nil {
		return nil, err
	}
	if len(nonce) != blockSize {
		return nil, errs.NewInvalidArgument("nonce", len(nonce), "must equal the block size")
	}
	ctr := make([]byte, blockSize)
	copy(ctr, nonce)
	return &BCG{cipher: c, counter: ctr}, nil
}

// Generate fills out with successive E(counter) blocks, incrementing
// the counter between blocks.
func (g *BCG) Generate(out []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Generate", "generator already destroyed", nil)
	}
	bs := g.cipher.BlockSize()
	block := make([]byte, bs)
	for off := 0; off < len(out); off += bs {
		if g.blocksEmitted >= maxReseedBlocks {
			return errs.NewEntropyUnavailable("BCG", "reseed interval exceeded; call Reseed", nil)
		}
		if err := g.cipher.EncryptBlock(g.counter, block); err != nil {
			return err
		}
		util.IncrementBE(g.counter)
		g.blocksEmitted++
		n := bs
		if off+n > len(out) {
			n = len(out) - off
		}
		copy(out[off:off+n], block[:n])
	}
	return nil
}

// Reseed re-keys the cipher from seed (treated as a fresh key of legal
// size) and resets the reseed counter.
func (g *BCG) Reseed(seed []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Reseed", "generator already destroyed", nil)
	}
	if err := g.cipher.Initialize(true, seed); err != nil {
		return err
	}
	g.blocksEmitted = 0
	return nil
}

// Destroy zeroizes the cipher and counter state. Idempotent.
func (g *BCG) Destroy() {
	if g.destroyed {
		return
	}
	g.cipher.Destroy()
	util.SecureWipe(g.counter)
	g.destroyed = true
}
