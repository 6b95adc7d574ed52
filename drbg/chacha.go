package drbg

import (
	"golang.org/x/crypto/chacha20"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// chachaKeySize and chachaNonceSize match x/crypto/chacha20's IETF variant.
const (
	chachaKeySize   = chacha20.KeySize
	chachaNonceSize = chacha20.NonceSize
)

// maxReseedBytes bounds how many bytes StreamCounterDRBG emits between
// reseeds, the same reseed-interval discipline BCG enforces.
const maxReseedBytes = 1 << 32

// StreamCounterDRBG is a software counter-stream generator for hosts
// where no block cipher is configured for BCG: it derives keystream
// directly from a ChaCha20 instance instead of encrypting a counter
// block by block. Original CEX ships only Rijndael-backed DRBGs; this
// is a fallback generator for callers that want a non-block-cipher
// stream without taking a BCG dependency on rijndael.
type StreamCounterDRBG struct {
	cipher     *chacha20.Cipher
	key        []byte
	nonce      []byte
	bytesDrawn uint64
	destroyed  bool
}

// NewStreamCounterDRBG creates a StreamCounterDRBG from a 32-byte key and
// a 12-byte nonce (ChaCha20's IETF layout). The internal block counter
// starts at zero.
func NewStreamCounterDRBG(key, nonce []byte) (*StreamCounterDRBG, error) {
	if len(key) != chachaKeySize {
		return nil, errs.NewInvalidArgument("key", len(key), "must be 32 bytes")
	}
	if len(nonce) != chachaNonceSize {
		return nil, errs.NewInvalidArgument("nonce", len(nonce), "must be 12 bytes")
	}
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, errs.NewInternal("chacha20 cipher construction failed", err)
	}
	k := make([]byte, chachaKeySize)
	n := make([]byte, chachaNonceSize)
	copy(k, key)
	copy(n, nonce)
	return &StreamCounterDRBG{cipher: c, key: k, nonce: n}, nil
}

// Generate fills out with keystream bytes. Unlike BCG's block-at-a-time
// encryption, ChaCha20's internal counter advances per 64-byte chunk
// automatically; out may be any length, including lengths that don't
// divide 64.
func (g *StreamCounterDRBG) Generate(out []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Generate", "generator already destroyed", nil)
	}
	if g.bytesDrawn+uint64(len(out)) > maxReseedBytes {
		return errs.NewEntropyUnavailable("StreamCounterDRBG", "reseed interval exceeded; call Reseed", nil)
	}
	for i := range out {
		out[i] = 0
	}
	g.cipher.XORKeyStream(out, out)
	g.bytesDrawn += uint64(len(out))
	return nil
}

// Reseed rekeys the generator from seed, which must be exactly
// key-size + nonce-size bytes (key first, then nonce), and resets the
// internal counter and reseed budget.
func (g *StreamCounterDRBG) Reseed(seed []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Reseed", "generator already destroyed", nil)
	}
	if len(seed) != chachaKeySize+chachaNonceSize {
		return errs.NewInvalidArgument("seed", len(seed), "must be key size + nonce size (44 bytes)")
	}
	key := seed[:chachaKeySize]
	nonce := seed[chachaKeySize:]
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return errs.NewInternal("chacha20 cipher construction failed", err)
	}
	g.cipher = c
	copy(g.key, key)
	copy(g.nonce, nonce)
	g.bytesDrawn = 0
	return nil
}

// Destroy zeroizes key and nonce material. Idempotent.
func (g *StreamCounterDRBG) Destroy() {
	if g.destroyed {
		return
	}
	util.SecureWipe(g.key)
	util.SecureWipe(g.nonce)
	g.destroyed = true
}
