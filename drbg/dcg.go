package drbg

import (
	"hash"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// DCG is the digest counter mode DRBG: output block i is
// Digest(seed || counter_i), counter incrementing once per block.
type DCG struct {
	newHash       func() hash.Hash
	seed          []byte
	counter       []byte
	blocksEmitted uint64
	destroyed     bool
}

// NewDCG creates a DCG seeded from seed, hashed with newHash.
func NewDCG(newHash func() hash.Hash, seed []byte) (*DCG, error) {
	if newHash == nil {
		return nil, errs.NewInvalidArgument("newHash", nil, "digest constructor must not be nil")
	}
	if len(seed) == 0 {
		return nil, errs.NewInvalidArgument("seed", len(seed), "must not be empty")
	}
	s := make([]byte, len(seed))
	copy(s, seed)
	return &DCG{newHash: newHash, seed: s, counter: make([]byte, 8)}, nil
}

// Generate fills out with successive Digest(seed||counter) blocks.
func (g *DCG) Generate(out []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Generate", "generator already destroyed", nil)
	}
	h := g.newHash()
	bs := h.Size()
	block := make([]byte, bs)
	for off := 0; off < len(out); off += bs {
		if g.blocksEmitted >= maxReseedBlocks {
			return errs.NewEntropyUnavailable("DCG", "reseed interval exceeded; call Reseed", nil)
		}
		h.Reset()
		h.Write(g.seed)
		h.Write(g.counter)
		block = h.Sum(block[:0])
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

// Reseed replaces the seed and resets the counter and reseed budget.
func (g *DCG) Reseed(seed []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Reseed", "generator already destroyed", nil)
	}
	if len(seed) == 0 {
		return errs.NewInvalidArgument("seed", len(seed), "must not be empty")
	}
	g.seed = append(g.seed[:0], seed...)
	for i := range g.counter {
		g.counter[i] = 0
	}
	g.blocksEmitted = 0
	return nil
}

// Destroy zeroizes the seed and counter state. Idempotent.
func (g *DCG) Destroy() {
	if g.destroyed {
		return
	}
	util.SecureWipe(g.seed)
	util.SecureWipe(g.counter)
	g.destroyed = true
}
