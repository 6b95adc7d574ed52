package drbg

import (
	"hash"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/mac"
	"github.com/cryptocex/cex/util"
)

// HCG is the HMAC DRBG of NIST SP800-90A §10.1.2: internal state (K, V)
// updated by repeated HMAC calls, output produced by iterating V through
// HMAC(K, ·).
type HCG struct {
	newHash   func() hash.Hash
	k         []byte
	v         []byte
	destroyed bool
}

// NewHCG instantiates an HCG from the given seed material.
func NewHCG(newHash func() hash.Hash, seed []byte) (*HCG, error) {
	if newHash == nil {
		return nil, errs.NewInvalidArgument("newHash", nil, "digest constructor must not be nil")
	}
	outLen := newHash().Size()
	g := &HCG{
		newHash: newHash,
		k:       make([]byte, outLen),
		v:       make([]byte, outLen),
	}
	for i := range g.v {
		g.v[i] = 0x01
	}
	if err := g.update(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// update runs SP800-90A's internal Update(providedData, K, V) step.
func (g *HCG) update(providedData []byte) error {
	h, err := mac.NewHMAC(g.newHash, g.k)
	if err != nil {
		return err
	}
	defer h.Destroy()
	h.Write(g.v)
	h.Write([]byte{0x00})
	h.Write(providedData)
	g.k = h.Sum(nil)

	h2, err := mac.NewHMAC(g.newHash, g.k)
	if err != nil {
		return err
	}
	defer h2.Destroy()
	h2.Write(g.v)
	g.v = h2.Sum(nil)

	if len(providedData) == 0 {
		return nil
	}

	h3, err := mac.NewHMAC(g.newHash, g.k)
	if err != nil {
		return err
	}
	defer h3.Destroy()
	h3.Write(g.v)
	h3.Write([]byte{0x01})
	h3.Write(providedData)
	g.k = h3.Sum(nil)

	h4, err := mac.NewHMAC(g.newHash, g.k)
	if err != nil {
		return err
	}
	defer h4.Destroy()
	h4.Write(g.v)
	g.v = h4.Sum(nil)
	return nil
}

// Generate fills out with SP800-90A HMAC_DRBG output, then runs an
// Update step with no additional input (the optional generate-time
// reseed mixing, always applied here).
func (g *HCG) Generate(out []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Generate", "generator already destroyed", nil)
	}
	h, err := mac.NewHMAC(g.newHash, g.k)
	if err != nil {
		return err
	}
	defer h.Destroy()

	produced := 0
	for produced < len(out) {
		h.Reset()
		h.Write(g.v)
		g.v = h.Sum(nil)
		n := copy(out[produced:], g.v)
		produced += n
	}
	return g.update(nil)
}

// Reseed mixes fresh seed material into (K, V).
func (g *HCG) Reseed(seed []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Reseed", "generator already destroyed", nil)
	}
	if len(seed) == 0 {
		return errs.NewInvalidArgument("seed", len(seed), "must not be empty")
	}
	return g.update(seed)
}

// Destroy zeroizes K and V. Idempotent.
func (g *HCG) Destroy() {
	if g.destroyed {
		return
	}
	util.SecureWipe(g.k)
	util.SecureWipe(g.v)
	g.destroyed = true
}
