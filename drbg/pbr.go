package drbg

import (
	"hash"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/kdf"
	"github.com/cryptocex/cex/util"
)

// minSeedSize is the per-digest minimum seed length MinimumSeedSize
// reports, grounded on CEX's PBR::GetMinimumSeedSize. For Blake, Keccak
// and Skein it is the digest's block size (Keccak's rate); for SHA-256
// and SHA-512 it is the block size minus 9 and 17 bytes respectively.
var minSeedSize = map[string]int{
	"blake256":  64,
	"blake512":  128,
	"keccak256": 136,
	"keccak512": 72,
	"sha256":    55,
	"sha512":    111,
	"skein256":  32,
	"skein512":  64,
	"skein1024": 128,
}

// MinimumSeedSize reports the minimum seed length required for the
// named digest, or 0 if the name isn't recognized.
func MinimumSeedSize(digestName string) int { return minSeedSize[digestName] }

// PBR is the passphrase-based DRBG: a buffer refilled by iterated
// PBKDF2 over the seed, served out byte by byte, grounded on CEX's
// PBR.cpp buffer-refill loop.
type PBR struct {
	newHash    func() hash.Hash
	iterations int
	seed       []byte
	buf        []byte
	bufIndex   int
	destroyed  bool
}

// NewPBR creates a PBR. bufferSize must be at least 64 bytes; iterations
// must be at least 1. The seed's length is not checked here, not even
// against the chosen digest's minimum that MinimumSeedSize reports.
func NewPBR(newHash func() hash.Hash, seed []byte, iterations, bufferSize int) (*PBR, error) {
	if newHash == nil {
		return nil, errs.NewInvalidArgument("newHash", nil, "digest constructor must not be nil")
	}
	if iterations < 1 {
		return nil, errs.NewInvalidArgument("iterations", iterations, "must be at least 1")
	}
	if bufferSize < 64 {
		return nil, errs.NewInvalidArgument("bufferSize", bufferSize, "must be at least 64 bytes")
	}
	g := &PBR{
		newHash:    newHash,
		iterations: iterations,
		seed:       append([]byte(nil), seed...),
		buf:        make([]byte, bufferSize),
	}
	if err := g.refill(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *PBR) refill() error {
	salt := make([]byte, g.newHash().Size())
	out, err := kdf.PBKDF2(g.seed, salt, kdf.PBKDF2Params{
		Iterations: g.iterations,
		NewHash:    g.newHash,
		KeySize:    len(g.buf),
	})
	if err != nil {
		return err
	}
	copy(g.buf, out)
	g.bufIndex = 0
	// Re-derive the seed so the next refill produces different output,
	// the way repeated PBKDF2 draws over a fixed seed otherwise would not.
	g.seed = out
	return nil
}

// Generate serves bytes from the buffer, refilling via PBKDF2 whenever
// it runs dry, following the same remaining/refill split as CEX's
// PBR::GetBytes.
func (g *PBR) Generate(out []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Generate", "generator already destroyed", nil)
	}
	produced := 0
	for produced < len(out) {
		remaining := len(g.buf) - g.bufIndex
		if remaining == 0 {
			if err := g.refill(); err != nil {
				return err
			}
			remaining = len(g.buf)
		}
		n := remaining
		if need := len(out) - produced; n > need {
			n = need
		}
		copy(out[produced:produced+n], g.buf[g.bufIndex:g.bufIndex+n])
		g.bufIndex += n
		produced += n
	}
	return nil
}

// Reseed replaces the seed and forces an immediate refill.
func (g *PBR) Reseed(seed []byte) error {
	if g.destroyed {
		return errs.NewInvalidState("Reseed", "generator already destroyed", nil)
	}
	g.seed = append([]byte(nil), seed...)
	return g.refill()
}

// Destroy zeroizes the buffer and seed. Idempotent.
func (g *PBR) Destroy() {
	if g.destroyed {
		return
	}
	util.SecureWipe(g.buf)
	util.SecureWipe(g.seed)
	g.destroyed = true
}

// GetRanged draws a uniformly distributed value in [min, max] (CEX's
// GetRanged): it computes the minimum bit width covering max-min, masks
// each draw to that bit width rather than to the nearest whole byte, and
// rejects a masked draw that still exceeds max-min by redrawing — this
// avoids both modulo bias and the larger rejection rate a byte-granularity
// mask would cause whenever max-min isn't one bit short of a byte
// boundary.
func GetRanged(g interface{ Generate([]byte) error }, min, max uint64) (uint64, error) {
	if max < min {
		return 0, errs.NewInvalidArgument("max", max, "must not be less than min")
	}
	span := max - min
	if span == 0 {
		return min, nil
	}
	bits := bitLength(span)
	length := (bits + 7) / 8
	var mask byte = 0xff
	if rem := bits % 8; rem != 0 {
		mask = byte(1<<rem) - 1
	}

	buf := make([]byte, 8)
	for {
		for i := range buf {
			buf[i] = 0
		}
		if err := g.Generate(buf[:length]); err != nil {
			return 0, err
		}
		buf[length-1] &= mask
		v := util.LE64(buf, 0)
		if v <= span {
			return min + v, nil
		}
	}
}

// bitLength returns the number of bits needed to represent v, treating
// v == 0 as needing 1 bit.
func bitLength(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	if n == 0 {
		n = 1
	}
	return n
}
