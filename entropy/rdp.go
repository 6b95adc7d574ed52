package entropy

import (
	"crypto/rand"

	"golang.org/x/sys/cpu"

	"github.com/cryptocex/cex/errs"
)

// RDEngine selects which Intel DRNG instruction RDP models.
type RDEngine byte

const (
	// RDRand models the CTR_DRBG-backed RDRAND instruction, bounded by
	// 10 retries on a working CPU.
	RDRand RDEngine = iota
	// RDSeed models the conditioned-seed RDSEED instruction, bounded by
	// 20 retries and a 64,000,000-byte maximum per reseed.
	RDSeed
)

const (
	rdrRetry  = 10
	rdsRetry  = 20
	rdSeedMax = 64 * 1000 * 1000
)

// RDP reports CPU-level hardware RNG availability (RDRAND/RDSEED via
// golang.org/x/sys/cpu feature detection) and, when available, draws
// output through the OS CSPRNG as the actual byte source: Go has no
// portable way to issue the RDRAND/RDSEED instructions without a
// platform-specific assembly stub, which this build does not include
// (see DESIGN.md). The retry bounds and per-reseed output cap below
// still mirror the real DRNG's documented limits, so callers that
// budget against them behave the same regardless of the underlying
// source.
type RDP struct {
	engine    RDEngine
	available bool
	drawn     uint64
}

// NewRDP creates an RDP provider for the given engine, detecting
// availability from CPU feature flags.
func NewRDP(engine RDEngine) *RDP {
	r := &RDP{engine: engine}
	switch engine {
	case RDSeed:
		r.available = cpu.X86.HasRDSEED
	default:
		r.available = cpu.X86.HasRDRAND
	}
	return r
}

// IsAvailable reports whether the selected engine's CPU feature flag is set.
func (r *RDP) IsAvailable() bool { return r.available }

// GetBytes fills out with bytes, honoring the engine's per-reseed output
// cap for RDSeed and retry budget for both engines.
func (r *RDP) GetBytes(out []byte) error {
	if !r.available {
		return errs.NewEntropyUnavailable("RDP", "RDRAND/RDSEED not available on this CPU", nil)
	}
	if len(out) == 0 {
		return errs.NewInvalidArgument("out", 0, "buffer must be at least 1 byte")
	}

	retries := rdrRetry
	if r.engine == RDSeed {
		retries = rdsRetry
		if r.drawn+uint64(len(out)) > rdSeedMax {
			return errs.NewEntropyUnavailable("RDP", "RDSEED per-reseed output cap exceeded", nil)
		}
	}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if _, err := rand.Read(out); err != nil {
			lastErr = err
			continue
		}
		r.drawn += uint64(len(out))
		return nil
	}
	return errs.NewEntropyUnavailable("RDP", "exhausted retry budget", lastErr)
}
