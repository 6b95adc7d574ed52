package entropy

import (
	"crypto/sha256"
	"hash"
	"os"
	"runtime"
	"time"

	"github.com/cryptocex/cex/digest"
	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/rijndael"
)

// ecpStateCapacity is the default low-entropy sample buffer size, matching
// CEX's ECP::DEF_STATECAP.
const ecpStateCapacity = 1024

// ecpExtendedRounds is the round count for the HKDF(SHA-256) extended
// Rijndael schedule ECP seeds, matching CEX's 22-round HX configuration.
const ecpExtendedRounds = 22

// ECP is the entropy collection provider: it gathers several low-entropy
// system samples into a buffer, compresses the buffer with Keccak-512 to
// a 512-bit key, and uses that key to seed an extended-Rijndael CTR
// generator whose output is the provider's entropy, grounded on
// CEX's ECP.h two-stage design.
type ECP struct {
	cipher    *rijndael.Cipher
	counter   []byte
	available bool
	destroyed bool
}

// NewECP creates an ECP provider, collecting system samples immediately.
func NewECP() (*ECP, error) {
	e := &ECP{available: true}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// IsAvailable always reports true: every sample source this provider
// reads from (clock, pid, goroutine count) exists on every supported OS.
func (e *ECP) IsAvailable() bool { return e.available }

// Reset recollects system samples and re-seeds the cipher.
func (e *ECP) Reset() error {
	state := collectSamples(ecpStateCapacity)

	k := digest.NewKeccak512()
	k.Write(state)
	key := k.Sum(nil) // 64 bytes = 512 bits

	c, err := rijndael.NewExtended(rijndael.BlockSize128, rijndael.ExtendedParams{
		NewHash: func() hash.Hash { return sha256.New() },
		Rounds:  ecpExtendedRounds,
	})
	if err != nil {
		return err
	}
	if err := c.Initialize(true, key); err != nil {
		return err
	}

	counter := make([]byte, rijndael.BlockSize128)
	csp := NewCSP()
	if err := csp.GetBytes(counter); err != nil {
		return err
	}

	e.cipher = c
	e.counter = counter
	return nil
}

// GetBytes fills out by encrypting the incrementing counter.
func (e *ECP) GetBytes(out []byte) error {
	if e.destroyed {
		return errs.NewInvalidState("GetBytes", "provider already destroyed", nil)
	}
	bs := e.cipher.BlockSize()
	block := make([]byte, bs)
	for off := 0; off < len(out); off += bs {
		if err := e.cipher.EncryptBlock(e.counter, block); err != nil {
			return err
		}
		incrementCounter(e.counter)
		n := bs
		if off+n > len(out) {
			n = len(out) - off
		}
		copy(out[off:off+n], block[:n])
	}
	return nil
}

// Destroy zeroizes the cipher and counter state. Idempotent.
func (e *ECP) Destroy() {
	if e.destroyed {
		return
	}
	e.cipher.Destroy()
	for i := range e.counter {
		e.counter[i] = 0
	}
	e.destroyed = true
}

func incrementCounter(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}

// collectSamples gathers the low-entropy system state CEX's ECP names:
// high-resolution timers, process id, and runtime/scheduler statistics,
// padded/truncated to size bytes. None of these sources is individually
// high-entropy; they are only ever consumed after Keccak compression.
func collectSamples(size int) []byte {
	buf := make([]byte, 0, size)

	now := time.Now()
	appendUint64(&buf, uint64(now.UnixNano()))
	appendUint64(&buf, uint64(os.Getpid()))
	appendUint64(&buf, uint64(os.Getppid()))
	appendUint64(&buf, uint64(runtime.NumGoroutine()))
	appendUint64(&buf, uint64(runtime.NumCPU()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	appendUint64(&buf, m.Alloc)
	appendUint64(&buf, m.Mallocs)
	appendUint64(&buf, m.NumGC)
	appendUint64(&buf, uint64(m.PauseTotalNs))

	for i := 0; i < 4; i++ {
		appendUint64(&buf, uint64(time.Now().UnixNano()))
	}

	for len(buf) < size {
		appendUint64(&buf, uint64(time.Now().UnixNano()))
	}
	return buf[:size]
}

func appendUint64(buf *[]byte, v uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
	*buf = append(*buf, b[:]...)
}
