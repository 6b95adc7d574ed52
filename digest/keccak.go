package digest

import "github.com/cryptocex/cex/util"

// keccakState is the shared sponge construction behind Keccak256 and
// Keccak512. Rate is 1600-2*d bits where d is the digest size. Padding
// uses the original Keccak domain separation (0x01 ... 0x80), not
// FIPS-202's 0x06 — an intentional, test-vector-preserving deviation.
type keccakState struct {
	a         [25]uint64
	rate      int // bytes
	size      int // output bytes
	buf       []byte
	destroyed bool
}

func newKeccakState(digestBytes int) *keccakState {
	k := &keccakState{size: digestBytes, rate: (1600 - 2*digestBytes*8) / 8}
	k.buf = make([]byte, 0, k.rate)
	return k
}

func (k *keccakState) Size() int      { return k.size }
func (k *keccakState) BlockSize() int { return k.rate }

func (k *keccakState) Reset() {
	k.a = [25]uint64{}
	k.buf = k.buf[:0]
}

func (k *keccakState) Write(p []byte) (int, error) {
	n := len(p)
	k.buf = append(k.buf, p...)
	for len(k.buf) >= k.rate {
		k.absorb(k.buf[:k.rate])
		k.buf = k.buf[k.rate:]
	}
	return n, nil
}

func (k *keccakState) absorb(block []byte) {
	for i := 0; i < k.rate/8; i++ {
		k.a[i] ^= util.LE64(block, i*8)
	}
	keccakF1600(&k.a)
}

func (k *keccakState) Sum(b []byte) []byte {
	cp := *k
	pad := make([]byte, cp.rate)
	copy(pad, cp.buf)
	pad[len(cp.buf)] ^= 0x01
	pad[cp.rate-1] ^= 0x80
	cp.absorb(pad)

	out := make([]byte, cp.size)
	for i := 0; i*8 < cp.size; i++ {
		var lane [8]byte
		util.PutLE64(lane[:], 0, cp.a[i])
		copy(out[i*8:], lane[:])
	}
	return append(b, out...)
}

func (k *keccakState) destroy() {
	if k.destroyed {
		return
	}
	k.a = [25]uint64{}
	k.buf = nil
	k.destroyed = true
}

// Keccak256 is the 256-bit-output Keccak sponge (rate 136 bytes).
type Keccak256 struct{ *keccakState }

// NewKeccak256 creates a new Keccak-256 digest.
func NewKeccak256() *Keccak256 { return &Keccak256{newKeccakState(32)} }

func (d *Keccak256) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d, in, offset, length)
}
func (d *Keccak256) Update(b byte)                              { d.Write([]byte{b}) }
func (d *Keccak256) DoFinal(out []byte, offset int) (int, error) { return doFinal(d, out, offset) }
func (d *Keccak256) ComputeHash(in []byte) []byte                { return computeHash(d, in) }
func (d *Keccak256) Destroy()                                    { d.destroy() }

// Keccak512 is the 512-bit-output Keccak sponge (rate 72 bytes).
type Keccak512 struct{ *keccakState }

// NewKeccak512 creates a new Keccak-512 digest.
func NewKeccak512() *Keccak512 { return &Keccak512{newKeccakState(64)} }

func (d *Keccak512) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d, in, offset, length)
}
func (d *Keccak512) Update(b byte)                              { d.Write([]byte{b}) }
func (d *Keccak512) DoFinal(out []byte, offset int) (int, error) { return doFinal(d, out, offset) }
func (d *Keccak512) ComputeHash(in []byte) []byte                { return computeHash(d, in) }
func (d *Keccak512) Destroy()                                    { d.destroy() }
