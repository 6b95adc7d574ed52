package digest

import "github.com/cryptocex/cex/util"

const (
	skeinTypeConfig byte = 4
	skeinTypeMsg    byte = 48
	skeinTypeOut    byte = 63
)

func skeinTweak(pos uint64, typ byte, first, final bool) [2]uint64 {
	var t1 uint64 = uint64(typ) << 56
	if first {
		t1 |= 1 << 62
	}
	if final {
		t1 |= 1 << 63
	}
	return [2]uint64{pos, t1}
}

// skeinUBI runs Unique Block Iteration over msg with the given type tag,
// starting from chaining value g (nw words), returning the new chaining
// value.
func skeinUBI(nw, rounds int, g []uint64, msg []byte, typ byte) []uint64 {
	blockBytes := nw * 8
	state := make([]uint64, nw)
	copy(state, g)

	if len(msg) == 0 {
		msg = make([]byte, blockBytes)
	}

	pos := uint64(0)
	for off := 0; off < len(msg); off += blockBytes {
		end := off + blockBytes
		first := off == 0
		var block []byte
		final := end >= len(msg)
		if end > len(msg) {
			block = make([]byte, blockBytes)
			copy(block, msg[off:])
			pos += uint64(len(msg) - off)
		} else {
			block = msg[off:end]
			pos += uint64(blockBytes)
		}

		words := make([]uint64, nw)
		for i := 0; i < nw; i++ {
			words[i] = util.LE64(block, i*8)
		}

		tw := skeinTweak(pos, typ, first, final)
		enc := threefishEncrypt(nw, state, tw[:], rounds, words)
		for i := range state {
			state[i] = enc[i] ^ words[i]
		}
	}
	return state
}

func skeinRounds(nw int) int {
	if nw == 16 {
		return 80
	}
	return 72
}

// skeinConfigBlock builds the 32-byte Skein configuration string, zero
// padded to one full state block.
func skeinConfigBlock(nw int, outputBits uint64) []byte {
	b := make([]byte, nw*8)
	copy(b[0:4], []byte{0x53, 0x48, 0x41, 0x33}) // "SHA3" schema identifier
	util.PutLE64(b, 4, 0)                        // version/reserved placeholder
	b[4] = 1                                     // version 1
	util.PutLE64(b, 8, outputBits)
	return b
}

func skeinHash(nw int, out []byte, msg []byte) {
	rounds := skeinRounds(nw)
	g0 := make([]uint64, nw)
	g1 := skeinUBI(nw, rounds, g0, skeinConfigBlock(nw, uint64(len(out))*8), skeinTypeConfig)
	g2 := skeinUBI(nw, rounds, g1, msg, skeinTypeMsg)
	g3 := skeinUBI(nw, rounds, g2, make([]byte, 8), skeinTypeOut)

	words := make([]byte, nw*8)
	for i := 0; i < nw; i++ {
		util.PutLE64(words, i*8, g3[i])
	}
	copy(out, words[:len(out)])
}

// skeinDigest is the shared streaming wrapper for Skein-256/512/1024: it
// buffers the whole message (Skein's UBI chaining needs to know which
// block is final before compressing it) and computes the hash in Sum.
type skeinDigest struct {
	nw        int
	size      int
	buf       []byte
	destroyed bool
}

func newSkeinDigest(nw, size int) *skeinDigest { return &skeinDigest{nw: nw, size: size} }

func (d *skeinDigest) Size() int      { return d.size }
func (d *skeinDigest) BlockSize() int { return d.nw * 8 }
func (d *skeinDigest) Reset()         { d.buf = d.buf[:0] }
func (d *skeinDigest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}
func (d *skeinDigest) Sum(b []byte) []byte {
	out := make([]byte, d.size)
	skeinHash(d.nw, out, d.buf)
	return append(b, out...)
}
func (d *skeinDigest) destroy() {
	if d.destroyed {
		return
	}
	d.buf = nil
	d.destroyed = true
}

// Skein256 is the 256-bit Skein hash (Threefish-256 core).
type Skein256 struct{ *skeinDigest }

// NewSkein256 creates a new Skein-256 digest.
func NewSkein256() *Skein256 { return &Skein256{newSkeinDigest(4, 32)} }

func (d *Skein256) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d, in, offset, length)
}
func (d *Skein256) Update(b byte)                              { d.Write([]byte{b}) }
func (d *Skein256) DoFinal(out []byte, offset int) (int, error) { return doFinal(d, out, offset) }
func (d *Skein256) ComputeHash(in []byte) []byte                { return computeHash(d, in) }
func (d *Skein256) Destroy()                                    { d.destroy() }

// Skein512 is the 512-bit Skein hash (Threefish-512 core).
type Skein512 struct{ *skeinDigest }

// NewSkein512 creates a new Skein-512 digest.
func NewSkein512() *Skein512 { return &Skein512{newSkeinDigest(8, 64)} }

func (d *Skein512) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d, in, offset, length)
}
func (d *Skein512) Update(b byte)                              { d.Write([]byte{b}) }
func (d *Skein512) DoFinal(out []byte, offset int) (int, error) { return doFinal(d, out, offset) }
func (d *Skein512) ComputeHash(in []byte) []byte                { return computeHash(d, in) }
func (d *Skein512) Destroy()                                    { d.destroy() }

// Skein1024 is the 1024-bit Skein hash (Threefish-1024 core).
type Skein1024 struct{ *skeinDigest }

// NewSkein1024 creates a new Skein-1024 digest.
func NewSkein1024() *Skein1024 { return &Skein1024{newSkeinDigest(16, 128)} }

func (d *Skein1024) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d, in, offset, length)
}
func (d *Skein1024) Update(b byte)                              { d.Write([]byte{b}) }
func (d *Skein1024) DoFinal(out []byte, offset int) (int, error) { return doFinal(d, out, offset) }
func (d *Skein1024) ComputeHash(in []byte) []byte                { return computeHash(d, in) }
func (d *Skein1024) Destroy()                                    { d.destroy() }
