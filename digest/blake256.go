package digest

import (
	"github.com/cryptocex/cex/util"
)

// Blake256 implements the Blake-256 hash: a 14-round ChaCha-style
// permutation over a 16-word 32-bit state, big-endian message loading,
// and dual-padding-byte finalization.
type Blake256 struct {
	h         [8]uint32
	salt      [4]uint32
	t0, t1    uint32
	buf       [64]byte
	nbuf      int
	destroyed bool
}

// NewBlake256 creates a new Blake-256 digest with a zero salt.
func NewBlake256() *Blake256 {
	d := &Blake256{}
	d.Reset()
	return d
}

func (d *Blake256) Size() int      { return 32 }
func (d *Blake256) BlockSize() int { return 64 }

func (d *Blake256) Reset() {
	d.h = blake256IV
	d.salt = [4]uint32{}
	d.t0, d.t1 = 0, 0
	d.nbuf = 0
}

func (d *Blake256) Write(p []byte) (int, error) {
	n := len(p)
	if d.nbuf > 0 {
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
		if d.nbuf == 64 {
			d.compress(d.buf[:], false)
			d.nbuf = 0
		}
	}
	for len(p) >= 64 {
		d.compress(p[:64], false)
		p = p[64:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return n, nil
}

// compress absorbs one full 64-byte block of real message data, advancing
// the bit counter by 512 (one block's worth of real bits) before mixing.
func (d *Blake256) compress(block []byte, nullt bool) {
	d.t0 += 512
	if d.t0 < 512 {
		d.t1++
	}
	d.compressCore(block, nullt)
}

// compressFinal absorbs a padded closing block. Unlike compress, the
// counter is set directly to totalBits (the true message bit length)
// rather than incremented by the block's byte capacity: the closing
// block(s) contain padding, not 512 real bits, so advancing by 512 would
// inject the wrong counter value into v[12..15]. nullt still freezes the
// counter (skips the injection entirely) for a block with no real message
// content.
func (d *Blake256) compressFinal(block []byte, nullt bool, totalBits uint64) {
	d.t0 = uint32(totalBits)
	d.t1 = uint32(totalBits >> 32)
	d.compressCore(block, nullt)
}

func (d *Blake256) compressCore(block []byte, nullt bool) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = util.BE32(block, i*4)
	}

	v := [16]uint32{
		d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7],
		d.salt[0] ^ blake256Const[0], d.salt[1] ^ blake256Const[1],
		d.salt[2] ^ blake256Const[2], d.salt[3] ^ blake256Const[3],
		blake256Const[4], blake256Const[5], blake256Const[6], blake256Const[7],
	}
	if !nullt {
		v[12] ^= d.t0
		v[13] ^= d.t0
		v[14] ^= d.t1
		v[15] ^= d.t1
	}

	g := func(r, i int, a, b, c, dd *uint32) {
		sA := blakeSigma[r%10][2*i]
		sB := blakeSigma[r%10][2*i+1]
		*a = *a + *b + (m[sA] ^ blake256Const[sB])
		*dd = util.RotR32(*dd^*a, 16)
		*c = *c + *dd
		*b = util.RotR32(*b^*c, 12)
		*a = *a + *b + (m[sB] ^ blake256Const[sA])
		*dd = util.RotR32(*dd^*a, 8)
		*c = *c + *dd
		*b = util.RotR32(*b^*c, 7)
	}

	for r := 0; r < 14; r++ {
		g(r, 0, &v[0], &v[4], &v[8], &v[12])
		g(r, 1, &v[1], &v[5], &v[9], &v[13])
		g(r, 2, &v[2], &v[6], &v[10], &v[14])
		g(r, 3, &v[3], &v[7], &v[11], &v[15])
		g(r, 4, &v[0], &v[5], &v[10], &v[15])
		g(r, 5, &v[1], &v[6], &v[11], &v[12])
		g(r, 6, &v[2], &v[7], &v[8], &v[13])
		g(r, 7, &v[3], &v[4], &v[9], &v[14])
	}

	d.h[0] ^= d.salt[0] ^ v[0] ^ v[8]
	d.h[1] ^= d.salt[1] ^ v[1] ^ v[9]
	d.h[2] ^= d.salt[2] ^ v[2] ^ v[10]
	d.h[3] ^= d.salt[3] ^ v[3] ^ v[11]
	d.h[4] ^= d.salt[0] ^ v[4] ^ v[12]
	d.h[5] ^= d.salt[1] ^ v[5] ^ v[13]
	d.h[6] ^= d.salt[2] ^ v[6] ^ v[14]
	d.h[7] ^= d.salt[3] ^ v[7] ^ v[15]
}

func (d *Blake256) Sum(b []byte) []byte {
	// Operate on a copy so Sum doesn't disturb state that Write might
	// still append to.
	cp := *d
	nbuf := cp.nbuf
	origBits := d.totalBits() // captured before any compression mutates the counter

	const nu byte = 0x01

	switch {
	case nbuf <= 54:
		pad := make([]byte, 0, 64-nbuf)
		pad = append(pad, 0x80)
		pad = append(pad, make([]byte, 54-nbuf)...)
		pad = append(pad, nu)
		pad = appendLength64(pad, origBits)
		cp.compressFinal(append(append([]byte{}, cp.buf[:nbuf]...), pad...), nbuf == 0, origBits)
	case nbuf == 55:
		combined := byte(0x80) | nu
		block := append(append([]byte{}, cp.buf[:55]...), combined)
		block = appendLength64(block, origBits)
		cp.compressFinal(block, false, origBits)
	default: // 56..63
		first := append(append([]byte{}, cp.buf[:nbuf]...), 0x80)
		first = append(first, make([]byte, 64-nbuf-1)...)
		cp.compressFinal(first, false, origBits)

		second := make([]byte, 0, 64)
		second = append(second, make([]byte, 55)...)
		second = append(second, nu)
		second = appendLength64(second, origBits)
		cp.compressFinal(second, true, origBits)
	}

	out := make([]byte, 32)
	for i := 0; i < 8; i++ {
		util.PutBE32(out, i*4, cp.h[i])
	}
	return append(b, out...)
}

// totalBits returns the total number of real message bits absorbed so far,
// including the bytes still sitting in the partial buffer.
func (d *Blake256) totalBits() uint64 {
	return (uint64(d.t1)<<32 | uint64(d.t0)) + uint64(d.nbuf)*8
}

func appendLength64(b []byte, bits uint64) []byte {
	var tmp [8]byte
	util.PutBE64(tmp[:], 0, bits)
	return append(b, tmp[:]...)
}

func (d *Blake256) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d, in, offset, length)
}
func (d *Blake256) Update(b byte)                              { d.Write([]byte{b}) }
func (d *Blake256) DoFinal(out []byte, offset int) (int, error) { return doFinal(d, out, offset) }
func (d *Blake256) ComputeHash(in []byte) []byte                { return computeHash(d, in) }
func (d *Blake256) Destroy() {
	if d.destroyed {
		return
	}
	d.h = [8]uint32{}
	d.buf = [64]byte{}
	d.destroyed = true
}
