package digest

import "github.com/cryptocex/cex/util"

// Blake512 implements the Blake-512 hash: the 16-round, 64-bit-word
// variant of Blake-256.
type Blake512 struct {
	h         [8]uint64
	salt      [4]uint64
	t         uint64 // total bits processed, compressed blocks only
	buf       [128]byte
	nbuf      int
	destroyed bool
}

// NewBlake512 creates a new Blake-512 digest with a zero salt.
func NewBlake512() *Blake512 {
	d := &Blake512{}
	d.Reset()
	return d
}

func (d *Blake512) Size() int      { return 64 }
func (d *Blake512) BlockSize() int { return 128 }

func (d *Blake512) Reset() {
	d.h = blake512IV
	d.salt = [4]uint64{}
	d.t = 0
	d.nbuf = 0
}

func (d *Blake512) Write(p []byte) (int, error) {
	n := len(p)
	if d.nbuf > 0 {
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
		if d.nbuf == 128 {
			d.compress(d.buf[:], false)
			d.nbuf = 0
		}
	}
	for len(p) >= 128 {
		d.compress(p[:128], false)
		p = p[128:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return n, nil
}

// compress absorbs one full 128-byte block of real message data, advancing
// the bit counter by 1024 (one block's worth of real bits) before mixing.
func (d *Blake512) compress(block []byte, nullt bool) {
	d.t += 1024
	d.compressCore(block, nullt)
}

// compressFinal absorbs a padded closing block with the counter set
// directly to totalBits, the true message bit length, instead of advanced
// by the block's byte capacity — the closing block(s) contain padding, not
// 1024 real bits. nullt still freezes the counter for a block with no real
// message content.
func (d *Blake512) compressFinal(block []byte, nullt bool, totalBits uint64) {
	d.t = totalBits
	d.compressCore(block, nullt)
}

func (d *Blake512) compressCore(block []byte, nullt bool) {
	var m [16]uint64
	for i := 0; i < 16; i++ {
		m[i] = util.BE64(block, i*8)
	}

	v := [16]uint64{
		d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7],
		d.salt[0] ^ blake512Const[0], d.salt[1] ^ blake512Const[1],
		d.salt[2] ^ blake512Const[2], d.salt[3] ^ blake512Const[3],
		blake512Const[4], blake512Const[5], blake512Const[6], blake512Const[7],
	}
	if !nullt {
		v[12] ^= d.t
		v[13] ^= d.t
		v[14] ^= 0
		v[15] ^= 0
	}

	g := func(r, i int, a, b, c, dd *uint64) {
		sA := blakeSigma[r%10][2*i]
		sB := blakeSigma[r%10][2*i+1]
		*a = *a + *b + (m[sA] ^ blake512Const[sB])
		*dd = util.RotR64(*dd^*a, 32)
		*c = *c + *dd
		*b = util.RotR64(*b^*c, 25)
		*a = *a + *b + (m[sB] ^ blake512Const[sA])
		*dd = util.RotR64(*dd^*a, 16)
		*c = *c + *dd
		*b = util.RotR64(*b^*c, 11)
	}

	for r := 0; r < 16; r++ {
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

func (d *Blake512) totalBits() uint64 { return d.t + uint64(d.nbuf)*8 }

func (d *Blake512) Sum(b []byte) []byte {
	cp := *d
	nbuf := cp.nbuf
	origBits := d.totalBits()

	const nu byte = 0x01

	appendLen := func(b []byte, bits uint64) []byte {
		b = append(b, make([]byte, 8)...) // high 64 bits of the 128-bit length, always zero here
		var lo [8]byte
		util.PutBE64(lo[:], 0, bits)
		return append(b, lo[:]...)
	}

	switch {
	case nbuf <= 110:
		pad := make([]byte, 0, 128-nbuf)
		pad = append(pad, 0x80)
		pad = append(pad, make([]byte, 110-nbuf)...)
		pad = append(pad, nu)
		pad = appendLen(pad, origBits)
		cp.compressFinal(append(append([]byte{}, cp.buf[:nbuf]...), pad...), nbuf == 0, origBits)
	case nbuf == 111:
		combined := byte(0x80) | nu
		block := append(append([]byte{}, cp.buf[:111]...), combined)
		block = appendLen(block, origBits)
		cp.compressFinal(block, false, origBits)
	default: // 112..127
		first := append(append([]byte{}, cp.buf[:nbuf]...), 0x80)
		first = append(first, make([]byte, 128-nbuf-1)...)
		cp.compressFinal(first, false, origBits)

		second := make([]byte, 0, 128)
		second = append(second, make([]byte, 111)...)
		second = append(second, nu)
		second = appendLen(second, origBits)
		cp.compressFinal(second, true, origBits)
	}

	out := make([]byte, 64)
	for i := 0; i < 8; i++ {
		util.PutBE64(out, i*8, cp.h[i])
	}
	return append(b, out...)
}

func (d *Blake512) BlockUpdate(in []byte, offset, length int) error {
	return blockUpdate(d, in, offset, length)
}
func (d *Blake512) Update(b byte)                              { d.Write([]byte{b}) }
func (d *Blake512) DoFinal(out []byte, offset int) (int, error) { return doFinal(d, out, offset) }
func (d *Blake512) ComputeHash(in []byte) []byte                { return computeHash(d, in) }
func (d *Blake512) Destroy() {
	if d.destroyed {
		return
	}
	d.h = [8]uint64{}
	d.buf = [128]byte{}
	d.destroyed = true
}
