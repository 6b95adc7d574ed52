package util

import "encoding/binary"

// BE32 reads a big-endian uint32 from b at the given offset.
func BE32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

// PutBE32 writes v as a big-endian uint32 into b at the given offset.
func PutBE32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

// BE64 reads a big-endian uint64 from b at the given offset.
func BE64(b []byte, off int) uint64 {
	return binary.BigEndian.Uint64(b[off:])
}

// PutBE64 writes v as a big-endian uint64 into b at the given offset.
func PutBE64(b []byte, off int, v uint64) {
	binary.BigEndian.PutUint64(b[off:], v)
}

// LE32 reads a little-endian uint32 from b at the given offset.
func LE32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

// PutLE32 writes v as a little-endian uint32 into b at the given offset.
func PutLE32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}

// LE64 reads a little-endian uint64 from b at the given offset.
func LE64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}

// PutLE64 writes v as a little-endian uint64 into b at the given offset.
func PutLE64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:], v)
}

// IncrementBE treats ctr as a big-endian multi-precision integer and adds 1,
// wrapping at the top of the block (all-0xFF wraps to all-0x00). This is the
// counter update rule of the BCG and DCG generators; CTR mode uses AddBE.
func IncrementBE(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}

// AddBE adds n to ctr in place, treating ctr as a big-endian
// multi-precision integer and wrapping at the top of the block. Unlike
// calling IncrementBE n times, this runs in time proportional to the
// block size rather than to n, which matters for CTR mode over large
// messages.
func AddBE(ctr []byte, n uint64) {
	carry := n
	for i := len(ctr) - 1; i >= 0 && carry != 0; i-- {
		sum := uint64(ctr[i]) + carry
		ctr[i] = byte(sum)
		carry = sum >> 8
	}
}
