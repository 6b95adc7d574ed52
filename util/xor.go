package util

// XorBlock XORs src into dst in place over n bytes. Both slices must have at
// least n bytes available. The loop has no data-dependent branches or
// lookups, keeping it constant-time for use in the block cipher and MAC
// cores.
func XorBlock(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// Xor writes dst[i] = a[i] ^ b[i] for i in [0, n). dst may alias a or b.
func Xor(dst, a, b []byte, n int) {
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}
