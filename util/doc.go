// Package util collects the small, shared byte-level helpers that every
// layer of cex depends on: endian conversion, fixed rotates, constant-time
// XOR over equal-length blocks, and secure wipe.
//
// Nothing here is algorithm-specific. Keeping it in one package means the
// rotate and endian helpers used by Rijndael's key schedule are the exact
// same functions used by Keccak's lane rotation and Skein's word packing,
// rather than three slightly divergent copies.
package util
