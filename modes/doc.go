// Package modes implements block-cipher modes of operation: ECB, CBC,
// CFB, OFB and CTR, each built over any cipher satisfying
// BlockTransformer (a *rijndael.Cipher in either direction).
package modes

// BlockTransformer is the minimal block-cipher surface every mode in
// this package needs.
type BlockTransformer interface {
	BlockSize() int
	EncryptBlock(in, out []byte) error
	DecryptBlock(in, out []byte) error
}
