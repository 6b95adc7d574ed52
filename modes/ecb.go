package modes

import "github.com/cryptocex/cex/errs"

// ECB encrypts or decrypts independently block by block. It leaks
// plaintext block equality and should only be used for legacy
// interoperability, never as a default.
type ECB struct {
	block BlockTransformer
}

// NewECB wraps an already-keyed block cipher for ECB-mode use.
func NewECB(block BlockTransformer) *ECB { return &ECB{block: block} }

func (m *ECB) checkLen(n int) error {
	bs := m.block.BlockSize()
	if n%bs != 0 {
		return errs.NewInvalidArgument("length", n, "ECB input must be a multiple of the block size")
	}
	return nil
}

// Encrypt writes len(src)-aligned ciphertext to dst.
func (m *ECB) Encrypt(dst, src []byte) error {
	if err := m.checkLen(len(src)); err != nil {
		return err
	}
	bs := m.block.BlockSize()
	for off := 0; off < len(src); off += bs {
		if err := m.block.EncryptBlock(src[off:off+bs], dst[off:off+bs]); err != nil {
			return err
		}
	}
	return nil
}

// Decrypt writes len(src)-aligned plaintext to dst.
func (m *ECB) Decrypt(dst, src []byte) error {
	if err := m.checkLen(len(src)); err != nil {
		return err
	}
	bs := m.block.BlockSize()
	for off := 0; off < len(src); off += bs {
		if err := m.block.DecryptBlock(src[off:off+bs], dst[off:off+bs]); err != nil {
			return err
		}
	}
	return nil
}
