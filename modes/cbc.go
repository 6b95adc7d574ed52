package modes

import (
	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// CBC is cipher block chaining. Encryption is inherently sequential;
// decryption of block i only needs ciphertext blocks i-1 and i, so it
// can run across a worker pool.
type CBC struct {
	block BlockTransformer
	iv    []byte
}

// NewCBC wraps an already-keyed block cipher with an IV the length of
// one block.
func NewCBC(block BlockTransformer, iv []byte) (*CBC, error) {
	bs := block.BlockSize()
	if len(iv) != bs {
		return nil, errs.NewInvalidArgument("iv", len(iv), "IV must equal the block size")
	}
	ivCopy := make([]byte, bs)
	copy(ivCopy, iv)
	return &CBC{block: block, iv: ivCopy}, nil
}

// Encrypt chains block by block; dst and src must be block-size
// multiples of equal length.
func (m *CBC) Encrypt(dst, src []byte) error {
	bs := m.block.BlockSize()
	if len(src)%bs != 0 {
		return errs.NewInvalidArgument("length", len(src), "CBC input must be a multiple of the block size")
	}
	prev := m.iv
	for off := 0; off < len(src); off += bs {
		in := make([]byte, bs)
		util.Xor(in, src[off:off+bs], prev, bs)
		if err := m.block.EncryptBlock(in, dst[off:off+bs]); err != nil {
			return err
		}
		prev = dst[off : off+bs]
	}
	return nil
}

// Decrypt runs every block's cipher transform through cfg's worker pool
// (each only needs its own and the preceding ciphertext block, both of
// which are read-only inputs), then XORs in the previous ciphertext
// block sequentially.
func (m *CBC) Decrypt(dst, src []byte, cfg ParallelConfig) error {
	bs := m.block.BlockSize()
	if len(src)%bs != 0 {
		return errs.NewInvalidArgument("length", len(src), "CBC input must be a multiple of the block size")
	}
	numBlocks := len(src) / bs

	err := runBlockJobs(cfg, numBlocks, func(i int) error {
		off := i * bs
		return m.block.DecryptBlock(src[off:off+bs], dst[off:off+bs])
	})
	if err != nil {
		return err
	}

	prev := m.iv
	for i := 0; i < numBlocks; i++ {
		off := i * bs
		util.XorBlock(dst[off:off+bs], prev, bs)
		prev = src[off : off+bs]
	}
	return nil
}
