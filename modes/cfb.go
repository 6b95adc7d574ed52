package modes

import (
	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// CFB is full-block cipher feedback. Like CBC, encryption is sequential
// and decryption can run in parallel since each block's keystream input
// is the previous block's ciphertext, a read-only value.
type CFB struct {
	block BlockTransformer
	iv    []byte
}

// NewCFB wraps an already-keyed block cipher with an IV the length of
// one block.
func NewCFB(block BlockTransformer, iv []byte) (*CFB, error) {
	bs := block.BlockSize()
	if len(iv) != bs {
		return nil, errs.NewInvalidArgument("iv", len(iv), "IV must equal the block size")
	}
	ivCopy := make([]byte, bs)
	copy(ivCopy, iv)
	return &CFB{block: block, iv: ivCopy}, nil
}

// Encrypt produces ciphertext blocks sequentially; src need not be a
// full multiple of the block size, the final partial block is
// keystream-XORed like any stream cipher tail.
func (m *CFB) Encrypt(dst, src []byte) error {
	bs := m.block.BlockSize()
	prev := m.iv
	stream := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		if err := m.block.EncryptBlock(prev, stream); err != nil {
			return err
		}
		n := bs
		if off+n > len(src) {
			n = len(src) - off
		}
		util.Xor(dst[off:off+n], src[off:off+n], stream[:n], n)
		if n == bs {
			prev = dst[off : off+bs]
		} else {
			prev = stream[:bs]
		}
	}
	return nil
}

// Decrypt recovers every full block's keystream from the corresponding
// (read-only) ciphertext input via cfg's worker pool, then XORs
// sequentially.
func (m *CFB) Decrypt(dst, src []byte, cfg ParallelConfig) error {
	bs := m.block.BlockSize()
	numFull := len(src) / bs
	tailLen := len(src) % bs

	feedback := make([][]byte, numFull+1)
	feedback[0] = m.iv
	for i := 0; i < numFull; i++ {
		feedback[i+1] = src[i*bs : (i+1)*bs]
	}

	streams := make([][]byte, numFull)
	err := runBlockJobs(cfg, numFull, func(i int) error {
		streams[i] = make([]byte, bs)
		return m.block.EncryptBlock(feedback[i], streams[i])
	})
	if err != nil {
		return err
	}
	for i := 0; i < numFull; i++ {
		util.Xor(dst[i*bs:(i+1)*bs], src[i*bs:(i+1)*bs], streams[i], bs)
	}

	if tailLen > 0 {
		tailStream := make([]byte, bs)
		if err := m.block.EncryptBlock(feedback[numFull], tailStream); err != nil {
			return err
		}
		off := numFull * bs
		util.Xor(dst[off:off+tailLen], src[off:off+tailLen], tailStream[:tailLen], tailLen)
	}
	return nil
}
