package modes

import (
	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// CTR turns a block cipher into a stream cipher by encrypting a
// counter that increments once per block. Every block's keystream input
// is independent, so both directions parallelize without the
// chain-dependency CBC/CFB decrypt have.
type CTR struct {
	block BlockTransformer
	nonce []byte
}

// NewCTR wraps an already-keyed block cipher with an initial counter
// value the length of one block.
func NewCTR(block BlockTransformer, nonce []byte) (*CTR, error) {
	bs := block.BlockSize()
	if len(nonce) != bs {
		return nil, errs.NewInvalidArgument("nonce", len(nonce), "counter value must equal the block size")
	}
	n := make([]byte, bs)
	copy(n, nonce)
	return &CTR{block: block, nonce: n}, nil
}

// counterAt returns the block-size counter value for block index i,
// derived by adding i to the initial counter (wrapping at the top of
// the block like any other counter mode arithmetic). Each call is
// independent and side-effect-free, so concurrent workers can call it
// safely.
func (m *CTR) counterAt(i int) []byte {
	c := make([]byte, len(m.nonce))
	copy(c, m.nonce)
	util.AddBE(c, uint64(i))
	return c
}

// XORKeyStream encrypts or decrypts src into dst (the operation is
// identical in both directions) by splitting the block range across
// cfg's worker pool.
func (m *CTR) XORKeyStream(dst, src []byte, cfg ParallelConfig) error {
	bs := m.block.BlockSize()
	numFull := len(src) / bs
	tailLen := len(src) % bs
	numBlocks := numFull
	if tailLen > 0 {
		numBlocks++
	}

	err := runBlockJobs(cfg, numBlocks, func(i int) error {
		ctr := m.counterAt(i)
		stream := make([]byte, bs)
		if err := m.block.EncryptBlock(ctr, stream); err != nil {
			return err
		}
		off := i * bs
		n := bs
		if off+n > len(src) {
			n = len(src) - off
		}
		util.Xor(dst[off:off+n], src[off:off+n], stream[:n], n)
		return nil
	})
	return err
}
