package modes

import (
	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/util"
)

// OFB is output feedback: the keystream is generated by repeatedly
// re-encrypting the cipher's own output, independent of the data being
// encrypted. Encrypt and Decrypt are the same XOR-with-keystream
// operation.
type OFB struct {
	block BlockTransformer
	iv    []byte
}

// NewOFB wraps an already-keyed block cipher with an IV the length of
// one block.
func NewOFB(block BlockTransformer, iv []byte) (*OFB, error) {
	bs := block.BlockSize()
	if len(iv) != bs {
		return nil, errs.NewInvalidArgument("iv", len(iv), "IV must equal the block size")
	}
	ivCopy := make([]byte, bs)
	copy(ivCopy, iv)
	return &OFB{block: block, iv: ivCopy}, nil
}

// XORKeyStream runs the OFB keystream (sequential by construction,
// since each block's input is the cipher's own prior output) across
// src, writing to dst. Used for both directions.
func (m *OFB) XORKeyStream(dst, src []byte) error {
	bs := m.block.BlockSize()
	feedback := make([]byte, bs)
	copy(feedback, m.iv)
	stream := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		if err := m.block.EncryptBlock(feedback, stream); err != nil {
			return err
		}
		copy(feedback, stream)
		n := bs
		if off+n > len(src) {
			n = len(src) - off
		}
		util.Xor(dst[off:off+n], src[off:off+n], stream[:n], n)
	}
	return nil
}
