package digest

import (
	"hash"

	"github.com/cryptocex/cex/errs"
)

// blockUpdate is the shared BlockUpdate implementation: every digest wraps
// it around its own Write.
func blockUpdate(h hash.Hash, in []byte, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(in) {
		return errs.NewInvalidArgument("offset/length", nil, "range out of bounds for input buffer")
	}
	if length == 0 {
		return nil
	}
	h.Write(in[offset : offset+length])
	return nil
}

// doFinal is the shared DoFinal implementation: Sum then Reset, so a
// digest is ready for reuse immediately after finalizing.
func doFinal(h hash.Hash, out []byte, offset int) (int, error) {
	size := h.Size()
	if offset < 0 || offset+size > len(out) {
		return 0, errs.NewInvalidArgument("out", nil, "output buffer too small for digest size")
	}
	sum := h.Sum(nil)
	n := copy(out[offset:], sum)
	h.Reset()
	return n, nil
}

// computeHash is the shared one-shot ComputeHash implementation.
func computeHash(h hash.Hash, in []byte) []byte {
	h.Reset()
	h.Write(in)
	sum := h.Sum(nil)
	h.Reset()
	return sum
}
