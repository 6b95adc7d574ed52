package kdf

import (
	"hash"

	"github.com/cryptocex/cex/errs"
	"github.com/cryptocex/cex/mac"
)

// HKDFExtract implements RFC 5869's Extract step: PRK = HMAC(salt, ikm).
// An empty salt is replaced with a zero-filled block the length of the
// digest's output, as the RFC specifies.
func HKDFExtract(newHash func() hash.Hash, salt, ikm []byte) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, newHash().Size())
	}
	h, err := mac.NewHMAC(newHash, salt)
	if err != nil {
		return nil, err
	}
	defer h.Destroy()
	h.Write(ikm)
	return h.Sum(nil), nil
}

// HKDFExpand implements RFC 5869's Expand step, producing length bytes
// of output keying material from prk and an optional context/application
// specific info string.
func HKDFExpand(newHash func() hash.Hash, prk, info []byte, length int) ([]byte, error) {
	if length < 0 {
		return nil, errs.NewInvalidArgument("length", length, "must not be negative")
	}
	h, err := mac.NewHMAC(newHash, prk)
	if err != nil {
		return nil, err
	}
	defer h.Destroy()

	hashLen := newHash().Size()
	if length > 255*hashLen {
		return nil, errs.NewInvalidArgument("length", length, "exceeds HKDF's 255*HashLen limit")
	}

	out := make([]byte, 0, length+hashLen)
	var t []byte
	var counter byte = 1
	for len(out) < length {
		h.Reset()
		h.Write(t)
		h.Write(info)
		h.Write([]byte{counter})
		t = h.Sum(nil)
		out = append(out, t...)
		counter++
	}
	return out[:length], nil
}

// HKDF runs Extract then Expand in one call.
func HKDF(newHash func() hash.Hash, salt, ikm, info []byte, length int) ([]byte, error) {
	prk, err := HKDFExtract(newHash, salt, ikm)
	if err != nil {
		return nil, err
	}
	return HKDFExpand(newHash, prk, info, length)
}
