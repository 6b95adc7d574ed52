package kdf

import (
	"hash"

	"golang.org/x/crypto/pbkdf2"

	"github.com/cryptocex/cex/errs"
)

// PBKDF2Params configures PBKDF2 key stretching.
type PBKDF2Params struct {
	// Iterations is the number of HMAC rounds. 100,000 or more is
	// recommended for password-derived keys.
	Iterations int
	// NewHash selects the underlying digest (e.g. sha256.New, or
	// func() hash.Hash { return digest.NewBlake512() }).
	NewHash func() hash.Hash
	// SaltSize is only consulted by callers that generate their own
	// salt; PBKDF2 itself takes salt as an explicit argument.
	SaltSize int
	// KeySize is the derived key length in bytes.
	KeySize int
}

// DefaultPBKDF2Params returns conservative defaults: 100,000 iterations,
// a 32-byte salt, and a 32-byte (AES-256-sized) output key. NewHash is
// left nil and must be set by the caller.
func DefaultPBKDF2Params() PBKDF2Params {
	return PBKDF2Params{Iterations: 100000, SaltSize: 32, KeySize: 32}
}

// Validate checks the parameter bounds before they reach pbkdf2.Key.
func (p *PBKDF2Params) Validate() error {
	if p.Iterations < 1 {
		return errs.NewInvalidArgument("Iterations", p.Iterations, "must be at least 1")
	}
	if p.NewHash == nil {
		return errs.NewInvalidArgument("NewHash", nil, "digest constructor must not be nil")
	}
	if p.KeySize < 1 {
		return errs.NewInvalidArgument("KeySize", p.KeySize, "must be at least 1")
	}
	return nil
}

// PBKDF2 derives a key from password and salt using golang.org/x/crypto/pbkdf2,
// which already implements RFC 8018's iterated-HMAC construction correctly
// over any hash.Hash constructor — including this module's own digests.
func PBKDF2(password, salt []byte, p PBKDF2Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return pbkdf2.Key(password, salt, p.Iterations, p.KeySize, p.NewHash), nil
}
