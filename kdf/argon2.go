package kdf

import (
	"golang.org/x/crypto/argon2"

	"github.com/cryptocex/cex/errs"
)

// Argon2idParams configures the supplemental Argon2id password hash,
// offered alongside PBKDF2 for callers deriving keys from low-entropy
// passphrases rather than from existing key material.
type Argon2idParams struct {
	// Memory is the memory cost in KiB.
	Memory uint32
	// Iterations is the time cost.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
	// SaltSize is only consulted by callers that generate their own salt.
	SaltSize int
	// KeySize is the derived key length in bytes.
	KeySize int
}

// DefaultArgon2idParams returns the parameters the Argon2 RFC draft
// recommends for interactive login: 64 MiB, 3 passes, 4 lanes.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{Memory: 64 * 1024, Iterations: 3, Parallelism: 4, SaltSize: 32, KeySize: 32}
}

// Validate checks the parameter bounds before they reach argon2.IDKey.
func (p *Argon2idParams) Validate() error {
	if p.Memory < 8*uint32(p.Parallelism) {
		return errs.NewInvalidArgument("Memory", p.Memory, "must be at least 8*Parallelism KiB")
	}
	if p.Iterations < 1 {
		return errs.NewInvalidArgument("Iterations", p.Iterations, "must be at least 1")
	}
	if p.Parallelism < 1 {
		return errs.NewInvalidArgument("Parallelism", p.Parallelism, "must be at least 1")
	}
	if p.KeySize < 1 {
		return errs.NewInvalidArgument("KeySize", p.KeySize, "must be at least 1")
	}
	return nil
}

// Argon2id derives a key from password and salt using
// golang.org/x/crypto/argon2's memory-hard Argon2id construction.
func Argon2id(password, salt []byte, p Argon2idParams) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return argon2.IDKey(password, salt, p.Iterations, p.Memory, p.Parallelism, uint32(p.KeySize)), nil
}
