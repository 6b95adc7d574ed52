package entropy

import (
	"crypto/rand"

	"github.com/cryptocex/cex/errs"
)

// CSP wraps the operating system's CSPRNG (crypto/rand). ECP draws from
// it; the DRBGs in this module take their seed material from the caller.
type CSP struct{}

// NewCSP creates a CSP provider. It is always available.
func NewCSP() *CSP { return &CSP{} }

// IsAvailable always reports true: crypto/rand blocks rather than fails
// on a healthy OS.
func (c *CSP) IsAvailable() bool { return true }

// GetBytes fills out with OS-sourced randomness.
func (c *CSP) GetBytes(out []byte) error {
	if len(out) == 0 {
		return errs.NewInvalidArgument("out", 0, "buffer must be at least 1 byte")
	}
	_, err := rand.Read(out)
	if err != nil {
		return errs.NewEntropyUnavailable("CSP", "OS CSPRNG read failed", err)
	}
	return nil
}
