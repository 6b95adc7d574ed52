// Package entropy implements entropy providers: CSP (the OS CSPRNG),
// RDP (hardware RNG, gated on CPU feature detection) and ECP (a
// multi-source entropy collector feeding an extended-Rijndael CTR
// generator), grounded on CEX's CSP/RDP/ECP.
package entropy

// Provider is the shape every entropy source in this package satisfies.
type Provider interface {
	// IsAvailable reports whether this provider can be used on the
	// current system.
	IsAvailable() bool
	// GetBytes fills out with entropy.
	GetBytes(out []byte) error
}
