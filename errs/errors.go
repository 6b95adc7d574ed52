// Package errs defines the five error kinds every primitive boundary in
// this module raises: InvalidArgument, InvalidState,
// UnsupportedConfiguration, EntropyUnavailable and Internal. It is kept
// separate from the rijndael/digest/mac/kdf/drbg/entropy packages so that
// all of them can depend on it without any import cycles, the same role
// encryptfs's errors.go plays for that single-package repo.
package errs

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports a wrong-length key/IV/buffer, a zero
// iteration count, or an input smaller than required.
type InvalidArgumentError struct {
	Field   string
	Value   any
	Message string
	Err     error
}

func (e *InvalidArgumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

// InvalidStateError reports a call made before Initialize, a second
// Destroy, or any operation after Destroy.
type InvalidStateError struct {
	Op      string
	Message string
	Err     error
}

func (e *InvalidStateError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("invalid state: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("invalid state: %s", e.Message)
}

func (e *InvalidStateError) Unwrap() error { return e.Err }

// UnsupportedConfigurationError reports an unknown digest/cipher enumerant,
// an illegal round count, or a block size outside {16, 32}.
type UnsupportedConfigurationError struct {
	Field   string
	Value   any
	Message string
}

func (e *UnsupportedConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unsupported configuration: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("unsupported configuration: %s", e.Message)
}

// EntropyUnavailableError reports a platform entropy provider that is
// unavailable, or a hardware RNG that exceeded its retry budget.
type EntropyUnavailableError struct {
	Provider string
	Message  string
	Err      error
}

func (e *EntropyUnavailableError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("entropy unavailable: %s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("entropy unavailable: %s", e.Message)
}

func (e *EntropyUnavailableError) Unwrap() error { return e.Err }

// InternalError reports table corruption or an unreachable branch. Fatal;
// never recovered at the primitive boundary.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}

func (e *InternalError) Unwrap() error { return e.Err }

// Sentinel errors kept for simple errors.Is comparisons alongside the typed
// errors above.
var (
	ErrNotInitialized   = errors.New("primitive not initialized")
	ErrAlreadyDestroyed = errors.New("object already destroyed")
	ErrAuthFailed       = errors.New("authentication tag mismatch")
	ErrShortBuffer      = errors.New("buffer shorter than required")
)

// NewInvalidArgument creates a new InvalidArgumentError.
func NewInvalidArgument(field string, value any, message string) error {
	return &InvalidArgumentError{Field: field, Value: value, Message: message}
}

// NewInvalidState creates a new InvalidStateError. err may be nil.
func NewInvalidState(op, message string, err error) error {
	return &InvalidStateError{Op: op, Message: message, Err: err}
}

// NewUnsupportedConfiguration creates a new UnsupportedConfigurationError.
func NewUnsupportedConfiguration(field string, value any, message string) error {
	return &UnsupportedConfigurationError{Field: field, Value: value, Message: message}
}

// NewEntropyUnavailable creates a new EntropyUnavailableError.
func NewEntropyUnavailable(provider, message string, err error) error {
	return &EntropyUnavailableError{Provider: provider, Message: message, Err: err}
}

// NewInternal creates a new InternalError.
func NewInternal(message string, err error) error {
	return &InternalError{Message: message, Err: err}
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// IsInvalidState reports whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// IsUnsupportedConfiguration reports whether err is an
// UnsupportedConfigurationError.
func IsUnsupportedConfiguration(err error) bool {
	var e *UnsupportedConfigurationError
	return errors.As(err, &e)
}

// IsEntropyUnavailable reports whether err is an EntropyUnavailableError.
func IsEntropyUnavailable(err error) bool {
	var e *EntropyUnavailableError
	return errors.As(err, &e)
}

// IsInternal reports whether err is an InternalError.
func IsInternal(err error) bool {
	var e *InternalError
	return errors.As(err, &e)
}
