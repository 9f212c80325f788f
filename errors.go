package hpke

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrUnsupportedSuite is returned when a (kem, kdf, aead) triple is
	// not one of the registered combinations.
	ErrUnsupportedSuite = errors.New("hpke: unsupported ciphersuite")

	// ErrBadMode is returned for a mode value outside base/psk/auth/psk_auth.
	ErrBadMode = errors.New("hpke: bad mode")

	// ErrBadPskUsage is returned when psk/psk_id presence is inconsistent
	// with the requested mode.
	ErrBadPskUsage = errors.New("hpke: psk usage inconsistent with mode")

	// ErrBadInput is returned for malformed arguments that aren't keys:
	// a nil key pair, a non-positive GREASE ciphertext length, an
	// unparsable suite string, and the like.
	ErrBadInput = errors.New("hpke: bad input")

	// ErrBadKey is returned when a public or private key does not decode
	// to a valid point or scalar for its KEM.
	ErrBadKey = errors.New("hpke: bad key")

	// ErrBufferTooSmall is returned when a caller-provided buffer cannot
	// hold the requested output.
	ErrBufferTooSmall = errors.New("hpke: buffer too small")

	// ErrOpenFailed is returned when AEAD authentication fails. It never
	// distinguishes a tampered ciphertext from a wrong key.
	ErrOpenFailed = errors.New("hpke: open failed")

	// ErrInternalCrypto wraps unexpected failures from underlying
	// cryptographic libraries that should be unreachable given prior
	// validation (e.g. rand.Reader returning an error).
	ErrInternalCrypto = errors.New("hpke: internal cryptographic error")
)

// HPKEError is implemented by every error type this package returns with
// extra context attached.
type HPKEError interface {
	error
	HPKEError() // marker method
}

// SuiteError reports which ciphersuite triple failed validation and why.
type SuiteError struct {
	KemID, KdfID, AeadID uint16
	Err                  error
}

func (e *SuiteError) Error() string {
	return fmt.Sprintf("hpke: suite (kem=%#04x, kdf=%#04x, aead=%#04x): %v", e.KemID, e.KdfID, e.AeadID, e.Err)
}

// Unwrap returns the underlying error.
func (e *SuiteError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *SuiteError) Is(target error) bool { return errors.Is(e.Err, target) }

// HPKEError implements the HPKEError interface.
func (e *SuiteError) HPKEError() {}

// KeyError reports which key operation failed and why.
type KeyError struct {
	KemID uint16
	Stage string // "import", "generate", "encap", "key_schedule"
	Err   error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("hpke: key %s (kem=%#04x): %v", e.Stage, e.KemID, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool { return errors.Is(e.Err, target) }

// HPKEError implements the HPKEError interface.
func (e *KeyError) HPKEError() {}
