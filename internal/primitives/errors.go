package primitives

import "errors"

var (
	// ErrKeyLen is returned when a key does not match the algorithm's key length.
	ErrKeyLen = errors.New("primitives: invalid key length")
	// ErrNonceLen is returned when a nonce does not match the algorithm's nonce length.
	ErrNonceLen = errors.New("primitives: invalid nonce length")
	// ErrAuthentication is returned when AEAD tag verification fails.
	ErrAuthentication = errors.New("primitives: authentication failed")
	// ErrUnknownAEAD is returned when Seal/Open is asked for an unregistered AEAD id.
	ErrUnknownAEAD = errors.New("primitives: unknown aead")
	// ErrUnknownHash is returned when an HKDF call names an unsupported hash.
	ErrUnknownHash = errors.New("primitives: unknown hash")
	// ErrExpandLen is returned when an HKDF-Expand output length exceeds 255*Nh.
	ErrExpandLen = errors.New("primitives: expand length too large")
	// ErrZeroSharedSecret is returned when an ECDH result is the all-zero point,
	// which RFC 9180 requires implementations to reject.
	ErrZeroSharedSecret = errors.New("primitives: ecdh produced a zero shared secret")
	// ErrBadPoint is returned when a peer public key does not decode to a
	// valid curve point.
	ErrBadPoint = errors.New("primitives: invalid curve point")
)
