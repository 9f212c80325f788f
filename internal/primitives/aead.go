package primitives

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/Neimhin/hpke/internal/registry"
)

func newAEAD(id uint16, key []byte) (cipher.AEAD, error) {
	info, err := registry.LookupAEAD(id)
	if err != nil {
		return nil, ErrUnknownAEAD
	}
	if len(key) != info.KeyLen {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrKeyLen, len(key), info.KeyLen)
	}

	switch id {
	case registry.AEADAES128GCM, registry.AEADAES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case registry.AEADChaCha20Poly1305:
		return chacha20poly1305.New(key)
	default:
		return nil, ErrUnknownAEAD
	}
}

// AEADSeal seals pt under key/nonce/aad for the AEAD named by id, returning
// ciphertext||tag. Fails on key/nonce length mismatch.
func AEADSeal(id uint16, key, nonce, aad, pt []byte) ([]byte, error) {
	info, err := registry.LookupAEAD(id)
	if err != nil {
		return nil, ErrUnknownAEAD
	}
	if len(nonce) != info.NonceLen {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrNonceLen, len(nonce), info.NonceLen)
	}
	a, err := newAEAD(id, key)
	if err != nil {
		return nil, err
	}
	return a.Seal(nil, nonce, pt, aad), nil
}

// AEADOpen opens ct (ciphertext||tag) under key/nonce/aad for the AEAD named
// by id. Any authentication failure (including a ct shorter than the tag)
// is collapsed to ErrAuthentication; a wrong nonce or key length returns
// ErrNonceLen or ErrKeyLen instead, so malformed parameters stay
// distinguishable from a tag mismatch.
func AEADOpen(id uint16, key, nonce, aad, ct []byte) ([]byte, error) {
	info, err := registry.LookupAEAD(id)
	if err != nil {
		return nil, ErrUnknownAEAD
	}
	if len(nonce) != info.NonceLen {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrNonceLen, len(nonce), info.NonceLen)
	}
	a, err := newAEAD(id, key)
	if err != nil {
		return nil, err
	}
	pt, err := a.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, ErrAuthentication
	}
	return pt, nil
}
