package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

func hashByName(name string) (func() hash.Hash, int, error) {
	switch name {
	case "SHA256":
		return sha256.New, sha256.Size, nil
	case "SHA384":
		return sha512.New384, sha512.Size384, nil
	case "SHA512":
		return sha512.New, sha512.Size, nil
	default:
		return nil, 0, ErrUnknownHash
	}
}

// HKDFExtract runs RFC 5869 HKDF-Extract with the named hash, returning a
// prk of length hashLen(hashName).
func HKDFExtract(hashName string, salt, ikm []byte) ([]byte, error) {
	newHash, _, err := hashByName(hashName)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt = make([]byte, 0)
	}
	mac := hmac.New(newHash, salt)
	mac.Write(ikm)
	return mac.Sum(nil), nil
}

// HKDFExpand runs RFC 5869 HKDF-Expand with the named hash, returning L
// bytes of output key material. L must be at most 255*hashLen.
func HKDFExpand(hashName string, prk, info []byte, length int) ([]byte, error) {
	newHash, hashLen, err := hashByName(hashName)
	if err != nil {
		return nil, err
	}
	if length > 255*hashLen {
		return nil, ErrExpandLen
	}

	reader := hkdf.Expand(newHash, prk, info)
	okm := make([]byte, length)
	if _, err := io.ReadFull(reader, okm); err != nil {
		return nil, err
	}
	return okm, nil
}
