// Package primitives adapts stdlib and third-party cryptographic libraries
// to the fixed contracts the HPKE engine needs: AEAD seal/open, HKDF
// extract/expand, ECDH derive, KEM keygen, and raw public-key import.
//
// Every function here is a thin wrapper with length validation; none of it
// knows about HPKE labels, modes, or suites — that belongs to the packages
// built on top of this one (internal/labeled, internal/kemengine,
// internal/schedule).
package primitives
