package hpke

import (
	"github.com/Neimhin/hpke/internal/registry"
	"github.com/Neimhin/hpke/internal/schedule"
)

// KEM codepoints (RFC 9180 §7.1), re-exported from the internal registry so
// callers never import internal packages to build a Suite.
const (
	KEMP256   = registry.KEMP256
	KEMP384   = registry.KEMP384
	KEMP521   = registry.KEMP521
	KEMX25519 = registry.KEMX25519
	KEMX448   = registry.KEMX448
)

// KDF codepoints (RFC 9180 §7.2).
const (
	KDFHKDFSHA256 = registry.KDFHKDFSHA256
	KDFHKDFSHA384 = registry.KDFHKDFSHA384
	KDFHKDFSHA512 = registry.KDFHKDFSHA512
)

// AEAD codepoints (RFC 9180 §7.3).
const (
	AEADAES128GCM        = registry.AEADAES128GCM
	AEADAES256GCM        = registry.AEADAES256GCM
	AEADChaCha20Poly1305 = registry.AEADChaCha20Poly1305
)

// Mode is one of the four RFC 9180 §5.1 operating modes.
type Mode = schedule.Mode

// The four operating modes, re-exported from internal/schedule.
const (
	ModeBase    = schedule.ModeBase
	ModePSK     = schedule.ModePSK
	ModeAuth    = schedule.ModeAuth
	ModePSKAuth = schedule.ModePSKAuth
)

// Suite names a KEM, a KDF, and an AEAD: the three algorithms an HPKE
// context is built from.
type Suite struct {
	KemID  uint16
	KdfID  uint16
	AeadID uint16
}

// SuiteSupported reports whether s names three registered codepoints. It
// does not imply the triple is sensible to combine (RFC 9180 places no
// restriction on which KEM/KDF/AEAD may be paired).
func SuiteSupported(s Suite) bool {
	return registry.Supported(s.KemID, s.KdfID, s.AeadID)
}

func validateSuite(s Suite) error {
	if !SuiteSupported(s) {
		return &SuiteError{KemID: s.KemID, KdfID: s.KdfID, AeadID: s.AeadID, Err: ErrUnsupportedSuite}
	}
	return nil
}
