package hpke

import (
	"github.com/Neimhin/hpke/internal/keyimport"
	"github.com/Neimhin/hpke/internal/primitives"
	"github.com/Neimhin/hpke/internal/registry"
)

// KeyPair is a raw-encoded HPKE key pair: an uncompressed SEC1 point and
// big-endian scalar for NIST curves, or fixed-length encodings for
// X25519/X448.
type KeyPair struct {
	Public  []byte
	Private []byte
}

// GenerateKeyPair generates a fresh key pair for suite.KemID.
func GenerateKeyPair(suite Suite) (*KeyPair, error) {
	if _, err := registry.LookupKEM(suite.KemID); err != nil {
		return nil, &KeyError{KemID: suite.KemID, Stage: "generate", Err: err}
	}
	priv, pub, err := primitives.GenerateKeyPair(suite.KemID)
	if err != nil {
		return nil, &KeyError{KemID: suite.KemID, Stage: "generate", Err: err}
	}
	return &KeyPair{Public: pub, Private: priv}, nil
}

// GenerateKeyPairRaw is GenerateKeyPair without the KeyPair wrapper, for
// callers that store public and private halves separately.
func GenerateKeyPairRaw(suite Suite) (pub, priv []byte, err error) {
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		return nil, nil, err
	}
	return kp.Public, kp.Private, nil
}

// ImportPrivateKey decodes priv for kemID, trying raw encoding, PEM, and
// PEM-armour-restored-then-retried in turn (see internal/keyimport for the
// fallback chain's rationale). pub may be nil; if supplied, it is carried
// through unchanged rather than re-derived.
func ImportPrivateKey(kemID uint16, priv []byte, pub []byte) (*KeyPair, error) {
	res, err := keyimport.Import(nil, kemID, priv, pub)
	if err != nil {
		return nil, &KeyError{KemID: kemID, Stage: "import", Err: ErrBadKey}
	}
	if res.Pub == nil {
		derived, err := primitives.RawToPub(kemID, res.Priv)
		if err != nil {
			return nil, &KeyError{KemID: kemID, Stage: "import", Err: err}
		}
		res.Pub = derived
	}
	return &KeyPair{Public: res.Pub, Private: res.Priv}, nil
}
