package primitives

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x448"

	"github.com/Neimhin/hpke/internal/registry"
)

// randReader is the CSPRNG source for ephemeral keygen. Overridable for
// deterministic tests via SetRandReaderForTesting.
var randReader io.Reader = rand.Reader

func nistCurve(kemID uint16) (ecdh.Curve, error) {
	switch kemID {
	case registry.KEMP256:
		return ecdh.P256(), nil
	case registry.KEMP384:
		return ecdh.P384(), nil
	case registry.KEMP521:
		return ecdh.P521(), nil
	default:
		return nil, fmt.Errorf("primitives: %#x is not a NIST curve kem", kemID)
	}
}

// GenerateKeyPair generates an ephemeral or long-term key pair for kemID,
// returning the raw private scalar and the encoded public key (uncompressed
// SEC1 point for NIST curves, fixed-length encoding for X25519/X448).
func GenerateKeyPair(kemID uint16) (priv, pub []byte, err error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return nil, nil, err
	}

	switch info.KeyType {
	case registry.KeyTypeNIST:
		curve, err := nistCurve(kemID)
		if err != nil {
			return nil, nil, err
		}
		sk, err := curve.GenerateKey(randReader)
		if err != nil {
			return nil, nil, err
		}
		return sk.Bytes(), sk.PublicKey().Bytes(), nil

	case registry.KeyTypeMontgomery:
		if kemID == registry.KEMX25519 {
			sk, err := ecdh.X25519().GenerateKey(randReader)
			if err != nil {
				return nil, nil, err
			}
			return sk.Bytes(), sk.PublicKey().Bytes(), nil
		}
		// X448
		var sk, pk x448.Key
		if _, err := io.ReadFull(randReader, sk[:]); err != nil {
			return nil, nil, err
		}
		x448.KeyGen(&pk, &sk)
		return append([]byte(nil), sk[:]...), append([]byte(nil), pk[:]...), nil

	default:
		return nil, nil, fmt.Errorf("primitives: unhandled key type for kem %#x", kemID)
	}
}

// ECDH derives the shared point z between priv (raw scalar) and peerPub
// (encoded public key) for the named KEM. For NIST curves z is the
// x-coordinate only; for X25519/X448 it is the full derived value.
func ECDH(kemID uint16, priv, peerPub []byte) ([]byte, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return nil, err
	}

	switch info.KeyType {
	case registry.KeyTypeNIST:
		curve, err := nistCurve(kemID)
		if err != nil {
			return nil, err
		}
		sk, err := curve.NewPrivateKey(priv)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
		}
		pk, err := curve.NewPublicKey(peerPub)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
		}
		z, err := sk.ECDH(pk)
		if err != nil {
			return nil, err
		}
		if allZero(z) {
			return nil, ErrZeroSharedSecret
		}
		return z, nil

	case registry.KeyTypeMontgomery:
		if kemID == registry.KEMX25519 {
			sk, err := ecdh.X25519().NewPrivateKey(priv)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
			}
			pk, err := ecdh.X25519().NewPublicKey(peerPub)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
			}
			z, err := sk.ECDH(pk)
			if err != nil {
				return nil, err
			}
			if allZero(z) {
				return nil, ErrZeroSharedSecret
			}
			return z, nil
		}
		// X448
		if len(priv) != x448.Size || len(peerPub) != x448.Size {
			return nil, ErrBadPoint
		}
		var sk, pk, shared x448.Key
		copy(sk[:], priv)
		copy(pk[:], peerPub)
		if !x448.Shared(&shared, &sk, &pk) {
			return nil, ErrZeroSharedSecret
		}
		return append([]byte(nil), shared[:]...), nil

	default:
		return nil, fmt.Errorf("primitives: unhandled key type for kem %#x", kemID)
	}
}

// RawToPub derives the encoded public key from a raw private scalar,
// for KEMs whose private key format determines the public key uniquely.
func RawToPub(kemID uint16, priv []byte) ([]byte, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return nil, err
	}

	switch info.KeyType {
	case registry.KeyTypeNIST:
		curve, err := nistCurve(kemID)
		if err != nil {
			return nil, err
		}
		sk, err := curve.NewPrivateKey(priv)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
		}
		return sk.PublicKey().Bytes(), nil

	case registry.KeyTypeMontgomery:
		if kemID == registry.KEMX25519 {
			sk, err := ecdh.X25519().NewPrivateKey(priv)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
			}
			return sk.PublicKey().Bytes(), nil
		}
		if len(priv) != x448.Size {
			return nil, ErrBadPoint
		}
		var sk, pk x448.Key
		copy(sk[:], priv)
		x448.KeyGen(&pk, &sk)
		return append([]byte(nil), pk[:]...), nil

	default:
		return nil, fmt.Errorf("primitives: unhandled key type for kem %#x", kemID)
	}
}

// ValidatePub parses peerPub as a public key of the named KEM, rejecting
// malformed points (including NIST points not on the curve).
func ValidatePub(kemID uint16, pub []byte) error {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return err
	}
	switch info.KeyType {
	case registry.KeyTypeNIST:
		curve, err := nistCurve(kemID)
		if err != nil {
			return err
		}
		if _, err := curve.NewPublicKey(pub); err != nil {
			return fmt.Errorf("%w: %v", ErrBadPoint, err)
		}
	case registry.KeyTypeMontgomery:
		if len(pub) != info.Npk {
			return ErrBadPoint
		}
	}
	return nil
}

// ValidatePriv parses priv as a raw private scalar of the named KEM,
// rejecting malformed or out-of-range scalars.
func ValidatePriv(kemID uint16, priv []byte) error {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return err
	}
	if len(priv) != info.Npriv {
		return fmt.Errorf("%w: got %d, want %d", ErrKeyLen, len(priv), info.Npriv)
	}

	switch info.KeyType {
	case registry.KeyTypeNIST:
		curve, err := nistCurve(kemID)
		if err != nil {
			return err
		}
		if _, err := curve.NewPrivateKey(priv); err != nil {
			return fmt.Errorf("%w: %v", ErrBadPoint, err)
		}
	case registry.KeyTypeMontgomery:
		if kemID == registry.KEMX25519 {
			if _, err := ecdh.X25519().NewPrivateKey(priv); err != nil {
				return fmt.Errorf("%w: %v", ErrBadPoint, err)
			}
		}
		// X448 raw scalars have no invalid encodings beyond length, already checked above.
	}
	return nil
}

func allZero(b []byte) bool {
	var v byte
	for _, c := range b {
		v |= c
	}
	return v == 0
}
