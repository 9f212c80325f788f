package hpke

import (
	"fmt"

	"github.com/Neimhin/hpke/internal/primitives"
	"github.com/Neimhin/hpke/internal/registry"
)

// Grease returns a suite (suiteIn if non-nil, otherwise a random one; an
// unsupported suiteIn is an error) plus a random public value of that
// suite's public-key length and a random ciphertext of ctLen bytes, for
// senders that need to emit
// a plausible-looking HPKE blob without holding a real recipient key
// (e.g. greasing ECH the way RFC 8701 greases TLS extensions).
func Grease(suiteIn *Suite, ctLen int) (suite Suite, randomPub, randomCt []byte, err error) {
	if ctLen <= 0 {
		return Suite{}, nil, nil, ErrBadInput
	}

	if suiteIn != nil {
		if err := validateSuite(*suiteIn); err != nil {
			return Suite{}, nil, nil, err
		}
		suite = *suiteIn
	} else {
		suite, err = RandomSuite()
		if err != nil {
			return Suite{}, nil, nil, err
		}
	}

	kemInfo, err := registry.LookupKEM(suite.KemID)
	if err != nil {
		return Suite{}, nil, nil, fmt.Errorf("%w: %v", ErrInternalCrypto, err)
	}

	randomPub = make([]byte, kemInfo.Npk)
	if _, err := primitives.RandReader().Read(randomPub); err != nil {
		return Suite{}, nil, nil, fmt.Errorf("%w: %v", ErrInternalCrypto, err)
	}
	randomCt = make([]byte, ctLen)
	if _, err := primitives.RandReader().Read(randomCt); err != nil {
		return Suite{}, nil, nil, fmt.Errorf("%w: %v", ErrInternalCrypto, err)
	}

	return suite, randomPub, randomCt, nil
}
