package hpke

import (
	"errors"

	"github.com/Neimhin/hpke/internal/kemengine"
	"github.com/Neimhin/hpke/internal/primitives"
	"github.com/Neimhin/hpke/internal/schedule"
)

// Open decrypts ct sealed by Seal or SealWithSenderKeyPair using the
// recipient's key pair skR and the encapsulated KEM output enc. Passing
// WithOpenPSK and/or WithOpenSenderPub selects PSK, AUTH, or PSK_AUTH mode
// to match the sealer; with neither, it is BASE mode. A failed
// decapsulation, a failed key schedule and a failed AEAD authentication all
// surface as ErrOpenFailed, so a caller cannot distinguish "wrong key" from
// "tampered ciphertext"; only PSK arguments inconsistent with the selected
// mode return ErrBadPskUsage instead.
func Open(suite Suite, skR *KeyPair, enc, info, aad, ct []byte, opts ...OpenOption) (pt []byte, err error) {
	cfg := &openConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if err := validateSuite(suite); err != nil {
		return nil, err
	}
	if skR == nil {
		return nil, ErrBadInput
	}

	var res kemengine.Result
	if cfg.senderPub != nil {
		res, err = kemengine.AuthDecap(suite.KemID, enc, skR.Private, skR.Public, cfg.senderPub)
	} else {
		res, err = kemengine.Decap(suite.KemID, enc, skR.Private, skR.Public)
	}
	if err != nil {
		return nil, ErrOpenFailed
	}

	mode := modeFor(cfg.senderPub != nil, len(cfg.psk) > 0)
	sched, err := schedule.Derive(mode, suite.KemID, suite.KdfID, suite.AeadID, res.SharedSecret, info, cfg.pskID, cfg.psk)
	if err != nil {
		if errors.Is(err, schedule.ErrBadPskUsage) {
			return nil, ErrBadPskUsage
		}
		return nil, ErrOpenFailed
	}

	nonce := xorNonce(sched.BaseNonce, cfg.seq)
	pt, err = primitives.AEADOpen(suite.AeadID, sched.Key, nonce, aad, ct)
	if err != nil {
		return nil, ErrOpenFailed
	}
	return pt, nil
}
