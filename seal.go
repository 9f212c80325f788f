package hpke

import (
	"encoding/binary"
	"errors"

	"github.com/Neimhin/hpke/internal/kemengine"
	"github.com/Neimhin/hpke/internal/labeled"
	"github.com/Neimhin/hpke/internal/primitives"
	"github.com/Neimhin/hpke/internal/schedule"
)

func modeFor(authed, psked bool) Mode {
	switch {
	case authed && psked:
		return ModePSKAuth
	case authed:
		return ModeAuth
	case psked:
		return ModePSK
	default:
		return ModeBase
	}
}

func xorNonce(base []byte, seq uint64) []byte {
	nonce := append([]byte(nil), base...)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seq)
	off := len(nonce) - len(buf)
	for i := range buf {
		nonce[off+i] ^= buf[i]
	}
	return nonce
}

func translateScheduleErr(err error) error {
	switch {
	case errors.Is(err, schedule.ErrBadPskUsage):
		return ErrBadPskUsage
	case errors.Is(err, schedule.ErrBadMode):
		return ErrBadMode
	case errors.Is(err, labeled.ErrScratchBound):
		return ErrBadInput
	default:
		return &KeyError{Stage: "key_schedule", Err: err}
	}
}

// Seal encrypts pt to the recipient pkR under suite, authenticating aad,
// and returns the encapsulated KEM output enc alongside the ciphertext.
// Passing WithSealPSK and/or WithSealSenderAuth selects PSK, AUTH, or
// PSK_AUTH mode; with neither, it is BASE mode.
func Seal(suite Suite, pkR []byte, info, aad, pt []byte, opts ...SealOption) (enc, ct []byte, err error) {
	cfg := &sealConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if err := validateSuite(suite); err != nil {
		return nil, nil, err
	}

	var res kemengine.Result
	if cfg.senderAuth != nil {
		res, err = kemengine.AuthEncap(suite.KemID, pkR, cfg.senderAuth.Private, cfg.senderAuth.Public)
	} else {
		res, err = kemengine.Encap(suite.KemID, pkR)
	}
	if err != nil {
		return nil, nil, &KeyError{KemID: suite.KemID, Stage: "encap", Err: err}
	}

	return finishSeal(suite, res, cfg, info, aad, pt)
}

// SealWithSenderKeyPair is Seal with the ephemeral KEM key pair pinned to
// ephemeral rather than freshly generated, so the resulting enc is
// reproducible. Intended for test vectors and GREASE, not routine sealing.
func SealWithSenderKeyPair(suite Suite, pkR []byte, ephemeral *KeyPair, info, aad, pt []byte, opts ...SealOption) (enc, ct []byte, err error) {
	cfg := &sealConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if err := validateSuite(suite); err != nil {
		return nil, nil, err
	}
	if ephemeral == nil {
		return nil, nil, ErrBadInput
	}

	var res kemengine.Result
	if cfg.senderAuth != nil {
		res, err = kemengine.AuthEncapWithKeyPair(suite.KemID, ephemeral.Private, ephemeral.Public, pkR, cfg.senderAuth.Private, cfg.senderAuth.Public)
	} else {
		res, err = kemengine.EncapWithKeyPair(suite.KemID, ephemeral.Private, ephemeral.Public, pkR)
	}
	if err != nil {
		return nil, nil, &KeyError{KemID: suite.KemID, Stage: "encap", Err: err}
	}

	return finishSeal(suite, res, cfg, info, aad, pt)
}

func finishSeal(suite Suite, res kemengine.Result, cfg *sealConfig, info, aad, pt []byte) (enc, ct []byte, err error) {
	mode := modeFor(cfg.senderAuth != nil, len(cfg.psk) > 0)
	sched, err := schedule.Derive(mode, suite.KemID, suite.KdfID, suite.AeadID, res.SharedSecret, info, cfg.pskID, cfg.psk)
	if err != nil {
		return nil, nil, translateScheduleErr(err)
	}

	nonce := xorNonce(sched.BaseNonce, cfg.seq)
	ct, err = primitives.AEADSeal(suite.AeadID, sched.Key, nonce, aad, pt)
	if err != nil {
		return nil, nil, &SuiteError{KemID: suite.KemID, KdfID: suite.KdfID, AeadID: suite.AeadID, Err: ErrInternalCrypto}
	}
	return res.Enc, ct, nil
}
