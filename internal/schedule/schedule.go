package schedule

import (
	"errors"
	"fmt"

	"github.com/Neimhin/hpke/internal/labeled"
	"github.com/Neimhin/hpke/internal/registry"
)

// Mode mirrors the four RFC 9180 §5.1 operating modes.
type Mode uint8

const (
	ModeBase    Mode = 0
	ModePSK     Mode = 1
	ModeAuth    Mode = 2
	ModePSKAuth Mode = 3
)

var (
	// ErrBadMode is returned for a Mode value outside {0,1,2,3}.
	ErrBadMode = errors.New("schedule: mode not in {base, psk, auth, psk_auth}")
	// ErrBadPskUsage is returned when psk/psk_id presence is inconsistent
	// with mode: both must be non-empty in PSK/PSK_AUTH, both empty otherwise.
	ErrBadPskUsage = errors.New("schedule: psk usage inconsistent with mode")
)

// Output is (key, base_nonce, exporter_secret), sensitive for the caller's
// lifetime; callers should overwrite these slices once done with them.
type Output struct {
	Key            []byte
	BaseNonce      []byte
	ExporterSecret []byte
}

func validateMode(mode Mode) error {
	if mode > ModePSKAuth {
		return ErrBadMode
	}
	return nil
}

func validatePsk(mode Mode, pskID, psk []byte) error {
	usesPsk := mode == ModePSK || mode == ModePSKAuth
	if usesPsk {
		if len(pskID) == 0 || len(psk) == 0 {
			return ErrBadPskUsage
		}
		return nil
	}
	if len(pskID) != 0 || len(psk) != 0 {
		return ErrBadPskUsage
	}
	return nil
}

// Derive computes (key, base_nonce, exporter_secret) from a KEM shared
// secret, following RFC 9180 §5.1 exactly. kdfID/aeadID/kemID identify the
// suite for labeling and output lengths; pskID/psk may be nil for non-PSK
// modes.
func Derive(mode Mode, kemID, kdfID, aeadID uint16, sharedSecret, info, pskID, psk []byte) (Output, error) {
	if err := validateMode(mode); err != nil {
		return Output{}, err
	}
	if err := validatePsk(mode, pskID, psk); err != nil {
		return Output{}, err
	}

	kdfInfo, err := registry.LookupKDF(kdfID)
	if err != nil {
		return Output{}, fmt.Errorf("schedule: %w", err)
	}
	aeadInfo, err := registry.LookupAEAD(aeadID)
	if err != nil {
		return Output{}, fmt.Errorf("schedule: %w", err)
	}

	ctx := labeled.Context{Mode: labeled.ModeHPKE, HashName: kdfInfo.HashName, KEMID: kemID, KDFID: kdfID, AEADID: aeadID}

	pskIDHash, err := labeled.LabeledExtract(ctx, nil, "psk_id_hash", pskID)
	if err != nil {
		return Output{}, err
	}
	infoHash, err := labeled.LabeledExtract(ctx, nil, "info_hash", info)
	if err != nil {
		return Output{}, err
	}

	keyScheduleContext := make([]byte, 0, 1+len(pskIDHash)+len(infoHash))
	keyScheduleContext = append(keyScheduleContext, byte(mode))
	keyScheduleContext = append(keyScheduleContext, pskIDHash...)
	keyScheduleContext = append(keyScheduleContext, infoHash...)

	secret, err := labeled.LabeledExtract(ctx, sharedSecret, "secret", psk)
	if err != nil {
		return Output{}, err
	}

	key, err := labeled.LabeledExpand(ctx, secret, "key", keyScheduleContext, aeadInfo.KeyLen)
	if err != nil {
		return Output{}, err
	}
	baseNonce, err := labeled.LabeledExpand(ctx, secret, "base_nonce", keyScheduleContext, aeadInfo.NonceLen)
	if err != nil {
		return Output{}, err
	}
	exporterSecret, err := labeled.LabeledExpand(ctx, secret, "exp", keyScheduleContext, kdfInfo.Nh)
	if err != nil {
		return Output{}, err
	}

	return Output{Key: key, BaseNonce: baseNonce, ExporterSecret: exporterSecret}, nil
}
