package kemengine

import (
	"github.com/Neimhin/hpke/internal/labeled"
	"github.com/Neimhin/hpke/internal/primitives"
	"github.com/Neimhin/hpke/internal/registry"
)

// Result is the output of an (Auth)Encap or (Auth)Decap call.
type Result struct {
	Enc          []byte // encapsulated ephemeral public key (encap output / decap input)
	SharedSecret []byte
}

func kemHash(kemID uint16) (string, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return "", err
	}
	return info.HashName, nil
}

// extractAndExpand implements RFC 9180 §4.1 ExtractAndExpand(z, kem_context).
func extractAndExpand(kemID uint16, z, kemContext []byte, nsecret int) ([]byte, error) {
	hashName, err := kemHash(kemID)
	if err != nil {
		return nil, err
	}
	ctx := labeled.Context{Mode: labeled.ModeKEM, HashName: hashName, KEMID: kemID}

	eaePRK, err := labeled.LabeledExtract(ctx, nil, "eae_prk", z)
	if err != nil {
		return nil, err
	}
	return labeled.LabeledExpand(ctx, eaePRK, "shared_secret", kemContext, nsecret)
}

// Encap generates an ephemeral key pair, derives z = ECDH(skE, pkR), and
// returns (enc, shared_secret) with kem_context = enc(pkE) || enc(pkR).
func Encap(kemID uint16, pkR []byte) (Result, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return Result{}, err
	}

	skE, pkE, err := primitives.GenerateKeyPair(kemID)
	if err != nil {
		return Result{}, err
	}
	return encapWithEphemeral(kemID, info.Nsecret, skE, pkE, pkR)
}

// EncapWithKeyPair runs Encap using an externally supplied ephemeral key
// pair (skE, pkE) instead of generating one, so callers can pin `enc` to a
// value they already committed to.
func EncapWithKeyPair(kemID uint16, skE, pkE, pkR []byte) (Result, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return Result{}, err
	}
	return encapWithEphemeral(kemID, info.Nsecret, skE, pkE, pkR)
}

func encapWithEphemeral(kemID uint16, nsecret int, skE, pkE, pkR []byte) (Result, error) {
	z, err := primitives.ECDH(kemID, skE, pkR)
	if err != nil {
		return Result{}, err
	}

	kemContext := concat(pkE, pkR)
	ss, err := extractAndExpand(kemID, z, kemContext, nsecret)
	if err != nil {
		return Result{}, err
	}
	return Result{Enc: pkE, SharedSecret: ss}, nil
}

// AuthEncap is Encap plus sender authentication: z = ECDH(skE, pkR) ||
// ECDH(skS, pkR), and kem_context gains enc(pkS) at the end.
func AuthEncap(kemID uint16, pkR, skS, pkS []byte) (Result, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return Result{}, err
	}

	skE, pkE, err := primitives.GenerateKeyPair(kemID)
	if err != nil {
		return Result{}, err
	}

	zE, err := primitives.ECDH(kemID, skE, pkR)
	if err != nil {
		return Result{}, err
	}
	zS, err := primitives.ECDH(kemID, skS, pkR)
	if err != nil {
		return Result{}, err
	}
	z := concat(zE, zS)

	kemContext := concat(pkE, pkR, pkS)
	ss, err := extractAndExpand(kemID, z, kemContext, info.Nsecret)
	if err != nil {
		return Result{}, err
	}
	return Result{Enc: pkE, SharedSecret: ss}, nil
}

// AuthEncapWithKeyPair is AuthEncap using an externally supplied ephemeral
// key pair instead of a freshly generated one, mirroring EncapWithKeyPair's
// relationship to Encap.
func AuthEncapWithKeyPair(kemID uint16, skE, pkE, pkR, skS, pkS []byte) (Result, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return Result{}, err
	}

	zE, err := primitives.ECDH(kemID, skE, pkR)
	if err != nil {
		return Result{}, err
	}
	zS, err := primitives.ECDH(kemID, skS, pkR)
	if err != nil {
		return Result{}, err
	}
	z := concat(zE, zS)

	kemContext := concat(pkE, pkR, pkS)
	ss, err := extractAndExpand(kemID, z, kemContext, info.Nsecret)
	if err != nil {
		return Result{}, err
	}
	return Result{Enc: pkE, SharedSecret: ss}, nil
}

// Decap mirrors Encap: z = ECDH(skR, enc), kem_context = enc || pkR (pkR
// being the recipient's own public key, derived from skR).
func Decap(kemID uint16, enc, skR, pkR []byte) (Result, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return Result{}, err
	}

	z, err := primitives.ECDH(kemID, skR, enc)
	if err != nil {
		return Result{}, err
	}

	kemContext := concat(enc, pkR)
	ss, err := extractAndExpand(kemID, z, kemContext, info.Nsecret)
	if err != nil {
		return Result{}, err
	}
	return Result{Enc: enc, SharedSecret: ss}, nil
}

// AuthDecap mirrors AuthEncap: z = ECDH(skR, enc) || ECDH(skR, pkS), and
// kem_context gains pkS at the end.
func AuthDecap(kemID uint16, enc, skR, pkR, pkS []byte) (Result, error) {
	info, err := registry.LookupKEM(kemID)
	if err != nil {
		return Result{}, err
	}

	zE, err := primitives.ECDH(kemID, skR, enc)
	if err != nil {
		return Result{}, err
	}
	zS, err := primitives.ECDH(kemID, skR, pkS)
	if err != nil {
		return Result{}, err
	}
	z := concat(zE, zS)

	kemContext := concat(enc, pkR, pkS)
	ss, err := extractAndExpand(kemID, z, kemContext, info.Nsecret)
	if err != nil {
		return Result{}, err
	}
	return Result{Enc: enc, SharedSecret: ss}, nil
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
