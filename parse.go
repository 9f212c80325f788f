package hpke

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Neimhin/hpke/internal/primitives"
	"github.com/Neimhin/hpke/internal/registry"
)

var kemMnemonics = map[string]uint16{
	"p-256": KEMP256, "p256": KEMP256,
	"p-384": KEMP384, "p384": KEMP384,
	"p-521": KEMP521, "p521": KEMP521,
	"x25519": KEMX25519,
	"x448":   KEMX448,
}

var kdfMnemonics = map[string]uint16{
	"hkdf-sha256": KDFHKDFSHA256, "sha256": KDFHKDFSHA256,
	"hkdf-sha384": KDFHKDFSHA384, "sha384": KDFHKDFSHA384,
	"hkdf-sha512": KDFHKDFSHA512, "sha512": KDFHKDFSHA512,
}

var aeadMnemonics = map[string]uint16{
	"aes-128-gcm": AEADAES128GCM, "aes128gcm": AEADAES128GCM,
	"aes-256-gcm": AEADAES256GCM, "aes256gcm": AEADAES256GCM,
	"chacha20-poly1305": AEADChaCha20Poly1305, "chacha20poly1305": AEADChaCha20Poly1305,
}

func parseField(s string, mnemonics map[string]uint16) (uint16, bool) {
	if id, ok := mnemonics[strings.ToLower(s)]; ok {
		return id, true
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), hexOrDecBase(s), 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

func hexOrDecBase(s string) int {
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		return 16
	}
	return 10
}

// ParseSuite parses a comma-separated "kem,kdf,aead" string, accepting
// either mnemonic names (e.g. "x25519,hkdf-sha256,aes-128-gcm") or numeric
// codepoints (decimal or 0x-prefixed hex) in any mix, one per field.
func ParseSuite(s string) (Suite, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Suite{}, fmt.Errorf("%w: expected 3 comma-separated fields, got %d", ErrBadInput, len(fields))
	}

	kemID, ok := parseField(strings.TrimSpace(fields[0]), kemMnemonics)
	if !ok {
		return Suite{}, fmt.Errorf("%w: unrecognized kem %q", ErrBadInput, fields[0])
	}
	kdfID, ok := parseField(strings.TrimSpace(fields[1]), kdfMnemonics)
	if !ok {
		return Suite{}, fmt.Errorf("%w: unrecognized kdf %q", ErrBadInput, fields[1])
	}
	aeadID, ok := parseField(strings.TrimSpace(fields[2]), aeadMnemonics)
	if !ok {
		return Suite{}, fmt.Errorf("%w: unrecognized aead %q", ErrBadInput, fields[2])
	}

	suite := Suite{KemID: kemID, KdfID: kdfID, AeadID: aeadID}
	if err := validateSuite(suite); err != nil {
		return Suite{}, err
	}
	return suite, nil
}

// FormatSuite is ParseSuite's inverse for registered suites, rendering
// mnemonic names rather than codepoints.
func FormatSuite(s Suite) (string, error) {
	kem, err := registry.LookupKEM(s.KemID)
	if err != nil {
		return "", &SuiteError{KemID: s.KemID, KdfID: s.KdfID, AeadID: s.AeadID, Err: err}
	}
	kdf, err := registry.LookupKDF(s.KdfID)
	if err != nil {
		return "", &SuiteError{KemID: s.KemID, KdfID: s.KdfID, AeadID: s.AeadID, Err: err}
	}
	aead, err := registry.LookupAEAD(s.AeadID)
	if err != nil {
		return "", &SuiteError{KemID: s.KemID, KdfID: s.KdfID, AeadID: s.AeadID, Err: err}
	}
	return fmt.Sprintf("%s,%s,%s", kem.Name, kdf.Name, aead.Name), nil
}

// RandomSuite picks a uniformly random registered (kem, kdf, aead) triple,
// for use by Grease and by callers that want an arbitrary valid suite.
func RandomSuite() (Suite, error) {
	kemIDs, kdfIDs, aeadIDs := registry.KEMIDs(), registry.KDFIDs(), registry.AEADIDs()

	kemID, err := randomPick(kemIDs)
	if err != nil {
		return Suite{}, err
	}
	kdfID, err := randomPick(kdfIDs)
	if err != nil {
		return Suite{}, err
	}
	aeadID, err := randomPick(aeadIDs)
	if err != nil {
		return Suite{}, err
	}
	return Suite{KemID: kemID, KdfID: kdfID, AeadID: aeadID}, nil
}

func randomPick(ids []uint16) (uint16, error) {
	// Reject bytes at or above the largest multiple of len(ids) so the
	// modulo below carries no bias.
	limit := 256 - 256%len(ids)
	var b [1]byte
	for {
		if _, err := io.ReadFull(primitives.RandReader(), b[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInternalCrypto, err)
		}
		if int(b[0]) < limit {
			return ids[int(b[0])%len(ids)], nil
		}
	}
}
