package registry

import "errors"

// ErrUnknownAEAD is returned by LookupAEAD when the codepoint is not registered.
var ErrUnknownAEAD = errors.New("registry: unknown aead")

// AEADInfo describes one entry of the HPKE AEAD registry (RFC 9180 §7.3).
//
// Tag length is fixed at 16 for every registered AEAD. Since the table is
// a compile-time literal, a drift here could only be a typo, which
// TestLookupAEAD's invariant check catches.
type AEADInfo struct {
	ID       uint16
	Name     string
	TagLen   int
	KeyLen   int
	NonceLen int
}

// RFC 9180 §7.3 AEAD codepoints.
const (
	AEADAES128GCM        uint16 = 0x0001
	AEADAES256GCM        uint16 = 0x0002
	AEADChaCha20Poly1305 uint16 = 0x0003
)

var aeadTable = map[uint16]AEADInfo{
	AEADAES128GCM:        {ID: AEADAES128GCM, Name: "AES-128-GCM", TagLen: 16, KeyLen: 16, NonceLen: 12},
	AEADAES256GCM:        {ID: AEADAES256GCM, Name: "AES-256-GCM", TagLen: 16, KeyLen: 32, NonceLen: 12},
	AEADChaCha20Poly1305: {ID: AEADChaCha20Poly1305, Name: "ChaCha20Poly1305", TagLen: 16, KeyLen: 32, NonceLen: 12},
}

var aeadOrder = []uint16{AEADAES128GCM, AEADAES256GCM, AEADChaCha20Poly1305}

// LookupAEAD returns the registry entry for id, or ErrUnknownAEAD.
func LookupAEAD(id uint16) (AEADInfo, error) {
	info, ok := aeadTable[id]
	if !ok {
		return AEADInfo{}, ErrUnknownAEAD
	}
	return info, nil
}

// AEADIDs returns the registered AEAD codepoints in a fixed order.
func AEADIDs() []uint16 {
	ids := make([]uint16, len(aeadOrder))
	copy(ids, aeadOrder)
	return ids
}
