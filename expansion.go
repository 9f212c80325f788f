package hpke

import (
	"github.com/Neimhin/hpke/internal/registry"
)

// Expansion reports the length of the ciphertext Seal will produce for a
// ptLen-byte plaintext under suite: ptLen plus the AEAD's authentication
// tag. It does not depend on the KEM; enc is returned separately by Seal.
func Expansion(suite Suite, ptLen int) (int, error) {
	if err := validateSuite(suite); err != nil {
		return 0, err
	}
	aeadInfo, err := registry.LookupAEAD(suite.AeadID)
	if err != nil {
		return 0, &SuiteError{KemID: suite.KemID, KdfID: suite.KdfID, AeadID: suite.AeadID, Err: err}
	}
	return ptLen + aeadInfo.TagLen, nil
}
