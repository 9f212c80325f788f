package primitives

import "io"

// SetRandReaderForTesting overrides the CSPRNG source used by
// GenerateKeyPair (and, transitively, GREASE sampling) for deterministic
// tests. Returns a function that restores the previous reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

// RandReader exposes the current randomness source to sibling packages
// (e.g. grease sampling) that need the same overridable seam.
func RandReader() io.Reader {
	return randReader
}
