package primitives

import (
	"bytes"
	"testing"
)

func TestHKDFExtractExpand_Deterministic(t *testing.T) {
	t.Parallel()

	ikm := []byte("input key material")
	salt := []byte("salt value")
	info := []byte("context info")

	prk1, err := HKDFExtract("SHA256", salt, ikm)
	if err != nil {
		t.Fatal(err)
	}
	prk2, err := HKDFExtract("SHA256", salt, ikm)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(prk1, prk2) {
		t.Error("HKDFExtract() not deterministic")
	}
	if len(prk1) != 32 {
		t.Errorf("len(prk) = %d, want 32", len(prk1))
	}

	okm1, err := HKDFExpand("SHA256", prk1, info, 48)
	if err != nil {
		t.Fatal(err)
	}
	okm2, err := HKDFExpand("SHA256", prk1, info, 48)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(okm1, okm2) {
		t.Error("HKDFExpand() not deterministic")
	}
	if len(okm1) != 48 {
		t.Errorf("len(okm) = %d, want 48", len(okm1))
	}
}

func TestHKDFExtract_HashLens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hash string
		want int
	}{
		{"SHA256", 32},
		{"SHA384", 48},
		{"SHA512", 64},
	}
	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			prk, err := HKDFExtract(tt.hash, nil, []byte("ikm"))
			if err != nil {
				t.Fatal(err)
			}
			if len(prk) != tt.want {
				t.Errorf("len(prk) = %d, want %d", len(prk), tt.want)
			}
		})
	}
}

func TestHKDFExtract_UnknownHash(t *testing.T) {
	t.Parallel()

	if _, err := HKDFExtract("SHA1", nil, []byte("x")); err != ErrUnknownHash {
		t.Errorf("HKDFExtract() error = %v, want ErrUnknownHash", err)
	}
}

func TestHKDFExpand_TooLong(t *testing.T) {
	t.Parallel()

	prk, err := HKDFExtract("SHA256", nil, []byte("ikm"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := HKDFExpand("SHA256", prk, nil, 255*32+1); err != ErrExpandLen {
		t.Errorf("HKDFExpand() error = %v, want ErrExpandLen", err)
	}
}
