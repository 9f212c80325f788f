package hpke

import (
	"bytes"
	"testing"
)

var allSuites = []Suite{
	{KemID: KEMP256, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM},
	{KemID: KEMP384, KdfID: KDFHKDFSHA384, AeadID: AEADAES256GCM},
	{KemID: KEMP521, KdfID: KDFHKDFSHA512, AeadID: AEADChaCha20Poly1305},
	{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM},
	{KemID: KEMX448, KdfID: KDFHKDFSHA512, AeadID: AEADChaCha20Poly1305},
}

func TestSealOpen_BaseModeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, suite := range allSuites {
		suite := suite
		t.Run(suiteLabel(suite), func(t *testing.T) {
			t.Parallel()

			kp, err := GenerateKeyPair(suite)
			if err != nil {
				t.Fatal(err)
			}

			info := []byte("test info")
			aad := []byte("test aad")
			pt := []byte("the quick brown fox jumps over the lazy dog")

			enc, ct, err := Seal(suite, kp.Public, info, aad, pt)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			got, err := Open(suite, kp, enc, info, aad, ct)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(got, pt) {
				t.Errorf("Open() = %q, want %q", got, pt)
			}
		})
	}
}

func suiteLabel(s Suite) string {
	name, err := FormatSuite(s)
	if err != nil {
		return "unknown"
	}
	return name
}

func TestSealOpen_PSKMode(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}

	pskID := []byte("psk-id-01")
	psk := bytes.Repeat([]byte{0x42}, 32)
	info := []byte("info")
	aad := []byte("aad")
	pt := []byte("psk mode message")

	enc, ct, err := Seal(suite, kp.Public, info, aad, pt, WithSealPSK(pskID, psk))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	got, err := Open(suite, kp, enc, info, aad, ct, WithOpenPSK(pskID, psk))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Errorf("Open() = %q, want %q", got, pt)
	}

	if _, err := Open(suite, kp, enc, info, aad, ct, WithOpenPSK(pskID, []byte("wrong psk padded to 32 bytes!!!"))); err == nil {
		t.Error("Open() with wrong psk should fail")
	}
}

func TestSealOpen_AuthMode(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	recipient, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}
	sender, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}

	info := []byte("info")
	aad := []byte("aad")
	pt := []byte("authenticated message")

	enc, ct, err := Seal(suite, recipient.Public, info, aad, pt, WithSealSenderAuth(sender))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	got, err := Open(suite, recipient, enc, info, aad, ct, WithOpenSenderPub(sender.Public))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Errorf("Open() = %q, want %q", got, pt)
	}

	impostor, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(suite, recipient, enc, info, aad, ct, WithOpenSenderPub(impostor.Public)); err == nil {
		t.Error("Open() with the wrong sender public key should fail")
	}
}

func TestSealOpen_PSKAuthMode(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	recipient, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}
	sender, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}
	pskID := []byte("id")
	psk := bytes.Repeat([]byte{0x7a}, 32)

	enc, ct, err := Seal(suite, recipient.Public, nil, nil, []byte("hi"),
		WithSealSenderAuth(sender), WithSealPSK(pskID, psk))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	got, err := Open(suite, recipient, enc, nil, nil, ct,
		WithOpenSenderPub(sender.Public), WithOpenPSK(pskID, psk))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if string(got) != "hi" {
		t.Errorf("Open() = %q, want %q", got, "hi")
	}
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}

	enc, ct, err := Seal(suite, kp.Public, nil, nil, []byte("message"))
	if err != nil {
		t.Fatal(err)
	}
	tampered := append([]byte(nil), ct...)
	tampered[0] ^= 0xff

	if _, err := Open(suite, kp, enc, nil, nil, tampered); err != ErrOpenFailed {
		t.Errorf("Open() error = %v, want ErrOpenFailed", err)
	}
}

func TestOpen_TamperedAADFails(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}

	enc, ct, err := Seal(suite, kp.Public, nil, []byte("original aad"), []byte("message"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(suite, kp, enc, nil, []byte("different aad"), ct); err != ErrOpenFailed {
		t.Errorf("Open() error = %v, want ErrOpenFailed", err)
	}
}

func TestOpen_WrongRecipientKeyFails(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}
	wrong, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}

	enc, ct, err := Seal(suite, kp.Public, nil, nil, []byte("message"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(suite, wrong, enc, nil, nil, ct); err != ErrOpenFailed {
		t.Errorf("Open() error = %v, want ErrOpenFailed", err)
	}
}

func TestSealWithSenderKeyPair_PinsEnc(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}
	ephemeral, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}

	enc, ct, err := SealWithSenderKeyPair(suite, kp.Public, ephemeral, nil, nil, []byte("pinned"))
	if err != nil {
		t.Fatalf("SealWithSenderKeyPair() error = %v", err)
	}
	if !bytes.Equal(enc, ephemeral.Public) {
		t.Error("SealWithSenderKeyPair() enc did not match the pinned ephemeral public key")
	}

	pt, err := Open(suite, kp, enc, nil, nil, ct)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if string(pt) != "pinned" {
		t.Errorf("Open() = %q, want %q", pt, "pinned")
	}
}

func TestSeal_SequenceNumberChangesNonce(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	ephemeral, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		t.Fatal(err)
	}

	_, ct0, err := SealWithSenderKeyPair(suite, kp.Public, ephemeral, nil, nil, []byte("same plaintext"), WithSealSeq(0))
	if err != nil {
		t.Fatal(err)
	}
	_, ct1, err := SealWithSenderKeyPair(suite, kp.Public, ephemeral, nil, nil, []byte("same plaintext"), WithSealSeq(1))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(ct0, ct1) {
		t.Error("different sequence numbers produced identical ciphertext")
	}
}

func TestOpen_NilRecipientKeyPair(t *testing.T) {
	t.Parallel()

	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	if _, err := Open(suite, nil, make([]byte, 32), nil, nil, []byte("ct")); err != ErrBadInput {
		t.Errorf("Open() error = %v, want ErrBadInput", err)
	}
}

func TestSeal_UnsupportedSuite(t *testing.T) {
	t.Parallel()

	bad := Suite{KemID: 0xffff, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	if _, _, err := Seal(bad, make([]byte, 32), nil, nil, []byte("x")); err == nil {
		t.Error("expected an error for an unsupported suite")
	}
}

// FuzzOpenTamper seeds a valid sealed message, then lets the fuzzer mutate
// the ciphertext and AAD independently. Open must never return a plaintext
// unless both are byte-for-byte what Seal produced and authenticated.
func FuzzOpenTamper(f *testing.F) {
	suite := Suite{KemID: KEMX25519, KdfID: KDFHKDFSHA256, AeadID: AEADAES128GCM}
	kp, err := GenerateKeyPair(suite)
	if err != nil {
		f.Fatal(err)
	}
	aad := []byte("fuzz aad")
	enc, ct, err := Seal(suite, kp.Public, nil, aad, []byte("fuzz plaintext"))
	if err != nil {
		f.Fatal(err)
	}

	f.Add(ct, aad)
	f.Fuzz(func(t *testing.T, ctMut, aadMut []byte) {
		pt, err := Open(suite, kp, enc, nil, aadMut, ctMut)
		if err == nil && !(bytes.Equal(ctMut, ct) && bytes.Equal(aadMut, aad)) {
			t.Errorf("Open() succeeded with mutated input: pt=%q", pt)
		}
	})
}
