// Package hpke implements Hybrid Public Key Encryption (RFC 9180): a
// ciphersuite of a KEM, a KDF, and an AEAD combined into authenticated
// public-key encryption with a compact single-shot API, plus the suite
// parsing, GREASE, and expansion helpers used when negotiating HPKE
// suites for Encrypted ClientHello.
//
// Basic usage:
//
//	suite := hpke.Suite{KemID: hpke.KEMX25519, KdfID: hpke.KDFHKDFSHA256, AeadID: hpke.AEADAES128GCM}
//
//	kp, err := hpke.GenerateKeyPair(suite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	enc, ct, err := hpke.Seal(suite, kp.Public, []byte("info"), []byte("aad"), []byte("plaintext"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pt, err := hpke.Open(suite, kp, enc, []byte("info"), []byte("aad"), ct)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(string(pt))
//
// hpke opens no sockets, reads no files, and spawns no goroutines: every
// operation depends only on its arguments, plus the system random source
// for key generation, Seal, RandomSuite and Grease. Callers own transport,
// key storage, and negotiation.
package hpke
