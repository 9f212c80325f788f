package hpke

// sealConfig holds the optional inputs to Seal/SealWithSenderKeyPair beyond
// the suite, recipient key, info, aad, and plaintext.
type sealConfig struct {
	pskID, psk []byte
	senderAuth *KeyPair
	seq        uint64
}

// SealOption configures an optional input to Seal or SealWithSenderKeyPair.
type SealOption func(*sealConfig)

// WithSealPSK supplies (psk_id, psk) for PSK or PSK_AUTH mode. RFC 9180
// recommends a PSK of at least 32 bytes but does not require it; this
// package does not enforce a minimum.
func WithSealPSK(pskID, psk []byte) SealOption {
	return func(c *sealConfig) {
		c.pskID = pskID
		c.psk = psk
	}
}

// WithSealSenderAuth supplies the sender's own key pair for AUTH or
// PSK_AUTH mode, proving the sender's identity to the recipient via
// AuthEncap.
func WithSealSenderAuth(kp *KeyPair) SealOption {
	return func(c *sealConfig) {
		c.senderAuth = kp
	}
}

// WithSealSeq sets the sequence number XORed into this Seal call's nonce
// (base_nonce XOR seq, right-aligned big-endian). Single-shot callers never
// need this; it exists for callers layering a multi-message stream on top
// of one key schedule, who pass a different seq for each message.
func WithSealSeq(seq uint64) SealOption {
	return func(c *sealConfig) {
		c.seq = seq
	}
}

// openConfig holds the optional inputs to Open beyond the suite,
// recipient key, enc, info, aad, and ciphertext.
type openConfig struct {
	pskID, psk []byte
	senderPub  []byte
	seq        uint64
}

// OpenOption configures an optional input to Open.
type OpenOption func(*openConfig)

// WithOpenPSK supplies (psk_id, psk) for PSK or PSK_AUTH mode. It must
// match the value passed to WithSealPSK on the sealing side.
func WithOpenPSK(pskID, psk []byte) OpenOption {
	return func(c *openConfig) {
		c.pskID = pskID
		c.psk = psk
	}
}

// WithOpenSenderPub supplies the sender's public key for AUTH or PSK_AUTH
// mode, so the recipient's AuthDecap can bind the shared secret to the
// claimed sender identity.
func WithOpenSenderPub(pub []byte) OpenOption {
	return func(c *openConfig) {
		c.senderPub = pub
	}
}

// WithOpenSeq mirrors WithSealSeq on the decryption side.
func WithOpenSeq(seq uint64) OpenOption {
	return func(c *openConfig) {
		c.seq = seq
	}
}
