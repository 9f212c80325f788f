// Package schedule derives the HPKE key schedule (RFC 9180 §5.1): the
// (key, base_nonce, exporter_secret) triple produced from a KEM shared
// secret, the operating mode, and the optional PSK/info inputs.
package schedule
