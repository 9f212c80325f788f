// Package kemengine implements RFC 9180 §4: the (Auth)Encap/(Auth)Decap
// operations that turn a recipient public key (and, in AUTH modes, a
// sender static key pair) into a shared secret and its encapsulation.
//
// kem_context ordering is the one place this package must not be "cleaned
// up" without care: encap writes (ephemeral-pub, recipient-pub[,
// sender-pub]) and decap writes (peer-enc, own-pub[, sender-pub]) — these
// are the same bytes on a matching pair only because decap's peer-enc IS
// the encap side's ephemeral-pub. The logical order (ephemeral-first,
// static-second) is the contract; see the package tests.
package kemengine
