// Package registry holds the immutable IANA-codepoint tables for the KEMs,
// KDFs, and AEADs an HPKE ciphersuite may name, and the lookup functions
// over them.
//
// Every table reserves codepoint 0 as "unknown" (mirroring the sentinel-zero
// convention of the OpenSSL implementation this package is modeled on) so a
// zero-value Suite is never mistaken for a valid one. Tables are built once
// at package init and never mutated afterward.
package registry
