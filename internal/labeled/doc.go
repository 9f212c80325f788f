// Package labeled implements RFC 9180's LabeledExtract and LabeledExpand:
// HKDF-Extract/Expand with a version label, a suite-aware domain-separation
// label, and a caller label mixed into the input, in a fixed concatenation
// order. Any deviation from that order silently breaks interoperability with
// every other RFC 9180 implementation, so this package is deliberately
// small. Its tests check determinism, label and suite_id separation, and
// output lengths; they do not include the RFC's Appendix A vectors.
package labeled
