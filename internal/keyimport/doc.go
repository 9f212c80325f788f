// Package keyimport implements the private-key import fallback chain used
// to accept ECH configuration files that have dropped PEM armour: raw
// bytes first, then PEM, then a wrap-and-retry that adds PEM armour back
// around a bare base64 body. This is a usability accommodation for
// configuration loading, not a hot-path operation.
package keyimport
