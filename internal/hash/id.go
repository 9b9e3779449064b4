// Package hash provides the 64-bit identifiers used for schema fingerprints
// and snapshot entry lookup.
package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// NameID computes the case-insensitive identifier of a field, control or entry name.
func NameID(name string) uint64 {
	return xxhash.Sum64String(strings.ToLower(name))
}

// Bytes computes the xxHash64 of b.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
