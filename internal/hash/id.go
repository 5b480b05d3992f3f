// Package hash provides the xxHash64 functions used for column ids and payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a column name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum computes the xxHash64 of an uncompressed code payload.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
