// Package hash derives the 64-bit cell identifiers used by the archive
// blob index.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given cell name.
//
// Archive blobs store only the hash, never the name, so lookups are O(1)
// and name length does not affect the blob size.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
