package store

import (
	"encoding/hex"
	"hash/fnv"
)

// StringKey is a Key over an arbitrary string.
// Its filename is the hex encoding of the string, so any string is file-safe.
type StringKey string

// ShortHash returns the FNV-1a 64-bit hash of the string.
func (k StringKey) ShortHash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(k))
	return h.Sum64()
}

// Filename returns the lowercase hex encoding of the string.
func (k StringKey) Filename() string {
	return hex.EncodeToString([]byte(k))
}
