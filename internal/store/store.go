// Package store implements the local file shard storage layer.
//
// A shard maps an opaque key onto exactly one file under a root directory:
// - the key's short hash modulo the bucket count picks a bucket directory
// - the key's filename names the file inside that bucket
// - the file holds the raw value bytes, nothing else
//
// Bucket directories are created lazily on the first put into them.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("store: key not found")
	ErrInvalidKey         = errors.New("store: invalid key")
	ErrInvalidBucketCount = errors.New("store: bucket count must be at least 1")
)

// Key is the capability a caller supplies to address a value.
// Both methods must be pure: the same key always yields the same hash and
// filename, across calls and across processes.
type Key interface {
	// ShortHash picks the bucket.
	ShortHash() uint64

	// Filename is the file-safe on-disk name within the bucket.
	Filename() string
}

// Entry is a key/value pair for batch writes.
type Entry struct {
	Key   Key
	Value []byte
}

// Store handles whole-value local storage.
type Store interface {
	// Put stores the entire value under key, replacing any previous value.
	Put(key Key, value []byte) error

	// Get returns the entire value stored under key, or ErrNotFound.
	Get(key Key) ([]byte, error)

	// DataPath returns the file path key resolves to. It does no I/O.
	DataPath(key Key) string

	// PutMany stores independent entries in parallel.
	PutMany(ctx context.Context, entries []Entry) error

	// GetMany retrieves values in parallel, index-aligned with keys.
	GetMany(ctx context.Context, keys []Key) ([][]byte, error)
}
