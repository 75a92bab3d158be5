package ruxio

import "github.com/jja725/ruxio/internal/store"

// Store is the public interface for shard storage.
// Re-exported from internal/store for convenience.
type Store = store.Store

// Key addresses a value. Re-exported from internal/store.
type Key = store.Key

// Entry is a key/value pair for PutMany.
type Entry = store.Entry

// Config is the immutable shard configuration.
type Config = store.Config

// StringKey is a ready-made Key over a string.
type StringKey = store.StringKey
