package store

import "errors"

// Config is the immutable shard configuration.
type Config struct {
	RootPath  string
	NumBucket uint64
}

// Validate reports whether the configuration can address keys.
func (c Config) Validate() error {
	if c.RootPath == "" {
		return errors.New("store: root path is empty")
	}
	if c.NumBucket == 0 {
		return ErrInvalidBucketCount
	}
	return nil
}
