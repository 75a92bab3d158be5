package ruxio

import "github.com/jja725/ruxio/internal/store"

var (
	ErrNotFound           = store.ErrNotFound
	ErrInvalidKey         = store.ErrInvalidKey
	ErrInvalidBucketCount = store.ErrInvalidBucketCount
)
