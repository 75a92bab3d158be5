package ruxio

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jja725/ruxio/internal/store"
)

const (
	// DefaultNumBucket is the bucket count used when none is configured.
	DefaultNumBucket = 64

	// DefaultConcurrency bounds PutMany/GetMany parallelism.
	DefaultConcurrency = store.DefaultConcurrency
)

// OpenOptions configures a shard.
type OpenOptions struct {
	RootPath    string
	NumBucket   uint64
	Concurrency int
	Logger      *slog.Logger
}

// Option is a functional option for configuring Open.
type Option func(*OpenOptions)

func defaultOptions() *OpenOptions {
	return &OpenOptions{
		RootPath:    defaultRootPath(),
		NumBucket:   DefaultNumBucket,
		Concurrency: DefaultConcurrency,
	}
}

// WithRootPath sets the directory holding the bucket directories.
func WithRootPath(dir string) Option {
	return func(o *OpenOptions) { o.RootPath = dir }
}

// WithNumBucket sets the bucket count. Changing it for an existing root
// moves every key to a different path.
func WithNumBucket(n uint64) Option {
	return func(o *OpenOptions) { o.NumBucket = n }
}

// WithConcurrency sets the number of parallel operations for PutMany/GetMany.
func WithConcurrency(n int) Option {
	return func(o *OpenOptions) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}

// WithLogger sets the logger for store operations.
func WithLogger(logger *slog.Logger) Option {
	return func(o *OpenOptions) { o.Logger = logger }
}

func defaultRootPath() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "ruxio")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "ruxio")
	}
	return ".ruxio"
}
