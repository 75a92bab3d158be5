package ruxio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jja725/ruxio/internal/store"
)

// Shard is a local file-backed key-value store rooted at one directory.
type Shard struct {
	*store.LocalFileStore
}

var _ Store = (*Shard)(nil)

// Open returns a shard for the configured root. The configuration is
// validated, but no directory is touched until the first Put.
func Open(opts ...Option) (*Shard, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	cfg := Config{
		RootPath:  expandPath(options.RootPath),
		NumBucket: options.NumBucket,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shard config: %w", err)
	}

	return &Shard{
		LocalFileStore: store.NewLocalFileStore(cfg, options.Logger, options.Concurrency),
	}, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
