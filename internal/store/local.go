package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// DefaultConcurrency bounds the goroutines used by batch operations.
const DefaultConcurrency = 8

// LocalFileStore implements Store using the local filesystem.
//
// Storage layout:
//
//	rootPath/
//	  0/
//	    <filename>  (raw value bytes)
//	  1/
//	  ...
//	  <NumBucket-1>/
//
// A value lives at rootPath/<ShortHash() % NumBucket>/<Filename()>.
// The store keeps no state besides its configuration; concurrent puts to the
// same key are not coordinated.
type LocalFileStore struct {
	cfg         Config
	logger      *slog.Logger
	concurrency int
}

// NewLocalFileStore creates a store over cfg. It performs no I/O and no
// validation; cfg.NumBucket must be at least 1 (see Config.Validate).
func NewLocalFileStore(cfg Config, logger *slog.Logger, concurrency int) *LocalFileStore {
	if logger == nil {
		logger = slog.Default()
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &LocalFileStore{
		cfg:         cfg,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Config returns the configuration the store was built with.
func (s *LocalFileStore) Config() Config {
	return s.cfg
}

// Bucket returns the bucket index for key.
func (s *LocalFileStore) Bucket(key Key) uint64 {
	return key.ShortHash() % s.cfg.NumBucket
}

// DataPath returns the filesystem path for key.
func (s *LocalFileStore) DataPath(key Key) string {
	bucket := strconv.FormatUint(s.Bucket(key), 10)
	return filepath.Join(s.cfg.RootPath, bucket, key.Filename())
}

// Put writes value as the whole content of the key's file.
//
// The file is created or truncated. If its bucket directory is missing, the
// directory chain is created and creation is retried exactly once.
func (s *LocalFileStore) Put(key Key, value []byte) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	bucket := s.Bucket(key)

	s.logger.Debug("start writing data", "path", path, "bucket", bucket, "size", len(value))

	f, err := os.Create(path)
	if errors.Is(err, fs.ErrNotExist) {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create bucket directory %s: %w", dir, err)
		}
		s.logger.Debug("created bucket directory", "dir", dir, "bucket", bucket)
		f, err = os.Create(path)
	}
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if _, err := f.WriteAt(value, 0); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}

	s.logger.Debug("wrote data to file", "path", path, "bucket", bucket, "size", len(value))
	return nil
}

// Get reads the whole content of the key's file.
func (s *LocalFileStore) Get(key Key) ([]byte, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	buf := make([]byte, info.Size())
	if _, err := f.ReadAt(buf, 0); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read file %s: size changed during read: %w", path, io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	s.logger.Debug("read data from file", "path", path, "bucket", s.Bucket(key), "size", len(buf))
	return buf, nil
}

// resolve validates key and returns its data path.
func (s *LocalFileStore) resolve(key Key) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: nil key", ErrInvalidKey)
	}
	name := key.Filename()
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: filename %q", ErrInvalidKey, name)
	}
	return s.DataPath(key), nil
}
