package store_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jja725/ruxio/internal/store"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	hash uint64
	name string
}

func (k testKey) ShortHash() uint64 { return k.hash }
func (k testKey) Filename() string  { return k.name }

func newTestStore(t *testing.T, numBucket uint64) (*store.LocalFileStore, string) {
	t.Helper()
	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewLocalFileStore(store.Config{RootPath: root, NumBucket: numBucket}, logger, 0), root
}

func TestDataPath(t *testing.T) {
	t.Parallel()

	s := store.NewLocalFileStore(store.Config{RootPath: "/tmp/store", NumBucket: 4}, nil, 0)
	key := testKey{hash: 10, name: "abc"}

	require.Equal(t, "/tmp/store/2/abc", s.DataPath(key))
	require.Equal(t, s.DataPath(key), s.DataPath(key), "path should be stable")
	require.Equal(t, uint64(2), s.Bucket(key))
}

func TestDataPathBucketIsHashModulo(t *testing.T) {
	t.Parallel()

	const numBucket = 7
	s := store.NewLocalFileStore(store.Config{RootPath: "root", NumBucket: numBucket}, nil, 0)

	for _, hash := range []uint64{0, 1, 6, 7, 8, 1 << 40, ^uint64(0)} {
		key := testKey{hash: hash, name: "k"}
		bucket := filepath.Base(filepath.Dir(s.DataPath(key)))
		require.Equal(t, filepath.Join("root", bucket, "k"), s.DataPath(key))
		require.Equal(t, hash%numBucket, s.Bucket(key), "hash %d", hash)
	}
}

func TestNewLocalFileStoreDoesNoIO(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "missing")
	store.NewLocalFileStore(store.Config{RootPath: root, NumBucket: 4}, nil, 0)

	_, err := os.Stat(root)
	require.True(t, os.IsNotExist(err), "constructor should not create the root")
}

func TestPutAndGet(t *testing.T) {
	t.Parallel()

	s, root := newTestStore(t, 4)
	key := testKey{hash: 10, name: "abc"}

	require.NoError(t, s.Put(key, []byte("hello")), "Put error")

	info, err := os.Stat(filepath.Join(root, "2", "abc"))
	require.NoError(t, err, "expected value file to exist")
	require.False(t, info.IsDir(), "value path should be a file")
	require.Equal(t, int64(5), info.Size())

	got, err := s.Get(key)
	require.NoError(t, err, "Get error")
	require.Equal(t, []byte("hello"), got)
	require.Len(t, got, 5)
}

func TestPutAndGetEmptyValue(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, 4)
	key := testKey{hash: 3, name: "empty"}

	require.NoError(t, s.Put(key, nil))

	got, err := s.Get(key)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestPutAndGetBinaryValue(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, 16)
	key := testKey{hash: 99, name: "bin"}

	payload := make([]byte, 1<<16)
	for i := range payload {
		payload[i] = byte(i * 31)
	}

	require.NoError(t, s.Put(key, payload))

	got, err := s.Get(key)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestPutCreatesOnlyTargetBucket(t *testing.T) {
	t.Parallel()

	s, root := newTestStore(t, 8)
	key := testKey{hash: 13, name: "only"}

	require.NoError(t, s.Put(key, []byte("data")))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only one bucket directory should exist")
	require.Equal(t, "5", entries[0].Name())
	require.True(t, entries[0].IsDir())
}

func TestPutCreatesMissingRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "a", "b", "c")
	s := store.NewLocalFileStore(store.Config{RootPath: root, NumBucket: 2}, nil, 0)
	key := testKey{hash: 1, name: "deep"}

	require.NoError(t, s.Put(key, []byte("nested")))

	got, err := s.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("nested"), got)
}

func TestPutOverwriteWithShorterValueTruncates(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, 4)
	key := testKey{hash: 1, name: "over"}

	require.NoError(t, s.Put(key, []byte("short")))
	require.NoError(t, s.Put(key, []byte("s")))

	got, err := s.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("s"), got, "no stale bytes should survive an overwrite")
}

func TestPutOverwriteWithLongerValue(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, 4)
	key := testKey{hash: 1, name: "grow"}

	require.NoError(t, s.Put(key, []byte("s")))
	require.NoError(t, s.Put(key, []byte("longer")))

	got, err := s.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("longer"), got)
}

func TestSameBucketDifferentFilenames(t *testing.T) {
	t.Parallel()

	s, root := newTestStore(t, 4)
	first := testKey{hash: 2, name: "first"}
	second := testKey{hash: 6, name: "second"}
	require.Equal(t, s.Bucket(first), s.Bucket(second))

	require.NoError(t, s.Put(first, []byte("one")))
	require.NoError(t, s.Put(second, []byte("two")))

	got, err := s.Get(first)
	require.NoError(t, err)
	require.Equal(t, []byte("one"), got)

	got, err = s.Get(second)
	require.NoError(t, err)
	require.Equal(t, []byte("two"), got)

	entries, err := os.ReadDir(filepath.Join(root, "2"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestGetMissingKey(t *testing.T) {
	t.Parallel()

	s, root := newTestStore(t, 4)

	got, err := s.Get(testKey{hash: 1, name: "never"})
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorContains(t, err, filepath.Join(root, "1", "never"))
	require.Nil(t, got)
}

func TestGetMissingKeyInExistingBucket(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, 4)
	require.NoError(t, s.Put(testKey{hash: 1, name: "present"}, []byte("x")))

	_, err := s.Get(testKey{hash: 5, name: "absent"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPutCreateFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	// A regular file where the root directory should be: creation fails
	// with ENOTDIR, which must not trigger directory creation.
	root := filepath.Join(t.TempDir(), "root")
	require.NoError(t, os.WriteFile(root, []byte("not a dir"), 0644))

	s := store.NewLocalFileStore(store.Config{RootPath: root, NumBucket: 4}, nil, 0)
	err := s.Put(testKey{hash: 1, name: "k"}, []byte("v"))
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to create file")
	require.ErrorContains(t, err, root)
}

func TestPutBucketDirectoryFailure(t *testing.T) {
	t.Parallel()

	// A dangling symlink as the root: creating the file reports ENOENT, and
	// creating the bucket chain then fails because the root name exists.
	root := filepath.Join(t.TempDir(), "root")
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "gone"), root))

	s := store.NewLocalFileStore(store.Config{RootPath: root, NumBucket: 4}, nil, 0)
	err := s.Put(testKey{hash: 1, name: "k"}, []byte("v"))
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to create bucket directory")
	require.ErrorContains(t, err, filepath.Join(root, "1"))
}

func TestInvalidKeys(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, 4)

	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		err := s.Put(testKey{hash: 1, name: name}, []byte("v"))
		require.ErrorIs(t, err, store.ErrInvalidKey, "Put %q", name)

		_, err = s.Get(testKey{hash: 1, name: name})
		require.ErrorIs(t, err, store.ErrInvalidKey, "Get %q", name)
	}

	require.ErrorIs(t, s.Put(nil, []byte("v")), store.ErrInvalidKey)
}

func TestPutLogsAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := store.NewLocalFileStore(store.Config{RootPath: t.TempDir(), NumBucket: 4}, logger, 0)
	key := testKey{hash: 0, name: "logged"}

	require.NoError(t, s.Put(key, []byte("v")))
	_, err := s.Get(key)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "start writing data")
	require.Contains(t, out, "created bucket directory")
	require.Contains(t, out, "wrote data to file")
	require.Contains(t, out, "read data from file")
	require.Contains(t, out, s.DataPath(key))
	require.Contains(t, out, "bucket=0")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, store.Config{RootPath: "/data", NumBucket: 1}.Validate())
	require.ErrorIs(t, store.Config{RootPath: "/data"}.Validate(), store.ErrInvalidBucketCount)
	require.Error(t, store.Config{NumBucket: 4}.Validate())
}
