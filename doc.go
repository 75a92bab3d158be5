// Package ruxio provides a local, file-backed key-value shard.
//
// Each key is stored in exactly one file. The key's short hash modulo the
// bucket count picks a bucket directory, and the key's filename names the
// file inside it:
//
//	<root>/<ShortHash() % NumBucket>/<Filename()>
//
// Files hold the raw value bytes with no header or checksum. Bucket
// directories are created on first write and never removed.
//
// Basic usage:
//
//	shard, _ := ruxio.Open(ruxio.WithRootPath("/var/lib/ruxio"), ruxio.WithNumBucket(64))
//
//	// Store and load whole values
//	shard.Put(ruxio.StringKey("user:42"), data)
//	data, err := shard.Get(ruxio.StringKey("user:42"))
//	if errors.Is(err, ruxio.ErrNotFound) { ... }
//
//	// Where a key lives on disk
//	fmt.Println(shard.DataPath(ruxio.StringKey("user:42")))
//
//	// Batch operations run in parallel
//	shard.PutMany(ctx, []ruxio.Entry{{Key: k1, Value: v1}, {Key: k2, Value: v2}})
//	values, _ := shard.GetMany(ctx, []ruxio.Key{k1, k2})
//
// Any type with ShortHash and Filename methods can be a key. Both must be pure
// functions of the key value. A shard does not coordinate concurrent writers
// of the same key.
package ruxio
