package store

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// PutMany stores entries in parallel, at most s.concurrency at a time.
// The first failure cancels entries that have not started yet.
func (s *LocalFileStore) PutMany(ctx context.Context, entries []Entry) error {
	p := s.newPool(ctx)
	for _, e := range entries {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.Put(e.Key, e.Value)
		})
	}
	return p.Wait()
}

// GetMany retrieves keys in parallel. values[i] belongs to keys[i].
func (s *LocalFileStore) GetMany(ctx context.Context, keys []Key) ([][]byte, error) {
	values := make([][]byte, len(keys))

	p := s.newPool(ctx)
	for i, key := range keys {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := s.Get(key)
			if err != nil {
				return err
			}
			values[i] = data
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *LocalFileStore) newPool(ctx context.Context) *pool.ContextPool {
	return pool.New().
		WithMaxGoroutines(s.concurrency).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
}
