package cache

import "context"

// NullCache never stores anything.
type NullCache struct{}

func (nc *NullCache) Get(ctx context.Context, key string) (Entry, error) {
	return Entry{}, ErrCacheMiss
}

func (nc *NullCache) Set(ctx context.Context, key string, entry Entry) error {
	return nil
}

func (nc *NullCache) Flush(ctx context.Context) error {
	return nil
}

func NewNullCache() *NullCache {
	return &NullCache{}
}
