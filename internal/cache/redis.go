package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
)

// RedisConf configures RedisCache.
type RedisConf struct {
	Addr     string
	DB       int
	Password string
	TTL      time.Duration
}

// RedisCache keeps results in Redis as JSON documents. Reading an entry
// renews its TTL.
type RedisCache struct {
	conf        RedisConf
	redisClient *redis.Client
}

func (rc *RedisCache) Get(ctx context.Context, key string) (Entry, error) {
	val, err := rc.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return Entry{}, ErrCacheMiss
	} else if err != nil {
		return Entry{}, fmt.Errorf("redis get: %w", err)
	}
	if rc.conf.TTL > 0 {
		if err := rc.redisClient.Expire(ctx, key, rc.conf.TTL).Err(); err != nil {
			return Entry{}, fmt.Errorf("redis expire: %w", err)
		}
	}
	return decodeEntry(val)
}

func (rc *RedisCache) Set(ctx context.Context, key string, entry Entry) error {
	data, err := sonic.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := rc.redisClient.Set(ctx, key, data, rc.conf.TTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Flush removes the keys written by this package, leaving the rest of
// the database alone.
func (rc *RedisCache) Flush(ctx context.Context) error {
	iter := rc.redisClient.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rc.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	return nil
}

// Ping checks the connection to the Redis server.
func (rc *RedisCache) Ping(ctx context.Context) error {
	return rc.redisClient.Ping(ctx).Err()
}

func (rc *RedisCache) Close() error {
	return rc.redisClient.Close()
}

func decodeEntry(val string) (Entry, error) {
	var entry Entry
	if err := sonic.Unmarshal([]byte(val), &entry); err != nil {
		return Entry{}, fmt.Errorf("decode cache entry: %w", err)
	}
	return entry, nil
}

func NewRedisCache(conf RedisConf) *RedisCache {
	return &RedisCache{
		conf: conf,
		redisClient: redis.NewClient(&redis.Options{
			Addr:        conf.Addr,
			DB:          conf.DB,
			Password:    conf.Password,
			DialTimeout: 2 * time.Second,
		}),
	}
}
