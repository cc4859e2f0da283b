package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "quillpad:"
	TAGS_KEY  = keyPrefix + "tags"

	DefaultTTL = 10 * time.Minute
)

// TagCache caches the derived tag index. A miss is reported with
// ok == false and a nil error.
type TagCache interface {
	Tags(ctx context.Context) (tags []string, ok bool, err error)
	SetTags(ctx context.Context, tags []string) error
	Invalidate(ctx context.Context) error
}

// Redis is a TagCache backed by Redis.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ TagCache = (*Redis)(nil)

// NewRedis wraps an existing client. A non-positive ttl uses DefaultTTL.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{rdb: rdb, ttl: ttl}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return NewRedis(rdb, ttl), nil
}

func (c *Redis) setJSON(ctx context.Context, key string, value interface{}) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, valueJSON, c.ttl).Err()
}

func getJSON[T any](ctx context.Context, rdb *redis.Client, key string) (*T, error) {
	value, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Redis) Tags(ctx context.Context) ([]string, bool, error) {
	tags, err := getJSON[[]string](ctx, c.rdb, TAGS_KEY)
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return *tags, true, nil
}

func (c *Redis) SetTags(ctx context.Context, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	return c.setJSON(ctx, TAGS_KEY, tags)
}

func (c *Redis) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, TAGS_KEY).Err()
}

// Close closes the underlying client.
func (c *Redis) Close() error {
	return c.rdb.Close()
}

// Nop never stores anything; every lookup is a miss.
type Nop struct{}

var _ TagCache = Nop{}

func (Nop) Tags(context.Context) ([]string, bool, error) { return nil, false, nil }
func (Nop) SetTags(context.Context, []string) error      { return nil }
func (Nop) Invalidate(context.Context) error             { return nil }
