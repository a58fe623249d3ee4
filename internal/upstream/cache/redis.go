package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultConnectTimeout = 5 * time.Second

// Connect initialises a Redis client and validates connectivity with a
// ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, addr string, db int, timeout time.Duration) (*redis.Client, error) {
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// Redis is the shared response cache used when the gateway runs as more
// than one instance. Key schema:
//
//	cache:<key>        raw response payload
//	tag:<tag>          set of keys produced under the tag
//	session:<scope>    set of keys a session produced
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps an established client. Entries expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, "cache:"+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, tags []string, session string) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, "cache:"+key, value, r.ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, "tag:"+tag, key)
		pipe.Expire(ctx, "tag:"+tag, 2*r.ttl)
	}
	if session != "" {
		pipe.SAdd(ctx, "session:"+session, key)
		pipe.Expire(ctx, "session:"+session, 2*r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		keys, err := r.client.SMembers(ctx, "tag:"+tag).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("cache invalidate: %w", err)
		}
		if len(keys) > 0 {
			prefixed := make([]string, len(keys))
			for i, k := range keys {
				prefixed[i] = "cache:" + k
			}
			if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
				return fmt.Errorf("cache invalidate: %w", err)
			}
		}
		if err := r.client.Del(ctx, "tag:"+tag).Err(); err != nil {
			return fmt.Errorf("cache invalidate: %w", err)
		}
	}
	return nil
}

func (r *Redis) PurgeSession(ctx context.Context, session string) error {
	keys, err := r.client.SMembers(ctx, "session:"+session).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("cache purge: %w", err)
	}
	if len(keys) > 0 {
		prefixed := make([]string, len(keys))
		for i, k := range keys {
			prefixed[i] = "cache:" + k
		}
		if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
			return fmt.Errorf("cache purge: %w", err)
		}
	}
	return r.client.Del(ctx, "session:"+session).Err()
}
